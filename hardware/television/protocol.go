// This file is part of VIDCemu.
//
// VIDCemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VIDCemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VIDCemu.  If not, see <https://www.gnu.org/licenses/>.

package television

import (
	"image"

	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
)

// Source is the device that the television takes frames from. It is
// satisfied by the vidc.VIDC type.
type Source interface {
	Render(surface *image.RGBA, clip image.Rectangle)
	FrameTime() scheduler.Time
}

// PixelRenderer implementations display, or otherwise work with, the frames
// produced by the television. For example digest.Video.
type PixelRenderer interface {
	// Resize is called whenever the geometry of the VIDC changes. The
	// geometry is always sane.
	Resize(geom vidc.Geometry) error

	// NewFrame is called every time a frame has been rendered. The image is
	// owned by the television and will be reused for the next frame and
	// renderers that want to keep the image must make a copy
	NewFrame(frameNum int, img *image.RGBA) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// FrameTrigger implementations listen for frame events but have no interest
// in the image.
type FrameTrigger interface {
	FrameTriggered(frameNum int) error
}

// AudioMixer implementations work with sound; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works with
// it is the digest.Audio type.
type AudioMixer interface {
	SetAudio(at scheduler.Time, left int16, right int16) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}
