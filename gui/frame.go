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

package gui

import (
	"image"
	"sync"
)

// Frame is the most recent image produced by the television. It can be safely
// written to by the emulation goroutine and read by the GUI.
type Frame struct {
	crit sync.Mutex

	img      *image.RGBA
	frameNum int

	// true if the image has been updated since the last call to Borrow()
	dirty bool
}

// Set copies the image into the frame.
func (f *Frame) Set(frameNum int, img *image.RGBA) {
	f.crit.Lock()
	defer f.crit.Unlock()

	if img == nil {
		return
	}

	b := img.Bounds()
	if f.img == nil || f.img.Bounds().Dx() != b.Dx() || f.img.Bounds().Dy() != b.Dy() {
		f.img = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}

	w := b.Dx() * 4
	for y := range b.Dy() {
		src := img.PixOffset(b.Min.X, b.Min.Y+y)
		dst := f.img.PixOffset(0, y)
		copy(f.img.Pix[dst:dst+w], img.Pix[src:src+w])
	}

	f.frameNum = frameNum
	f.dirty = true
}

// Borrow calls the function with the current image. The image will be nil if
// no frame has been set. The image must not be retained after the function
// returns.
func (f *Frame) Borrow(fn func(img *image.RGBA, frameNum int, dirty bool)) {
	f.crit.Lock()
	defer f.crit.Unlock()
	fn(f.img, f.frameNum, f.dirty)
	f.dirty = false
}
