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
	"fmt"
	"image"

	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/logger"
)

// DefaultFramePeriod is the period of the frame timer when the source is not
// producing a usable frame.
const DefaultFramePeriod = 20 * scheduler.Millisecond

// Television is the frame pump. It implements the vidc.FramePump and
// vidc.AudioOutput interfaces and the scheduler.Handler interface for the
// FrameTimer.
type Television struct {
	env   *environment.Environment
	sched vidc.Scheduler
	src   Source

	// most recent geometry received by Resize()
	geom      vidc.Geometry
	geomValid bool

	// the output surface. nil until the first call to Resize() with a
	// non-empty geometry
	surface *image.RGBA

	frameNum int
	running  bool

	renderers []PixelRenderer
	triggers  []FrameTrigger
	mixers    []AudioMixer

	// number of audio samples received since reset
	samples uint64

	// first error returned by a renderer or mixer. returned by Err()
	err error
}

// NewTelevision is the preferred method of initialisation for the Television
// type. The source must be attached with AttachSource() before the
// television is started.
func NewTelevision(env *environment.Environment, sched vidc.Scheduler) *Television {
	return &Television{
		env:   env,
		sched: sched,
	}
}

// AttachSource sets the device that frames will be rendered from.
func (tv *Television) AttachSource(src Source) {
	tv.src = src
}

func (tv *Television) String() string {
	if !tv.geomValid {
		return fmt.Sprintf("TV: frame %d (no signal)", tv.frameNum)
	}
	return fmt.Sprintf("TV: frame %d %dx%d %.2fHz", tv.frameNum, tv.geom.Width, tv.geom.Height, tv.geom.Refresh)
}

// Start arms the frame timer. The first frame is rendered one frame period
// after the current time.
func (tv *Television) Start() {
	tv.running = true
	tv.sched.Rearm(scheduler.FrameTimer, tv.sched.Now()+tv.period())
}

// Stop disarms the frame timer.
func (tv *Television) Stop() {
	tv.running = false
	tv.sched.Rearm(scheduler.FrameTimer, scheduler.Never)
}

// Reset the frame count and forget the current geometry. The frame timer is
// rearmed if the television is running.
func (tv *Television) Reset() {
	tv.frameNum = 0
	tv.samples = 0
	tv.geom = vidc.Geometry{}
	tv.geomValid = false
	tv.surface = nil
	tv.err = nil
	if tv.running {
		tv.Start()
	}
}

// End causes all attached renderers and mixers to conclude. The first error
// encountered is returned.
func (tv *Television) End() error {
	tv.Stop()

	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// AddPixelRenderer adds a renderer to the list. A renderer will not be added
// twice. If the television already has a surface the renderer is told about
// the current geometry immediately.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	for _, o := range tv.renderers {
		if o == r {
			return
		}
	}
	tv.renderers = append(tv.renderers, r)
	if tv.geomValid {
		tv.latch(r.Resize(tv.geom))
	}
}

// RemovePixelRenderer removes a renderer from the list.
func (tv *Television) RemovePixelRenderer(r PixelRenderer) {
	for i, o := range tv.renderers {
		if o == r {
			tv.renderers = append(tv.renderers[:i], tv.renderers[i+1:]...)
			return
		}
	}
}

// AddFrameTrigger adds a frame trigger to the list.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	for _, o := range tv.triggers {
		if o == f {
			return
		}
	}
	tv.triggers = append(tv.triggers, f)
}

// AddAudioMixer adds an audio mixer to the list.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	for _, o := range tv.mixers {
		if o == m {
			return
		}
	}
	tv.mixers = append(tv.mixers, m)
}

// FrameNum returns the number of frames rendered since the last reset.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// Samples returns the number of audio samples received since the last reset.
func (tv *Television) Samples() uint64 {
	return tv.samples
}

// Surface returns the output surface. The surface is nil if no geometry has
// been received.
func (tv *Television) Surface() *image.RGBA {
	return tv.surface
}

// Geometry returns the most recent geometry received from the source.
func (tv *Television) Geometry() (vidc.Geometry, bool) {
	return tv.geom, tv.geomValid
}

// Err returns the first error returned by a renderer or mixer since the last
// reset. The error is cleared by the call.
func (tv *Television) Err() error {
	err := tv.err
	tv.err = nil
	return err
}

func (tv *Television) latch(err error) {
	if err != nil && tv.err == nil {
		tv.err = err
	}
}

// Resize implements the vidc.FramePump interface.
func (tv *Television) Resize(geom vidc.Geometry) {
	tv.geom = geom
	tv.geomValid = true

	logger.Logf(tv.env, "TV", "resize: %s", geom)

	if geom.Width <= 0 || geom.Height <= 0 {
		tv.surface = nil
	} else if tv.surface == nil || tv.surface.Bounds().Dx() != geom.Width || tv.surface.Bounds().Dy() != geom.Height {
		tv.surface = image.NewRGBA(image.Rect(0, 0, geom.Width, geom.Height))
	}

	for _, r := range tv.renderers {
		tv.latch(r.Resize(geom))
	}
}

// SetAudio implements the vidc.AudioOutput interface.
func (tv *Television) SetAudio(at scheduler.Time, left int16, right int16) {
	tv.samples++
	for _, m := range tv.mixers {
		tv.latch(m.SetAudio(at, left, right))
	}
}

// TimerFired implements the scheduler.Handler interface.
func (tv *Television) TimerFired(id scheduler.Timer) {
	if id != scheduler.FrameTimer {
		return
	}

	tv.renderFrame()

	if tv.running {
		tv.sched.Rearm(scheduler.FrameTimer, tv.sched.Now()+tv.period())
	}
}

func (tv *Television) period() scheduler.Time {
	if tv.src != nil {
		if p := tv.src.FrameTime(); p > 0 {
			return p
		}
	}
	return DefaultFramePeriod
}

func (tv *Television) renderFrame() {
	tv.frameNum++

	if tv.surface != nil && tv.src != nil {
		tv.src.Render(tv.surface, tv.surface.Bounds())
		for _, r := range tv.renderers {
			tv.latch(r.NewFrame(tv.frameNum, tv.surface))
		}
	}

	for _, f := range tv.triggers {
		tv.latch(f.FrameTriggered(tv.frameNum))
	}
}
