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

package television_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware/preferences"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/television"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/test"
)

// source fills the surface with a single colour
type source struct {
	col       color.RGBA
	frameTime scheduler.Time
	renders   int
}

func (s *source) Render(surface *image.RGBA, clip image.Rectangle) {
	s.renders++
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			surface.SetRGBA(x, y, s.col)
		}
	}
}

func (s *source) FrameTime() scheduler.Time {
	return s.frameTime
}

type renderer struct {
	resizes []vidc.Geometry
	frames  []int
	last    color.RGBA
	ended   bool
	err     error
}

func (r *renderer) Resize(g vidc.Geometry) error {
	r.resizes = append(r.resizes, g)
	return nil
}

func (r *renderer) NewFrame(frameNum int, img *image.RGBA) error {
	r.frames = append(r.frames, frameNum)
	r.last = img.RGBAAt(0, 0)
	return r.err
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

type mixer struct {
	samples int
	ended   bool
}

func (m *mixer) SetAudio(_ scheduler.Time, _ int16, _ int16) error {
	m.samples++
	return nil
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

type trigger struct {
	count int
}

func (f *trigger) FrameTriggered(_ int) error {
	f.count++
	return nil
}

func newTV(t *testing.T) (*television.Television, *scheduler.Scheduler, *source) {
	t.Helper()
	p, err := preferences.NewPreferencesAt("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	sched := scheduler.NewScheduler()
	tv := television.NewTelevision(env, sched)
	test.DemandSuccess(t, sched.Attach(scheduler.FrameTimer, tv))

	src := &source{col: color.RGBA{R: 10, G: 20, B: 30, A: 255}}
	tv.AttachSource(src)

	return tv, sched, src
}

func TestFramePeriod(t *testing.T) {
	tv, sched, src := newTV(t)

	f := &trigger{}
	tv.AddFrameTrigger(f)
	tv.Start()

	// no frame time from the source so the default period is used. frames
	// are counted even though there is nothing to render
	test.ExpectEquality(t, sched.Due(scheduler.FrameTimer), television.DefaultFramePeriod)
	test.ExpectSuccess(t, sched.AdvanceTo(3*television.DefaultFramePeriod))
	test.ExpectEquality(t, tv.FrameNum(), 3)
	test.ExpectEquality(t, f.count, 3)
	test.ExpectEquality(t, src.renders, 0)

	src.frameTime = 10 * scheduler.Millisecond
	test.ExpectSuccess(t, sched.AdvanceBy(20*scheduler.Millisecond))
	test.ExpectEquality(t, tv.FrameNum(), 4)
	test.ExpectEquality(t, sched.Due(scheduler.FrameTimer), 90*scheduler.Millisecond)

	tv.Stop()
	test.ExpectEquality(t, sched.Due(scheduler.FrameTimer), scheduler.Never)
}

func TestResizeAndRender(t *testing.T) {
	tv, sched, src := newTV(t)

	r := &renderer{}
	tv.AddPixelRenderer(r)
	tv.AddPixelRenderer(r)
	test.ExpectEquality(t, len(r.resizes), 0)

	_, ok := tv.Geometry()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, tv.Surface(), (*image.RGBA)(nil))

	g := vidc.Geometry{Width: 32, Height: 16, Refresh: 50}
	tv.Resize(g)
	test.DemandEquality(t, len(r.resizes), 1)
	test.ExpectEquality(t, r.resizes[0], g)
	if tv.Surface() == nil {
		t.Fatalf("expected a surface after resize")
	}
	test.ExpectEquality(t, tv.Surface().Bounds(), image.Rect(0, 0, 32, 16))

	// same size keeps the surface
	s := tv.Surface()
	tv.Resize(vidc.Geometry{Width: 32, Height: 16, Refresh: 60})
	test.ExpectEquality(t, tv.Surface(), s)

	src.frameTime = 20 * scheduler.Millisecond
	tv.Start()
	test.ExpectSuccess(t, sched.AdvanceTo(40*scheduler.Millisecond))
	test.ExpectEquality(t, src.renders, 2)
	test.DemandEquality(t, len(r.frames), 2)
	test.ExpectEquality(t, r.frames[1], 2)
	test.ExpectEquality(t, r.last, src.col)

	// a late renderer is told about the current geometry
	late := &renderer{}
	tv.AddPixelRenderer(late)
	test.ExpectEquality(t, len(late.resizes), 1)

	tv.RemovePixelRenderer(late)
	test.ExpectSuccess(t, sched.AdvanceBy(20*scheduler.Millisecond))
	test.ExpectEquality(t, len(late.frames), 0)
	test.ExpectEquality(t, len(r.frames), 3)

	tv.Reset()
	test.ExpectEquality(t, tv.FrameNum(), 0)
	test.ExpectEquality(t, tv.Surface(), (*image.RGBA)(nil))
}

func TestAudioAndEnd(t *testing.T) {
	tv, _, _ := newTV(t)

	m := &mixer{}
	r := &renderer{}
	tv.AddAudioMixer(m)
	tv.AddAudioMixer(m)
	tv.AddPixelRenderer(r)

	tv.SetAudio(0, 1, 2)
	tv.SetAudio(10, 3, 4)
	test.ExpectEquality(t, m.samples, 2)
	test.ExpectEquality(t, tv.Samples(), uint64(2))

	test.ExpectSuccess(t, tv.End())
	test.ExpectSuccess(t, m.ended)
	test.ExpectSuccess(t, r.ended)
}

func TestRendererError(t *testing.T) {
	tv, sched, src := newTV(t)

	fail := errors.New("renderer failed")
	r := &renderer{err: fail}
	tv.AddPixelRenderer(r)
	tv.Resize(vidc.Geometry{Width: 4, Height: 4})

	src.frameTime = scheduler.Millisecond
	tv.Start()
	test.ExpectSuccess(t, sched.AdvanceTo(2*scheduler.Millisecond))
	test.ExpectEquality(t, tv.Err(), fail)
	test.ExpectSuccess(t, tv.Err())
}
