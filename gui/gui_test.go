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

package gui_test

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/gui"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/television"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/test"
)

type resetter struct {
	count int
}

func (r *resetter) Reset() {
	r.count++
}

func TestFrame(t *testing.T) {
	var f gui.Frame

	f.Borrow(func(img *image.RGBA, _ int, dirty bool) {
		test.ExpectSuccess(t, img == nil)
		test.ExpectFailure(t, dirty)
	})

	// source image with a non-zero origin
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.SetRGBA(10, 10, color.RGBA{R: 1, A: 255})
	src.SetRGBA(13, 11, color.RGBA{G: 2, A: 255})
	f.Set(5, src)

	f.Borrow(func(img *image.RGBA, frameNum int, dirty bool) {
		test.DemandSuccess(t, img != nil)
		test.ExpectEquality(t, frameNum, 5)
		test.ExpectSuccess(t, dirty)
		test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 4, 2))
		test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 1, A: 255})
		test.ExpectEquality(t, img.RGBAAt(3, 1), color.RGBA{G: 2, A: 255})
	})

	f.Borrow(func(_ *image.RGBA, _ int, dirty bool) {
		test.ExpectFailure(t, dirty)
	})
}

func TestAudioQueue(t *testing.T) {
	// one output sample per second and room for two samples
	q := gui.NewAudioQueue(1, 2)
	test.ExpectEquality(t, q.SampleRate(), 1)

	q.Push(0, 100, -100)
	test.ExpectEquality(t, q.Len(), 0)

	q.Push(scheduler.Second+1, 200, -200)
	test.ExpectEquality(t, q.Len(), 2)
	test.ExpectEquality(t, q.Dropped, 0)

	// one more output sample. the oldest is dropped
	q.Push(2*scheduler.Second+1, 300, -300)
	test.ExpectEquality(t, q.Len(), 2)
	test.ExpectEquality(t, q.Dropped, 1)

	p := make([]byte, 12)
	n, err := q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(p[0:])), int16(100))
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(p[2:])), int16(-100))
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(p[4:])), int16(200))

	// the queue ran out so the last sample was repeated
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(p[8:])), int16(200))
	test.ExpectEquality(t, int16(binary.LittleEndian.Uint16(p[10:])), int16(-200))
	test.ExpectEquality(t, q.Padded, 1)
	test.ExpectEquality(t, q.Len(), 0)

	q.Reset()
	q.Push(1, 0, 0)
	test.ExpectEquality(t, q.Len(), 1)
}

func TestPumpImplements(t *testing.T) {
	p := gui.NewPump(44100)
	defer p.Limiter.Stop()

	var r television.PixelRenderer
	test.ExpectImplements(t, p, r)
	var m television.AudioMixer
	test.ExpectImplements(t, p, m)
}

func TestPumpEvents(t *testing.T) {
	p := gui.NewPump(44100)
	defer p.Limiter.Stop()

	r := &resetter{}

	state, err := p.Check(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Running)

	p.Send(gui.EventKeyboard{Key: gui.KeyPause, Down: true})
	p.Send(gui.EventKeyboard{Key: gui.KeyPause, Down: false})
	state, _ = p.Check(r)
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectSuccess(t, p.Paused())

	p.Send(gui.EventKeyboard{Key: gui.KeyPause, Down: true})
	p.Send(gui.EventKeyboard{Key: gui.KeyReset, Down: true})
	state, _ = p.Check(r)
	test.ExpectEquality(t, state, govern.Running)
	test.ExpectEquality(t, r.count, 1)

	p.Send(gui.EventQuit{})
	state, _ = p.Check(r)
	test.ExpectEquality(t, state, govern.Ending)

	p.Send(gui.EventKeyboard{Key: gui.KeyQuit, Down: true})
	state, _ = p.Check(r)
	test.ExpectEquality(t, state, govern.Ending)
}

func TestPumpGeometryAndFinish(t *testing.T) {
	p := gui.NewPump(44100)
	defer p.Limiter.Stop()

	_, ok := p.Geometry()
	test.ExpectFailure(t, ok)

	g := vidc.Geometry{Width: 640, Height: 256, Refresh: 50}
	test.ExpectSuccess(t, p.Resize(g))
	pg, ok := p.Geometry()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pg, g)
	test.ExpectEquality(t, p.Limiter.RefreshRate.Load().(float64), 50.0)

	done, err := p.Finished()
	test.ExpectFailure(t, done)
	test.ExpectSuccess(t, err)

	fail := errors.New("stopped")
	p.Finish(fail)
	done, err = p.Finished()
	test.ExpectSuccess(t, done)
	test.ExpectEquality(t, err, fail)
}
