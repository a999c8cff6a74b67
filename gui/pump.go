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
	"sync/atomic"
	"time"

	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/television/limiter"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
)

// the amount of audio the queue will hold before dropping samples
const audioQueueDuration = 250 * time.Millisecond

// the number of events that can be queued before the GUI blocks
const eventQueueLength = 64

// how long Check() sleeps when the emulation is paused
const pausedSleep = 10 * time.Millisecond

// Resetter is implemented by the emulated machine.
type Resetter interface {
	Reset()
}

// Pump sits between the emulation goroutine and the GUI. It implements the
// television.PixelRenderer and television.AudioMixer interfaces.
type Pump struct {
	Frame   Frame
	Audio   *AudioQueue
	Limiter *limiter.Limiter

	events chan Event

	crit      sync.Mutex
	geom      vidc.Geometry
	geomValid bool

	paused atomic.Bool
	faster bool

	finished atomic.Bool
	err      error
}

// NewPump is the preferred method of initialisation for the Pump type.
func NewPump(sampleRate int) *Pump {
	return &Pump{
		Audio:   NewAudioQueue(sampleRate, int(int64(sampleRate)*int64(audioQueueDuration)/int64(time.Second))),
		Limiter: limiter.NewLimiter(),
		events:  make(chan Event, eventQueueLength),
	}
}

// Resize implements the television.PixelRenderer interface.
func (p *Pump) Resize(geom vidc.Geometry) error {
	p.Limiter.SetRefreshRate(geom.Refresh)

	p.crit.Lock()
	defer p.crit.Unlock()
	p.geom = geom
	p.geomValid = true

	return nil
}

// NewFrame implements the television.PixelRenderer interface. The function
// blocks until it is time for the next frame.
func (p *Pump) NewFrame(frameNum int, img *image.RGBA) error {
	p.Frame.Set(frameNum, img)
	p.Limiter.CheckFrame()
	p.Limiter.MeasureActual()
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (p *Pump) EndRendering() error {
	return nil
}

// SetAudio implements the television.AudioMixer interface.
func (p *Pump) SetAudio(at scheduler.Time, left int16, right int16) error {
	p.Audio.Push(at, left, right)
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (p *Pump) EndMixing() error {
	return nil
}

// Geometry returns the most recent geometry from the television.
func (p *Pump) Geometry() (vidc.Geometry, bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.geom, p.geomValid
}

// Send an event to the emulation. Should be called by the GUI. The event is
// dropped if the queue is full.
func (p *Pump) Send(ev Event) {
	select {
	case p.events <- ev:
	default:
	}
}

// Paused returns true if the emulation has been paused by the user.
func (p *Pump) Paused() bool {
	return p.paused.Load()
}

// Check services events sent by the GUI. It is intended to be called by the
// continueCheck() function of the emulation loop, on the emulation goroutine.
func (p *Pump) Check(r Resetter) (govern.State, error) {
	for {
		select {
		case ev := <-p.events:
			switch ev := ev.(type) {
			case EventQuit:
				return govern.Ending, nil
			case EventKeyboard:
				if !ev.Down {
					continue
				}
				switch ev.Key {
				case KeyQuit:
					return govern.Ending, nil
				case KeyPause:
					p.paused.Store(!p.paused.Load())
				case KeyReset:
					if r != nil {
						r.Reset()
						p.Audio.Reset()
					}
				case KeyFaster:
					p.faster = !p.faster
					if p.faster {
						p.Limiter.SetScale(2.0)
					} else {
						p.Limiter.SetScale(1.0)
					}
				}
			}
			continue
		default:
		}
		break
	}

	if p.paused.Load() {
		time.Sleep(pausedSleep)
		return govern.Paused, nil
	}

	return govern.Running, nil
}

// Finish is called by the emulation goroutine when it has stopped.
func (p *Pump) Finish(err error) {
	p.crit.Lock()
	p.err = err
	p.crit.Unlock()
	p.finished.Store(true)
}

// Finished returns true if the emulation has stopped, along with the error
// that caused it to stop, if any.
func (p *Pump) Finished() (bool, error) {
	if !p.finished.Load() {
		return false, nil
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	return true, p.err
}
