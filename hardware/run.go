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

package hardware

import (
	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
)

// UnsupportedState is returned by Run() when the continueCheck() function
// returns a state that the function cannot handle.
const UnsupportedState = "machine: unsupported emulation state (%s)"

// Idle is returned when the machine has no armed timers. This should not
// happen once the television has been started.
const Idle = "machine: no timers armed"

// step fires the next timer and checks for an error from the television
func (m *Machine) step() error {
	ok, err := m.Sched.Step()
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(Idle)
	}
	return m.TV.Err()
}

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every timer event and should return Ending when
// an external event (eg. a GUI event) indicates that the emulation should
// stop. A nil continueCheck runs forever, or until an error occurs.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if err := m.step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrames sets the machine running for the specified number of
// television frames. Useful for digests and headless recording. The
// continueCheck function is called every time a frame completes and may be
// nil.
func (m *Machine) RunForFrames(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := m.TV.FrameNum()
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum < targetFrame && state != govern.Ending {
		err := m.step()
		if err != nil {
			return err
		}

		if fn := m.TV.FrameNum(); fn != frameNum {
			frameNum = fn
			state, err = continueCheck(frameNum)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// RunFor advances virtual time by the duration, firing every timer that
// becomes due on the way.
func (m *Machine) RunFor(d scheduler.Time) error {
	if err := m.Sched.AdvanceBy(d); err != nil {
		return err
	}
	return m.TV.Err()
}
