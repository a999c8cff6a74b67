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
	"fmt"

	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware/memc"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/television"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
)

// Machine is the emulated hardware.
type Machine struct {
	Env *environment.Environment

	Sched *scheduler.Scheduler
	VIDC  *vidc.VIDC
	MEMC  *memc.MEMC

	// the television is not part of the machine but is attached to it
	TV *television.Television
}

// NewMachine creates a new Machine and everything associated with the
// hardware. A ramSize of zero gives the default amount of RAM.
func NewMachine(env *environment.Environment, variant *vidc.Variant, ramSize int) (*Machine, error) {
	m := &Machine{
		Env:   env,
		Sched: scheduler.NewScheduler(),
	}

	m.MEMC = memc.NewMEMC(env, ramSize)
	m.TV = television.NewTelevision(env, m.Sched)

	var err error
	m.VIDC, err = vidc.NewVIDC(env, variant, m.Sched, m.MEMC, m.TV)
	if err != nil {
		return nil, err
	}

	m.MEMC.AttachVIDC(m.VIDC)
	m.TV.AttachSource(m.VIDC)
	m.VIDC.AddAudioOutput(m.TV)

	err = m.Sched.Attach(scheduler.VideoTimer, m.VIDC)
	if err != nil {
		return nil, err
	}
	err = m.Sched.Attach(scheduler.SoundTimer, m.VIDC)
	if err != nil {
		return nil, err
	}
	err = m.Sched.Attach(scheduler.FrameTimer, m.TV)
	if err != nil {
		return nil, err
	}

	m.TV.Start()

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", m.Sched, m.VIDC, m.MEMC, m.TV)
}

// Reset returns virtual time to zero and resets every component. The contents
// of RAM are kept.
func (m *Machine) Reset() {
	m.Sched.Reset()
	m.VIDC.Reset()
	m.MEMC.Reset()
	m.TV.Reset()
}

// Now returns the current virtual time.
func (m *Machine) Now() scheduler.Time {
	return m.Sched.Now()
}
