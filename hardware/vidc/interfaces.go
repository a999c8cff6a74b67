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

package vidc

import "github.com/jetsetilly/vidcemu/hardware/scheduler"

// Scheduler is the subset of the scheduler used by the VIDC. It is satisfied
// by the scheduler.Scheduler type.
type Scheduler interface {
	Now() scheduler.Time
	Rearm(id scheduler.Timer, at scheduler.Time)
}

// Lines are the output signals of the VIDC.
type Lines interface {
	// the vblank line is asserted at the end of the display area and
	// deasserted at the start of the display area
	VBlank(asserted bool)

	// sound DRQ is pulsed whenever the VIDC wants a new set of samples
	SoundDRQ(asserted bool)
}

// FramePump is implemented by the host that owns the output surface.
type FramePump interface {
	// Resize is called once for every change of geometry. The Geometry value
	// is always sane
	Resize(geom Geometry)
}

// AudioOutput receives every stereo sample produced by the VIDC.
type AudioOutput interface {
	SetAudio(at scheduler.Time, left int16, right int16)
}

type nullLines struct{}

func (nullLines) VBlank(_ bool)   {}
func (nullLines) SoundDRQ(_ bool) {}

type nullPump struct{}

func (nullPump) Resize(_ Geometry) {}
