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

package scheduler

import (
	"fmt"
	"math"
)

// Time is a point on (or a distance along) the virtual timeline, measured in
// picoseconds.
type Time int64

// Common durations.
const (
	Picosecond  Time = 1
	Nanosecond       = 1000 * Picosecond
	Microsecond      = 1000 * Nanosecond
	Millisecond      = 1000 * Microsecond
	Second           = 1000 * Millisecond
)

// Never is the due time of a disarmed timer.
const Never = Time(math.MaxInt64)

// FromSeconds converts a duration in seconds to Time. The result is rounded to
// the nearest picosecond.
func FromSeconds(s float64) Time {
	return Time(math.Round(s * float64(Second)))
}

// Seconds returns the time value in seconds.
func (t Time) Seconds() float64 {
	return float64(t) / float64(Second)
}

func (t Time) String() string {
	if t == Never {
		return "never"
	}
	switch {
	case t >= Second || t <= -Second:
		return fmt.Sprintf("%.6fs", t.Seconds())
	case t >= Millisecond || t <= -Millisecond:
		return fmt.Sprintf("%.3fms", float64(t)/float64(Millisecond))
	case t >= Microsecond || t <= -Microsecond:
		return fmt.Sprintf("%.3fus", float64(t)/float64(Microsecond))
	}
	return fmt.Sprintf("%dps", int64(t))
}

// Timer identifies one of the timers managed by the scheduler.
type Timer int

// List of valid Timer values. The VIDC uses the first two and the host uses
// FrameTimer to drive the frame-pump.
const (
	VideoTimer Timer = iota
	SoundTimer
	FrameTimer
	NumTimers
)

func (id Timer) String() string {
	switch id {
	case VideoTimer:
		return "video"
	case SoundTimer:
		return "sound"
	case FrameTimer:
		return "frame"
	}
	return fmt.Sprintf("timer%d", int(id))
}

// Pending is a record of an armed timer.
type Pending struct {
	Timer Timer
	Due   Time
}

func (p Pending) String() string {
	return fmt.Sprintf("%s @ %s", p.Timer, p.Due)
}
