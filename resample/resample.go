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

// Package resample converts the irregularly timed stereo samples produced by
// the VIDC into a stream at a fixed sample rate. The VIDC sample period is
// whatever the sound frequency register says it is and can change at any
// time, but WAV files and audio devices need a constant rate.
//
// Resampling is by sample-and-hold. Each output sample takes the value of the
// most recent input sample at or before the output sample's time. This is
// what the DAC outputs of the real chip do and so no filtering is applied.
package resample

import (
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
)

// Resampler converts timed samples to a fixed rate stream of interleaved
// left/right values. The zero value is not usable. Use NewResampler().
type Resampler struct {
	rate int64

	// index of the next output sample
	n int64

	// the value being held
	left  int16
	right int16
}

// NewResampler is the preferred method of initialisation for the Resampler
// type. Rates of less than one are treated as one.
func NewResampler(rate int) *Resampler {
	return &Resampler{rate: max(int64(rate), 1)}
}

// Rate returns the output sample rate.
func (r *Resampler) Rate() int {
	return int(r.rate)
}

// Reset the resampler. Output restarts at time zero and the held value is
// silent.
func (r *Resampler) Reset() {
	r.n = 0
	r.left = 0
	r.right = 0
}

// time of output sample n. calculated from n each time so that there is no
// accumulated error
func (r *Resampler) time(n int64) scheduler.Time {
	return scheduler.Time(n * int64(scheduler.Second) / r.rate)
}

// Push an input sample. Every output sample due before the input sample's
// time is appended to buf using the previously held value. The new value is
// then held.
func (r *Resampler) Push(at scheduler.Time, left int16, right int16, buf []int16) []int16 {
	buf = r.Flush(at, buf)
	r.left = left
	r.right = right
	return buf
}

// Flush appends every output sample due before the time, using the held value.
func (r *Resampler) Flush(at scheduler.Time, buf []int16) []int16 {
	for r.time(r.n) < at {
		buf = append(buf, r.left, r.right)
		r.n++
	}
	return buf
}
