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

package resample_test

import (
	"testing"

	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/resample"
	"github.com/jetsetilly/vidcemu/test"
)

func equal(a []int16, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSampleAndHold(t *testing.T) {
	// four samples per second. output times are 0, 250ms, 500ms, 750ms...
	r := resample.NewResampler(4)
	test.ExpectEquality(t, r.Rate(), 4)

	var buf []int16

	buf = r.Push(300*scheduler.Millisecond, 10, -10, buf)
	test.ExpectSuccess(t, equal(buf, []int16{0, 0, 0, 0}))

	buf = r.Push(600*scheduler.Millisecond, 20, -20, buf[:0])
	test.ExpectSuccess(t, equal(buf, []int16{10, -10}))

	// an output sample at exactly the input time takes the new value
	buf = r.Push(scheduler.Second, 30, -30, buf[:0])
	test.ExpectSuccess(t, equal(buf, []int16{20, -20}))

	buf = r.Flush(1500*scheduler.Millisecond, buf[:0])
	test.ExpectSuccess(t, equal(buf, []int16{30, -30, 30, -30}))
}

func TestFastInput(t *testing.T) {
	// input faster than output. intermediate values are dropped
	r := resample.NewResampler(1)

	var buf []int16
	for i := range 10 {
		buf = r.Push(scheduler.Time(i)*100*scheduler.Millisecond, int16(i), int16(i), buf)
	}
	test.ExpectSuccess(t, equal(buf, []int16{0, 0}))

	buf = r.Flush(scheduler.Second+1, buf[:0])
	test.ExpectSuccess(t, equal(buf, []int16{9, 9}))
}

func TestReset(t *testing.T) {
	r := resample.NewResampler(0)
	test.ExpectEquality(t, r.Rate(), 1)

	buf := r.Push(2*scheduler.Second, 5, 5, nil)
	test.ExpectEquality(t, len(buf), 4)

	r.Reset()
	buf = r.Flush(1, nil)
	test.ExpectSuccess(t, equal(buf, []int16{0, 0}))
}
