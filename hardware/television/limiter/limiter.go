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

// Package limiter paces an emulation loop to wall-clock time. The emulation
// itself runs on virtual time and has no idea how fast the host is. Frontends
// call CheckFrame() once per rendered frame and the limiter blocks until it is
// time for the next frame.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultRefreshRate is used until SetRefreshRate() is called with a usable
// value.
const DefaultRefreshRate = 50.0

// limits of the refresh rate accepted by SetRefreshRate()
const (
	minRefreshRate = 1.0
	maxRefreshRate = 250.0
)

// Limiter blocks the caller of CheckFrame() so that frames are produced at the
// refresh rate.
type Limiter struct {
	// whether to wait in CheckFrame()
	Active bool

	// the ideal number of frames per second
	RefreshRate atomic.Value // float64

	// the measured number of frames per second
	Measured atomic.Value // float64

	// speed multiplier applied to the refresh rate
	scale float64

	// pulse that performs the limiting. to reduce the cost of waiting on the
	// ticker, the pulse covers several frames at high refresh rates
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// skip waiting for the specified number of frames
	Nudge atomic.Int32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limiter starts active with the DefaultRefreshRate.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		Active: true,
		scale:  1.0,
	}
	lmtr.Measured.Store(0.0)
	lmtr.pulse = time.NewTicker(time.Second / DefaultRefreshRate)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.SetRefreshRate(DefaultRefreshRate)
	return lmtr
}

// SetRefreshRate sets the number of frames per second. Values outside the
// supported range are clamped.
func (lmtr *Limiter) SetRefreshRate(hz float64) {
	hz = min(max(hz, minRefreshRate), maxRefreshRate)
	lmtr.RefreshRate.Store(hz)
	lmtr.reset()
}

// SetScale sets a speed multiplier. A value of two runs the emulation at
// twice the refresh rate. Values of zero or less are ignored.
func (lmtr *Limiter) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	lmtr.scale = scale
	lmtr.reset()
}

func (lmtr *Limiter) reset() {
	fps := lmtr.RefreshRate.Load().(float64) * lmtr.scale

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float64(time.Second) / fps * float64(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field once per second. It is cheap to
// call more often than that.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.Measured.Store(float64(lmtr.measureCt) / t.Sub(lmtr.measureTime).Seconds())
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the tickers. The limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
