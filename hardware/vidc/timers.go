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

import (
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/logger"
)

// the next event the video timer has been armed for
type videoEdge int

const (
	edgeDisplayEnd videoEdge = iota
	edgeDisplayStart
)

// the display end line must be beyond the first few lines of the frame for
// the video timer to be armed
const minVBlankLine = 2

// TimerFired is the single dispatch point for the timers armed by the VIDC.
// It implements the scheduler.Handler interface.
func (vd *VIDC) TimerFired(id scheduler.Timer) {
	switch id {
	case scheduler.VideoTimer:
		vd.videoTimerFired()
	case scheduler.SoundTimer:
		vd.soundTimerFired()
	default:
		logger.Logf(vd.env, vd.Label(), "unexpected timer: %s", id)
	}
}

func (vd *VIDC) videoTimerFired() {
	switch vd.nextEdge {
	case edgeDisplayEnd:
		vd.vblank = true
		vd.nextEdge = edgeDisplayStart
		vd.lines.VBlank(true)
	case edgeDisplayStart:
		vd.vblank = false
		vd.nextEdge = edgeDisplayEnd
		vd.lines.VBlank(false)
	}
	vd.rearmVideoTimer()
}

// time at which the beam next reaches the start of the line. the returned time
// is always after the current time
func (vd *VIDC) nextLineTime(line int) scheduler.Time {
	ft := vd.FrameTime()
	now := vd.sched.Now()

	pos := (now - vd.frameEpoch) % ft
	if pos < 0 {
		pos += ft
	}

	lines := vd.frameLines()
	line %= lines
	if line < 0 {
		line += lines
	}

	d := vd.lineOffset(line) - pos
	if d <= 0 {
		d += ft
	}

	return now + d
}

func (vd *VIDC) rearmVideoTimer() {
	if !vd.sane() || vd.FrameTime() <= 0 {
		vd.sched.Rearm(scheduler.VideoTimer, scheduler.Never)
		return
	}

	il := vd.interlaceFactor()

	end := int(vd.crtc[VDER]) * il
	if end <= minVBlankLine {
		vd.sched.Rearm(scheduler.VideoTimer, scheduler.Never)
		return
	}

	switch vd.nextEdge {
	case edgeDisplayEnd:
		vd.sched.Rearm(scheduler.VideoTimer, vd.nextLineTime(end))
	case edgeDisplayStart:
		vd.sched.Rearm(scheduler.VideoTimer, vd.nextLineTime(int(vd.crtc[VDSR])*il))
	}
}

func (vd *VIDC) writeSoundFrequency(data uint32) {
	vd.soundLatch = uint8(data & soundFrequencyLatch)
	vd.soundTest = data&soundFrequencyTest == soundFrequencyTest
	vd.refreshSoundFrequency()
}

// the sample period is measured in microseconds. the latch value is the
// number of microseconds between samples minus two, multiplied by the
// divider of the variant
func (vd *VIDC) refreshSoundFrequency() {
	if !vd.soundMode {
		vd.soundPeriod = 0
		vd.sched.Rearm(scheduler.SoundTimer, scheduler.Never)
		return
	}

	vd.soundPeriod = scheduler.Time(vd.variant.soundDivider * float64(int(vd.soundLatch)+2) * float64(scheduler.Microsecond))
	vd.sched.Rearm(scheduler.SoundTimer, vd.sched.Now()+vd.soundPeriod)
}

func (vd *VIDC) soundTimerFired() {
	now := vd.sched.Now()

	l, r := vd.mixer.Mix()
	for _, o := range vd.outputs {
		o.SetAudio(now, l, r)
	}

	// the host responds to the DRQ by writing the next set of samples
	vd.lines.SoundDRQ(true)
	vd.lines.SoundDRQ(false)

	if vd.soundMode && vd.soundPeriod > 0 {
		vd.sched.Rearm(scheduler.SoundTimer, now+vd.soundPeriod)
	}
}
