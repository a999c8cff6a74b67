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
	"math"

	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/logger"
)

func (vd *VIDC) writeCRTC(slot int, data uint32) {
	switch slot {
	case HDSR:
		vd.rawHDSR = data
	case HDER:
		vd.rawHDER = data
	}
	vd.crtc[slot] = vd.variant.convert(vd, slot, data)
	vd.refreshVideo()
}

// the converted horizontal display registers of the VIDC10 depend on the bpp
// mode. called whenever the control register is written
func (vd *VIDC) reconvertHorizontal() {
	vd.crtc[HDSR] = vd.variant.convert(vd, HDSR, vd.rawHDSR)
	vd.crtc[HDER] = vd.variant.convert(vd, HDER, vd.rawHDER)
}

func (vd *VIDC) logUnsupportedDepth(bpp uint8) {
	if vd.depthLogged {
		return
	}
	vd.depthLogged = true
	logger.Logf(vd.env, vd.Label(), "unsupported bpp mode (%d). using 8bpp", bpp)
}

// interlaceFactor is the multiplier for vertical positions
func (vd *VIDC) interlaceFactor() int {
	if vd.interlace {
		return 2
	}
	return 1
}

// duration of one scanline in picoseconds. zero if the timing registers are not
// usable
func (vd *VIDC) lineTime() float64 {
	if vd.pixelClock <= 0 || vd.crtc[HCR] == 0 {
		return 0
	}
	return float64(vd.crtc[HCR]) * float64(scheduler.Second) / vd.pixelClock
}

// number of scanlines in a frame
func (vd *VIDC) frameLines() int {
	return int(vd.crtc[VCR]) * vd.interlaceFactor()
}

// offset of the start of the line from the start of the frame. calculated
// from the line number each time rather than by accumulation
func (vd *VIDC) lineOffset(line int) scheduler.Time {
	return scheduler.Time(math.Round(float64(line) * vd.lineTime()))
}

// FrameTime returns the duration of a frame. Zero if the timing registers are
// not usable.
func (vd *VIDC) FrameTime() scheduler.Time {
	if vd.lineTime() == 0 {
		return 0
	}
	return vd.lineOffset(vd.frameLines())
}

// BeamPosition returns the scanline currently being scanned. Line zero is the
// first line after vertical sync.
func (vd *VIDC) BeamPosition() int {
	ft := vd.FrameTime()
	if ft <= 0 {
		return 0
	}

	pos := (vd.sched.Now() - vd.frameEpoch) % ft
	if pos < 0 {
		pos += ft
	}

	line := int(float64(pos) / vd.lineTime())

	// correct for rounding in the line offset calculation
	for line > 0 && vd.lineOffset(line) > pos {
		line--
	}
	for vd.lineOffset(line+1) <= pos {
		line++
	}

	return line
}

// Flyback returns true if the beam is outside the vertical display area.
func (vd *VIDC) Flyback() bool {
	vpos := vd.BeamPosition()
	il := vd.interlaceFactor()
	if vpos <= int(vd.crtc[VDSR])*il {
		return true
	}
	if vpos >= int(vd.crtc[VDER])*il {
		return true
	}
	return false
}
