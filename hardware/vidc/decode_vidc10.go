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
	"github.com/jetsetilly/vidcemu/hardware/clocks"
)

// register map of the VIDC10. addresses are in the upper byte of the data word
//
//	0x00 - 0x3f   video palette (16 registers)
//	0x40 - 0x4f   border and cursor palette
//	0x60 - 0x7f   stereo image registers
//	0x80 - 0xbf   CRTC registers
//	0xc0 - 0xdf   sound frequency
//	0xe0 - 0xff   control
func decodeVIDC10(vd *VIDC, addr uint8, data uint32) {
	switch {
	case addr < 0x40:
		vd.writeVIDC10Palette(addr>>2, data)
	case addr < 0x50:
		// border is the first of these pens and cursor colours 1 to 3 follow
		vd.update4bppPalette(vd.variant.palBorderBase+uint16((addr-0x40)>>2), data)
	case addr < 0x60:
		vd.logUndefined(addr, data)
	case addr < 0x80:
		// stereo image register 0 is at 0x64 and register 7 at 0x60
		n := (addr - 0x60) >> 2
		vd.mixer.SetStereoImage((n+7)&7, uint8(data&0x07))
	case addr < 0xc0:
		vd.writeCRTC(int(addr-0x80)>>2, data)
	case addr < 0xe0:
		vd.writeSoundFrequency(data)
	default:
		vd.writeVIDC10Control(data)
	}
}

// write to one of the sixteen video palette registers. in addition to
// updating the 4bpp pen, the sixteen 8bpp pens that use the register are
// regenerated. in 8bpp mode, the upper four bits of each pixel replace the
// most significant bit of each colour channel
func (vd *VIDC) writeVIDC10Palette(n uint8, data uint32) {
	vd.update4bppPalette(vd.variant.pal4bppBase+uint16(n), data)

	for idx := uint32(0); idx < 0x100; idx += 0x10 {
		b := ((data & 0x700) >> 8) | ((idx & 0x80) >> 4)
		g := ((data & 0x30) >> 4) | ((idx & 0x60) >> 3)
		r := (data & 0x7) | ((idx & 0x10) >> 1)
		vd.setPen(uint16(n)+uint16(idx), pal4bit(r), pal4bit(g), pal4bit(b), data)
	}
}

func (vd *VIDC) writeVIDC10Control(data uint32) {
	vd.control = data
	vd.pixelSource = uint8(data & vidc10ControlPixelClock)
	vd.bppMode = uint8((data >> vidc10ControlBPPShift) & vidc10ControlBPP)
	vd.interlace = data&vidc10ControlInterlace == vidc10ControlInterlace
	vd.pixelClock = vd.variant.pixelClock(vd)
	vd.reconvertHorizontal()
	vd.refreshVideo()
}

func convertVIDC10(vd *VIDC, slot int, data uint32) uint32 {
	r := (data >> 14) & 0x3ff

	switch slot {
	case HCR, HSWR:
		return r*2 + 2
	case HBSR, HBER:
		return r*2 + 1
	case HDSR, HDER:
		return r*2 + vidc10XStep[vd.bppMode]
	case HCSR:
		return ((data >> 13) & 0x7ff) + 6
	case HIR:
		return r
	}

	// vertical registers
	return r + 1
}

func pixelClockVIDC10(vd *VIDC) float64 {
	return clocks.VIDC10PixelClocks[vd.pixelSource&vidc10ControlPixelClock]
}
