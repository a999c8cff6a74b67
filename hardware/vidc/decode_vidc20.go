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

// register map of the VIDC20. addresses are in the upper byte of the data word
//
//	0x00 - 0x0f   video palette data (auto-incrementing index)
//	0x10 - 0x1f   video palette index
//	0x40 - 0x7f   border (0x4x) and cursor colours 1 to 3 (0x5x to 0x7x)
//	0x80 - 0x87   horizontal CRTC registers
//	0x88 - 0x8f   horizontal test registers
//	0x90 - 0x97   vertical CRTC registers
//	0x98 - 0x9f   vertical test registers
//	0xa0 - 0xa7   stereo image registers
//	0xb0          sound frequency
//	0xb1          sound control
//	0xc0          external register
//	0xd0          frequency synthesiser
//	0xe0          control
//	0xf0          data control
func decodeVIDC20(vd *VIDC, addr uint8, data uint32) {
	switch addr & 0xf0 {
	case 0x00:
		vd.update8bppPalette(uint16(vd.palIndex), data)
		vd.palIndex++
	case 0x10:
		vd.palIndex = uint8(data)
	case 0x40:
		vd.update8bppPalette(vd.variant.palBorderBase, data)
	case 0x50, 0x60, 0x70:
		vd.update8bppPalette(vd.variant.palCursorBase+uint16(addr>>4)-4, data)
	case 0x80:
		if addr&0x08 == 0x08 {
			return
		}
		vd.writeCRTC(int(addr&0x07), data)
	case 0x90:
		if addr&0x08 == 0x08 {
			return
		}
		vd.writeCRTC(VCR+int(addr&0x07), data)
	case 0xa0:
		if addr&0x08 == 0x08 {
			vd.logUndefined(addr, data)
			return
		}
		vd.mixer.SetStereoImage(((addr&0x07)+7)&7, uint8(data&0x07))
	case 0xb0:
		switch addr {
		case 0xb0:
			vd.writeSoundFrequency(data)
		case 0xb1:
			vd.writeVIDC20SoundControl(data)
		default:
			vd.logUndefined(addr, data)
		}
	case 0xc0:
		vd.external = data
	case 0xd0:
		vd.fsyn = data
	case 0xe0:
		vd.writeVIDC20Control(data)
	case 0xf0:
		vd.dataControl = data
	default:
		vd.logUndefined(addr, data)
	}
}

func (vd *VIDC) writeVIDC20Control(data uint32) {
	vd.control = data
	vd.pixelSource = uint8(data & vidc20ControlSource)
	vd.pixelRate = uint8((data >> vidc20ControlRateShift) & vidc20ControlRate)

	bpp := uint8((data >> vidc20ControlBPPShift) & vidc20ControlBPP)
	if bpp > vidc20MaxSupportedDepth {
		// 16bpp and 32bpp modes are not supported
		vd.logUnsupportedDepth(bpp)
		bpp = vidc20MaxSupportedDepth
	}
	vd.bppMode = bpp

	vd.interlace = data&vidc20ControlInterlace == vidc20ControlInterlace
	vd.pixelClock = vd.variant.pixelClock(vd)
	vd.reconvertHorizontal()
	vd.refreshVideo()
}

func (vd *VIDC) writeVIDC20SoundControl(data uint32) {
	vd.soundControl = data
	vd.mixer.SetSerialMode(data&vidc20SoundSerialDAC == vidc20SoundSerialDAC)
	vd.refreshSoundFrequency()
}

func convertVIDC20(_ *VIDC, slot int, data uint32) uint32 {
	r := data & 0x3fff

	switch slot {
	case HCR, HSWR:
		return r + 8
	case HBSR, HBER:
		return r + 12
	case HDSR, HDER:
		return r + 18
	case HCSR:
		return r + 17
	case HIR:
		return r
	case VCR:
		return r + 2
	}

	// remaining vertical registers
	return r + 1
}

// the pixel clock of the VIDC20 is one of three external clocks divided by a
// value between one and eight
func pixelClockVIDC20(vd *VIDC) float64 {
	var src float64

	switch vd.pixelSource {
	case vidc20PixelSourceVCLK:
		src = vd.env.Prefs.VCLK.Get().(float64)
	case vidc20PixelSourceHCLK:
		src = vd.env.Prefs.HCLK.Get().(float64)
	default:
		// the reserved source value falls back to RCLK
		src = vd.env.Prefs.RCLK.Get().(float64)
	}

	return src / float64(1+vd.pixelRate)
}
