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

import "image/color"

// expand a four bit colour channel to eight bits
func pal4bit(v uint32) uint8 {
	return uint8((v & 0x0f) * 0x11)
}

// update4bppPalette sets the pen from a 13 bit palette value. bits 3:0 are
// red, bits 7:4 green and bits 11:8 blue. bit 12 is the supremacy bit, which
// is stored but has no effect on the colour
func (vd *VIDC) update4bppPalette(pen uint16, data uint32) {
	r := data & 0x0f
	g := (data >> 4) & 0x0f
	b := (data >> 8) & 0x0f
	vd.setPen(pen, pal4bit(r), pal4bit(g), pal4bit(b), data&0x1fff)
}

// update8bppPalette sets the pen from a 24 bit palette value. bits 7:0 are
// red, bits 15:8 green and bits 23:16 blue
func (vd *VIDC) update8bppPalette(pen uint16, data uint32) {
	r := uint8(data)
	g := uint8(data >> 8)
	b := uint8(data >> 16)
	vd.setPen(pen, r, g, b, data&dataMask)
}

func (vd *VIDC) setPen(pen uint16, r, g, b uint8, raw uint32) {
	if int(pen) >= len(vd.palette) {
		return
	}
	if vd.variant.LCD {
		y := luminance(r, g, b)
		r, g, b = y, y, y
	}
	vd.palette[pen] = color.RGBA{R: r, G: g, B: b, A: 255}
	vd.palRaw[pen] = raw
}

// luminance using the integer form of the Rec. 601 weights
func luminance(r, g, b uint8) uint8 {
	y := (299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000
	return uint8(y)
}

// Pen returns the colour of the pen. Pens outside the palette are black.
func (vd *VIDC) Pen(pen uint16) color.RGBA {
	if int(pen) >= len(vd.palette) {
		return color.RGBA{A: 255}
	}
	return vd.palette[pen]
}

// PenRaw returns the raw value most recently written for the pen.
func (vd *VIDC) PenRaw(pen uint16) uint32 {
	if int(pen) >= len(vd.palRaw) {
		return 0
	}
	return vd.palRaw[pen]
}

// Supremacy returns the supremacy bit of the VIDC10 palette register. Always
// false for the VIDC20.
func (vd *VIDC) Supremacy(pen uint16) bool {
	if vd.variant.Generation == 20 {
		return false
	}
	return vd.PenRaw(pen)&0x1000 == 0x1000
}

// BorderPen returns the colour of the border.
func (vd *VIDC) BorderPen() color.RGBA {
	return vd.palette[vd.variant.palBorderBase]
}
