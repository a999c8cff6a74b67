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
	"image"
	"image/color"
)

// Render draws the current state of the VIDC into the surface. The geometry
// coordinates are relative to the top-left corner of the surface bounds. Only
// pixels inside both clip and the surface bounds are written.
//
// The clip area is first filled with the border colour. If the geometry is
// sane, the display area is then drawn from the start of video memory,
// followed by the cursor if it is enabled.
func (vd *VIDC) Render(surface *image.RGBA, clip image.Rectangle) {
	if surface == nil {
		return
	}

	clip = clip.Intersect(surface.Bounds())
	if clip.Empty() {
		return
	}

	fill(surface, clip, vd.BorderPen())

	g, ok := vd.Geometry()
	if !ok {
		return
	}

	origin := surface.Bounds().Min

	var penBase uint16
	if vd.bppMode != 3 {
		penBase = vd.variant.pal4bppBase
	}
	vd.draw(surface, clip, origin, vd.vram, vramMask, vd.bppMode, penBase,
		g.Display.Min, g.Display.Dx(), int(vd.crtc[VDER])-int(vd.crtc[VDSR]), false)

	if vd.cursorEnable {
		cw := vd.CursorWindow()
		penBase = vd.variant.pal4bppBase + vd.variant.palCursorBase
		vd.draw(surface, clip, origin, vd.cram, cramMask, cursorBPPMode, penBase,
			cw.Min, cursorWidth, vd.cursorRows(), true)
	}
}

func fill(surface *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := surface.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			surface.Pix[i] = c.R
			surface.Pix[i+1] = c.G
			surface.Pix[i+2] = c.B
			surface.Pix[i+3] = c.A
			i += 4
		}
	}
}

// draw unpacks pixel data from memory and writes it to the surface. the first
// pixel of each byte is in the most significant bits. rows are doubled when
// interlace is enabled. when drawing the cursor, pixels of value zero are
// transparent
func (vd *VIDC) draw(surface *image.RGBA, clip image.Rectangle, origin image.Point,
	mem []uint8, mask uint32, bppMode uint8, penBase uint16,
	start image.Point, width int, rows int, cursor bool) {

	if width <= 0 || rows <= 0 {
		return
	}

	bits := uint(bitsPerPixel[bppMode])
	penMask := uint8((1 << bits) - 1)
	perByte := 8 >> bppMode
	stride := vd.stride(width, bppMode)
	il := vd.interlaceFactor()

	// range of source pixels that fall inside the clip area
	x0 := max(0, clip.Min.X-origin.X-start.X)
	x1 := min(width, clip.Max.X-origin.X-start.X)
	if x0 >= x1 {
		return
	}

	for sy := range rows {
		for d := range il {
			dy := origin.Y + start.Y + sy*il + d
			if dy < clip.Min.Y || dy >= clip.Max.Y {
				continue
			}

			line := uint32(sy * stride)
			for sx := x0; sx < x1; sx++ {
				b := mem[(line+uint32(sx/perByte))&mask]
				shift := 8 - bits*uint(sx%perByte+1)
				dot := (b >> shift) & penMask
				if cursor && dot == 0 {
					continue
				}

				c := vd.Pen(penBase + uint16(dot))
				i := surface.PixOffset(origin.X+start.X+sx, dy)
				surface.Pix[i] = c.R
				surface.Pix[i+1] = c.G
				surface.Pix[i+2] = c.B
				surface.Pix[i+3] = c.A
			}
		}
	}
}
