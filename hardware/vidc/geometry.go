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
	"fmt"
	"image"
)

// Geometry describes the shape of the image produced by the VIDC. All
// coordinates are relative to the top-left of the border area, which is the
// top-left of the output surface.
type Geometry struct {
	// size of the output surface. this is the area between the border start
	// and border end registers
	Width  int
	Height int

	// the display area within the surface. the rectangle is not canonicalised
	// and may be empty or inverted if the registers are programmed that way
	Display image.Rectangle

	// the total number of pixels in a line and lines in a frame, including
	// sync and blanking
	Total image.Point

	BPP        int
	Interlace  bool
	PixelClock float64

	// frames per second
	Refresh float64

	// output is to an LCD panel
	LCD bool
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d display=%v total=%dx%d bpp=%d interlace=%v clk=%.0f refresh=%.2f",
		g.Width, g.Height, g.Display, g.Total.X, g.Total.Y, g.BPP, g.Interlace, g.PixelClock, g.Refresh)
}

// the timing registers describe a usable frame
func (vd *VIDC) sane() bool {
	c := &vd.crtc
	if c[HCR] == 0 || c[VCR] == 0 {
		return false
	}
	if c[HCR] < c[HBER] || c[HBER] < c[HBSR] {
		return false
	}
	if c[VCR] < c[VBER] || c[VBER] < c[VBSR] {
		return false
	}
	return vd.pixelClock > 0
}

// Geometry returns the current geometry of the image. The second return value
// is false if the timing registers do not describe a usable frame.
func (vd *VIDC) Geometry() (Geometry, bool) {
	if !vd.sane() {
		return Geometry{}, false
	}

	c := &vd.crtc
	il := vd.interlaceFactor()

	g := Geometry{
		Width:  int(c[HBER]) - int(c[HBSR]),
		Height: (int(c[VBER]) - int(c[VBSR])) * il,
		Display: image.Rectangle{
			Min: image.Point{
				X: int(c[HDSR]) - int(c[HBSR]),
				Y: (int(c[VDSR]) - int(c[VBSR])) * il,
			},
			Max: image.Point{
				X: int(c[HDER]) - int(c[HBSR]),
				Y: (int(c[VDER]) - int(c[VBSR])) * il,
			},
		},
		Total:      image.Point{X: int(c[HCR]), Y: vd.frameLines()},
		BPP:        bitsPerPixel[vd.bppMode],
		Interlace:  vd.interlace,
		PixelClock: vd.pixelClock,
		Refresh:    vd.pixelClock / float64(c[HCR]) / float64(vd.frameLines()),
		LCD:        vd.variant.LCD,
	}

	return g, true
}

// CursorWindow returns the area of the surface covered by the cursor. The
// rectangle is not canonicalised.
func (vd *VIDC) CursorWindow() image.Rectangle {
	c := &vd.crtc
	il := vd.interlaceFactor()
	x := int(c[HCSR]) - int(c[HBSR])
	y := (int(c[VCSR]) - int(c[VBSR])) * il
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + cursorWidth, Y: y + vd.cursorRows()*il},
	}
}

func (vd *VIDC) cursorRows() int {
	return int(vd.crtc[VCER]) - int(vd.crtc[VCSR])
}

// CursorSize returns the number of bytes of cursor data required by the
// current cursor height. The memory controller uses this to decide how much
// data to transfer with WriteCRAM().
func (vd *VIDC) CursorSize() uint32 {
	return uint32(vd.cursorRows()) * (cursorWidth / 4)
}

// refreshVideo is called after every CRTC or control register write. if the
// geometry has changed the frame pump is told and the beam restarts at the top
// of the frame
func (vd *VIDC) refreshVideo() {
	g, ok := vd.Geometry()
	if ok && (!vd.geomSignalled || g != vd.geom) {
		vd.geom = g
		vd.geomSignalled = true
		vd.frameEpoch = vd.sched.Now()
		vd.nextEdge = edgeDisplayEnd
		if vd.vblank {
			vd.vblank = false
			vd.lines.VBlank(false)
		}
		vd.pump.Resize(g)
	}
	vd.rearmVideoTimer()
}
