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

package vidc_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/test"
)

var (
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func render(h *host) *image.RGBA {
	g, _ := h.vd.Geometry()
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	h.vd.Render(img, img.Bounds())
	return img
}

func TestVIDC20Geometry(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)

	g, ok := h.vd.Geometry()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, g.Width, 700)
	test.ExpectEquality(t, g.Height, 290)
	test.ExpectEquality(t, g.Display.Min, image.Point{X: 6, Y: 9})
	test.ExpectEquality(t, g.Display.Dx(), 640)
	test.ExpectEquality(t, g.Display.Dy(), 256)
	test.ExpectEquality(t, g.Total, image.Point{X: 800, Y: 300})
	test.ExpectEquality(t, g.BPP, 4)
	test.ExpectEquality(t, g.PixelClock, 24000000.0)
	test.ExpectApproximate(t, g.Refresh, 100.0, 0.0001)
	test.ExpectFailure(t, g.LCD)

	// 4bpp display of 640 pixels by 256 lines
	test.ExpectEquality(t, h.vd.DisplaySize(), uint32(640*256/2))
}

func TestVIDC20Render(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)

	// pen 5 red, pen 1 green, border blue
	h.vd.WriteRegister(0x10, 5)
	h.vd.WriteRegister(0x00, 0x0000ff)
	h.vd.WriteRegister(0x10, 1)
	h.vd.WriteRegister(0x00, 0x00ff00)
	h.vd.WriteRegister(0x40, 0xff0000)

	// first pixel of each byte is in the upper nibble
	h.vd.WriteVRAM(0, 0x51)
	h.vd.WriteVRAM(320, 0x10)
	h.vd.WriteVRAM(319, 0x05)

	img := render(h)

	// display area
	test.ExpectEquality(t, img.RGBAAt(6, 9), red)
	test.ExpectEquality(t, img.RGBAAt(7, 9), green)
	test.ExpectEquality(t, img.RGBAAt(8, 9), black)
	test.ExpectEquality(t, img.RGBAAt(6, 10), green)
	test.ExpectEquality(t, img.RGBAAt(644, 9), black)
	test.ExpectEquality(t, img.RGBAAt(645, 9), red)
	test.ExpectEquality(t, img.RGBAAt(645, 264), black)

	// border area surrounds the display
	test.ExpectEquality(t, img.RGBAAt(5, 9), blue)
	test.ExpectEquality(t, img.RGBAAt(646, 9), blue)
	test.ExpectEquality(t, img.RGBAAt(6, 8), blue)
	test.ExpectEquality(t, img.RGBAAt(6, 265), blue)
	test.ExpectEquality(t, img.RGBAAt(0, 0), blue)
	test.ExpectEquality(t, img.RGBAAt(699, 289), blue)
}

func TestVIDC10Render(t *testing.T) {
	h := newHost(t, vidc.VIDC10, "test")
	programVIDC10(h)

	g, ok := h.vd.Geometry()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, g.Width, 700)
	test.ExpectEquality(t, g.Height, 290)
	test.ExpectEquality(t, g.Display.Min, image.Point{X: 6, Y: 9})
	test.ExpectEquality(t, g.Display.Dx(), 640)

	h.vd.WriteRegister(0x14, 0x00f) // pen 5 red
	h.vd.WriteRegister(0x04, 0x0f0) // pen 1 green
	h.vd.WriteRegister(0x40, 0xf00) // border blue

	h.vd.WriteVRAM(0, 0x51)
	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 9), red)
	test.ExpectEquality(t, img.RGBAAt(7, 9), green)
	test.ExpectEquality(t, img.RGBAAt(8, 9), black)
	test.ExpectEquality(t, img.RGBAAt(5, 9), blue)
	test.ExpectEquality(t, img.RGBAAt(646, 9), blue)
}

func TestVIDC10Render8bpp(t *testing.T) {
	h := newHost(t, vidc.VIDC10, "test")
	programVIDC10(h)

	// 24MHz, 8bpp
	h.vd.WriteRegister(0xe0, 0x0f)
	test.ExpectEquality(t, h.vd.BPP(), 8)

	// palette register 5 supplies the lower bits of pens 0x05, 0x15, etc.
	h.vd.WriteRegister(0x14, 0x777)
	h.vd.WriteVRAM(0, 0x05)
	h.vd.WriteVRAM(1, 0xf5)

	img := render(h)
	g, _ := h.vd.Geometry()
	x, y := g.Display.Min.X, g.Display.Min.Y
	test.ExpectEquality(t, img.RGBAAt(x, y), color.RGBA{R: 0x77, G: 0x33, B: 0x77, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(x+1, y), white)
}

func TestBitDepths(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)

	h.vd.WriteRegister(0x10, 1)
	h.vd.WriteRegister(0x00, 0xffffff)
	h.vd.WriteRegister(0x10, 3)
	h.vd.WriteRegister(0x00, 0x0000ff)

	// 1bpp. 0x80 is a single set pixel at the start of the line
	h.vd.WriteRegister(0xe0, 0x02)
	h.vd.WriteVRAM(0, 0x81)
	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 9), white)
	test.ExpectEquality(t, img.RGBAAt(7, 9), black)
	test.ExpectEquality(t, img.RGBAAt(13, 9), white)

	// 2bpp. 0x1c is pixels 0, 1, 3, 0
	h.vd.WriteRegister(0xe0, 0x22)
	h.vd.WriteVRAM(0, 0x1c)
	img = render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 9), black)
	test.ExpectEquality(t, img.RGBAAt(7, 9), white)
	test.ExpectEquality(t, img.RGBAAt(8, 9), red)
	test.ExpectEquality(t, img.RGBAAt(9, 9), black)

	// 2bpp lines are 160 bytes long
	h.vd.WriteVRAM(160, 0x40)
	img = render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 10), white)
}

func TestCursor(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)

	h.vd.WriteRegister(0x86, 100) // HCSR = 117
	h.vd.WriteRegister(0x96, 19)  // VCSR = 20
	h.vd.WriteRegister(0x97, 23)  // VCER = 24

	test.ExpectEquality(t, h.vd.CursorSize(), uint32(32))
	test.ExpectEquality(t, h.vd.CursorWindow(), image.Rect(105, 19, 137, 23))

	h.vd.WriteRegister(0x50, 0xffffff) // cursor colour 1
	h.vd.WriteRegister(0x70, 0x0000ff) // cursor colour 3
	h.vd.WriteRegister(0x10, 2)
	h.vd.WriteRegister(0x00, 0x00ff00) // pen 2

	// cursor, first row. colour 1 then a transparent pixel then colour 3
	h.vd.WriteCRAM(0, 0x4c)
	// last row of the cursor
	h.vd.WriteCRAM(31, 0x03)

	// display pixel under the transparent cursor pixel at display column 100,
	// line 10
	h.vd.WriteVRAM(10*320+50, 0x20)

	// cursor is not drawn until enabled
	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(105, 19), black)

	h.vd.SetCursorEnable(true)
	img = render(h)
	test.ExpectEquality(t, img.RGBAAt(105, 19), white)
	test.ExpectEquality(t, img.RGBAAt(106, 19), green)
	test.ExpectEquality(t, img.RGBAAt(107, 19), red)
	test.ExpectEquality(t, img.RGBAAt(108, 19), black)
	test.ExpectEquality(t, img.RGBAAt(136, 22), red)
	test.ExpectEquality(t, img.RGBAAt(136, 23), black)
}

func TestCursorInBorder(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)
	h.vd.WriteRegister(0x40, 0xff0000)
	h.vd.WriteRegister(0x50, 0xffffff)

	// cursor drawn over the top border
	h.vd.WriteRegister(0x86, 0) // HCSR = 17, surface x = 5
	h.vd.WriteRegister(0x96, 0)
	h.vd.WriteRegister(0x97, 1)
	h.vd.WriteCRAM(0, 0x40)
	h.vd.SetCursorEnable(true)

	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(5, 0), white)
	test.ExpectEquality(t, img.RGBAAt(6, 0), blue)
}

func TestRenderClipping(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)
	h.vd.WriteRegister(0x10, 5)
	h.vd.WriteRegister(0x00, 0x0000ff)
	h.vd.WriteRegister(0x40, 0xff0000)
	h.vd.WriteVRAM(0, 0x55)

	// surface with an offset origin. geometry is relative to the origin
	img := image.NewRGBA(image.Rect(100, 100, 800, 390))
	marker := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			img.SetRGBA(x, y, marker)
		}
	}

	clip := image.Rect(106, 109, 107, 110)
	h.vd.Render(img, clip)
	test.ExpectEquality(t, img.RGBAAt(106, 109), red)
	test.ExpectEquality(t, img.RGBAAt(107, 109), marker)
	test.ExpectEquality(t, img.RGBAAt(105, 109), marker)
	test.ExpectEquality(t, img.RGBAAt(106, 110), marker)

	// clip outside the surface writes nothing
	h.vd.Render(img, image.Rect(0, 0, 50, 50))
	test.ExpectEquality(t, img.RGBAAt(100, 100), marker)

	// a nil surface is ignored
	h.vd.Render(nil, clip)
}

func TestRenderInsane(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	h.vd.WriteRegister(0x40, 0xff0000)
	h.vd.WriteVRAM(0, 0xff)

	// no timing registers. only the border is drawn
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	h.vd.Render(img, img.Bounds())
	test.ExpectEquality(t, img.RGBAAt(0, 0), blue)
	test.ExpectEquality(t, img.RGBAAt(15, 15), blue)
}

func TestInvertedDisplay(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)
	h.vd.WriteRegister(0x40, 0xff0000)

	// display end before display start
	h.vd.WriteRegister(0x84, 0)
	h.vd.WriteRegister(0x83, 100)
	g, ok := h.vd.Geometry()
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, g.Display.Dx() < 0)

	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 9), blue)
	test.ExpectEquality(t, img.RGBAAt(120, 100), blue)
}

func TestInterlace(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)
	h.vd.WriteRegister(0xe0, 0x1042)

	g, ok := h.vd.Geometry()
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, g.Interlace)
	test.ExpectEquality(t, g.Height, 580)
	test.ExpectEquality(t, g.Display.Min, image.Point{X: 6, Y: 18})
	test.ExpectEquality(t, g.Display.Dy(), 512)
	test.ExpectEquality(t, g.Total.Y, 600)

	// both fields make up one frame
	test.ExpectApproximate(t, g.Refresh, 50.0, 0.0001)
	test.ExpectApproximate(t, g.Refresh*h.vd.FrameTime().Seconds(), 1.0, 0.0001)

	h.vd.WriteRegister(0x10, 5)
	h.vd.WriteRegister(0x00, 0x0000ff)
	h.vd.WriteVRAM(0, 0x50)
	h.vd.WriteVRAM(320, 0x50)

	// every line is doubled
	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 18), red)
	test.ExpectEquality(t, img.RGBAAt(6, 19), red)
	test.ExpectEquality(t, img.RGBAAt(6, 20), red)
	test.ExpectEquality(t, img.RGBAAt(6, 21), red)
	test.ExpectEquality(t, img.RGBAAt(6, 22), black)
}

func TestRenderMaskedVRAM(t *testing.T) {
	h := newHost(t, vidc.VIDC20, "test")
	programVIDC20(h)

	h.vd.WriteRegister(0x10, 5)
	h.vd.WriteRegister(0x00, 0x0000ff)

	// writes at the buffer size wrap to the start of the display
	h.vd.WriteVRAM(vidc.VRAMSize, 0x50)
	h.vd.WriteVRAM(vidc.VRAMSize+1, 0x05)

	img := render(h)
	test.ExpectEquality(t, img.RGBAAt(6, 9), red)
	test.ExpectEquality(t, img.RGBAAt(7, 9), black)
	test.ExpectEquality(t, img.RGBAAt(8, 9), black)
	test.ExpectEquality(t, img.RGBAAt(9, 9), red)
}
