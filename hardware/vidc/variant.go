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
	"strings"

	"github.com/jetsetilly/vidcemu/curated"
)

// UnknownVariant is the error pattern returned by VariantByName().
const UnknownVariant = "vidc: unknown variant (%s)"

// Variant describes the differences between the members of the VIDC family.
// The behaviour of the chip that differs between variants is selected by the
// strategy functions in the Variant.
type Variant struct {
	// the name by which the variant is known. used by VariantByName()
	Name string

	// 20 for the VIDC20, 10 otherwise
	Generation int

	// the output device is an LCD panel
	LCD bool

	// offsets into the palette table. the cursor base is relative to the
	// 4bpp base
	pal4bppBase   uint16
	palCursorBase uint16
	palBorderBase uint16

	// number of entries in the palette table
	paletteEntries int

	// the sound sample period is the divider multiplied by the sound
	// frequency latch, in microseconds
	soundDivider float64

	// register decoder
	decode func(vd *VIDC, addr uint8, data uint32)

	// convert a raw CRTC register value into a raster position
	convert func(vd *VIDC, slot int, data uint32) uint32

	// the current pixel clock in Hz
	pixelClock func(vd *VIDC) float64
}

func (v *Variant) String() string {
	return v.Name
}

// SoundDivider returns the sound clock divider of the variant.
func (v *Variant) SoundDivider() float64 {
	return v.soundDivider
}

// SoundFrequencyRegister returns the register address of the sound frequency
// latch for the variant.
func (v *Variant) SoundFrequencyRegister() uint8 {
	if v.Generation == 20 {
		return 0xb0
	}
	return 0xc0
}

// PaletteEntries returns the number of pens in the palette of the variant.
func (v *Variant) PaletteEntries() int {
	return v.paletteEntries
}

// VIDC10 is the original video controller.
var VIDC10 = &Variant{
	Name:           "VIDC10",
	Generation:     10,
	pal4bppBase:    0x100,
	palCursorBase:  0x10,
	palBorderBase:  0x110,
	paletteEntries: 0x114,
	soundDivider:   8.0,
	decode:         decodeVIDC10,
	convert:        convertVIDC10,
	pixelClock:     pixelClockVIDC10,
}

// VIDC10LCD is the VIDC10 driving an LCD panel rather than a CRT. Colours are
// reduced to their luminance.
var VIDC10LCD = &Variant{
	Name:           "VIDC10-LCD",
	Generation:     10,
	LCD:            true,
	pal4bppBase:    0x100,
	palCursorBase:  0x10,
	palBorderBase:  0x110,
	paletteEntries: 0x114,
	soundDivider:   8.0,
	decode:         decodeVIDC10,
	convert:        convertVIDC10,
	pixelClock:     pixelClockVIDC10,
}

// VIDC20 is the enhanced video controller with a 256 entry true colour
// palette and a choice of pixel clock sources.
var VIDC20 = &Variant{
	Name:           "VIDC20",
	Generation:     20,
	pal4bppBase:    0x000,
	palCursorBase:  0x100,
	palBorderBase:  0x100,
	paletteEntries: 0x104,
	soundDivider:   1.0,
	decode:         decodeVIDC20,
	convert:        convertVIDC20,
	pixelClock:     pixelClockVIDC20,
}

// Variants lists every supported variant.
var Variants = []*Variant{VIDC10, VIDC10LCD, VIDC20}

// VariantByName returns the variant with the specified name. Comparison is
// case insensitive and the hyphen in VIDC10-LCD is optional.
func VariantByName(name string) (*Variant, error) {
	n := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "")
	for _, v := range Variants {
		if strings.ReplaceAll(v.Name, "-", "") == n {
			return v, nil
		}
	}
	return nil, curated.Errorf(UnknownVariant, name)
}
