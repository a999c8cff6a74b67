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

// CRTC register slots. The horizontal registers are the first eight slots and
// the vertical registers the second eight.
const (
	HCR = iota
	HSWR
	HBSR
	HDSR
	HDER
	HBER
	HCSR
	HIR
	VCR
	VSWR
	VBSR
	VDSR
	VDER
	VBER
	VCSR
	VCER
	NumCRTC
)

// CRTCNames is indexed by the CRTC slot constants.
var CRTCNames = [NumCRTC]string{
	"HCR", "HSWR", "HBSR", "HDSR", "HDER", "HBER", "HCSR", "HIR",
	"VCR", "VSWR", "VBSR", "VDSR", "VDER", "VBER", "VCSR", "VCER",
}

// size of the video and cursor memories. addresses are masked, never bounds
// checked
const (
	vramMask = 0x1fffff
	cramMask = 0x7fff

	VRAMSize = vramMask + 1
	CRAMSize = cramMask + 1
)

// the cursor is always 32 pixels wide at 2bpp
const (
	cursorWidth   = 32
	cursorBPPMode = 1
)

// register values are in the lower 24 bits of the data word
const dataMask = 0x00ffffff

// the number of bits per pixel for each bpp mode
var bitsPerPixel = [4]int{1, 2, 4, 8}

// the number of pixels added to the converted horizontal display registers of
// the VIDC10. indexed by bpp mode
var vidc10XStep = [4]uint32{19, 11, 7, 5}

// VIDC10 control register
const (
	vidc10ControlPixelClock = 0x03
	vidc10ControlBPPShift   = 2
	vidc10ControlBPP        = 0x03
	vidc10ControlInterlace  = 0x40
)

// VIDC20 control register
const (
	vidc20ControlSource     = 0x03
	vidc20ControlRateShift  = 2
	vidc20ControlRate       = 0x07
	vidc20ControlBPPShift   = 5
	vidc20ControlBPP        = 0x07
	vidc20ControlInterlace  = 0x1000
	vidc20SoundSerialDAC    = 0x02
	vidc20PixelSourceVCLK   = 0
	vidc20PixelSourceHCLK   = 1
	vidc20PixelSourceRCLK   = 2
	vidc20MaxSupportedDepth = 3
)

// sound frequency register (both variants)
const (
	soundFrequencyLatch = 0xff
	soundFrequencyTest  = 0x100
)
