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

// WriteVRAM writes a byte of video data. The offset is masked to the size of
// the video memory.
func (vd *VIDC) WriteVRAM(offset uint32, data uint8) {
	vd.vram[offset&vramMask] = data
}

// WriteCRAM writes a byte of cursor data. The offset is masked to the size of
// the cursor memory.
func (vd *VIDC) WriteCRAM(offset uint32, data uint8) {
	vd.cram[offset&cramMask] = data
}

// ReadVRAM returns the byte of video data at the offset.
func (vd *VIDC) ReadVRAM(offset uint32) uint8 {
	return vd.vram[offset&vramMask]
}

// ReadCRAM returns the byte of cursor data at the offset.
func (vd *VIDC) ReadCRAM(offset uint32) uint8 {
	return vd.cram[offset&cramMask]
}

// DisplaySize returns the number of bytes of video data used by one frame of
// the display area in the current mode.
func (vd *VIDC) DisplaySize() uint32 {
	g, ok := vd.Geometry()
	if !ok {
		return 0
	}
	w := g.Display.Dx()
	h := int(vd.crtc[VDER]) - int(vd.crtc[VDSR])
	if w <= 0 || h <= 0 {
		return 0
	}
	return uint32(vd.stride(w, vd.bppMode) * h)
}

// number of bytes in a line of pixels
func (vd *VIDC) stride(width int, bppMode uint8) int {
	return (width << bppMode) >> 3
}
