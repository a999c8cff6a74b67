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

// Package vidc emulates the VIDC family of video and sound controllers. Three
// variants are supported: the original VIDC10, the VIDC10 driving an LCD panel
// and the VIDC20.
//
// The VIDC is a write-only device. Register writes arrive as a single 32-bit
// word with the register address in bits 31:24 and the register value in bits
// 23:0. The Write() function accepts writes in that form. WriteRegister() is
// the decoder proper and takes the address and value separately.
//
// Video RAM and cursor RAM are filled by the memory controller with
// WriteVRAM() and WriteCRAM(). The VIDC itself has no knowledge of where the
// data comes from. Likewise, sound samples are supplied one byte per channel
// with WriteDAC() whenever the VIDC signals a sound DRQ.
//
// Timing is entirely driven by a virtual-time scheduler supplied by the host.
// The VIDC arms two timers (scheduler.VideoTimer and scheduler.SoundTimer)
// and expects TimerFired() to be called when either of them becomes due.
//
// Images are produced on demand by the Render() function, which draws the
// current state of the chip into an image.RGBA. The host is told of changes to
// the size of the image through the FramePump interface.
package vidc
