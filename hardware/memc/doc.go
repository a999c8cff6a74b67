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

// Package memc is a minimal model of the memory controller that sits between
// RAM and the VIDC. It owns the physical RAM and performs the three kinds of
// DMA that feed the VIDC.
//
// Video DMA copies one frame of display data from RAM into the VIDC video
// memory whenever the vblank line is asserted. The data is read from the
// video init pointer and wraps from the video end pointer back to the video
// start pointer, so a circular screen buffer can be used for hardware
// scrolling.
//
// Cursor DMA copies the cursor image, starting at the cursor init pointer, at
// the same time.
//
// Sound DMA responds to every sound DRQ from the VIDC by writing eight bytes,
// one per channel, from the current sound buffer. When the buffer is exhausted
// the next buffer (if one has been set) becomes current. If there is no next
// buffer the DAC channels are cleared and an underrun is counted.
package memc
