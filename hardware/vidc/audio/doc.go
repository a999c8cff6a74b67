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

// Package audio implements the eight channel sound DAC of the VIDC.
//
// Sound samples arrive from the memory controller as 8-bit values, one byte
// per channel. Each byte is in a logarithmic (mu-law like) format: bit 0 is
// the sign, bits 4:1 are a point on a chord and bits 7:5 select the chord. The
// Expand() function converts one of these bytes to a linear 16-bit value.
//
// Every channel has a stereo image register, choosing one of seven positions
// between hard left and hard right (position 0 is treated as the centre). The
// channels are summed by Mix() to produce a single stereo sample.
//
// The VIDC20 additionally supports an external serial DAC. In that mode the
// linear 16-bit samples are written directly with WriteDAC16() and the eight
// logarithmic channels are ignored by Mix().
package audio
