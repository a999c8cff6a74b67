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

// Package hardware is the base package for the emulated machine. The Machine
// type connects the VIDC to the virtual-time scheduler, the memory controller
// and the television.
//
// The VIDC is the only chip modelled in detail. The memory controller is a
// simple DMA engine, just enough to feed the VIDC with video, cursor and
// sound data from RAM. There is no CPU. Programs that want to drive the VIDC
// do so through the Machine fields directly, or through the script package.
package hardware
