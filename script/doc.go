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

// Package script drives the emulation from a Lua script. Scripts program the
// VIDC registers, fill video and cursor memory and run the machine for a
// number of frames. Output can be checked with the digest functions or saved
// as a screenshot.
//
// The following functions are available to the script:
//
//	vidc(addr, value)           write value to the VIDC register at addr
//	write(word)                 write a data word with the address in the top byte
//	vram(offset, byte, ...)     write bytes directly to video memory
//	cram(offset, byte, ...)     write bytes directly to cursor memory
//	poke(addr, byte)            write a byte to RAM
//	peek(addr)                  read a byte from RAM
//	pointers(init, start, end)  set the video DMA pointers
//	cursorptr(addr)             set the cursor DMA pointer
//	soundbuf(start, end)        set (or queue) the sound DMA buffer
//	loop(bool)                  loop the current sound buffer
//	video(bool)                 enable video DMA
//	cursor(bool)                enable cursor DMA
//	sound(bool)                 enable sound DMA
//	sample(filename, addr, [loop])  load a WAV or MP3 file and play it
//	run(frames)                 run for a number of frames. returns the frame number
//	runfor(seconds)             run for a length of virtual time
//	reset()                     reset the machine
//	now()                       the current virtual time in seconds
//	status()                    the VIDC register dump
//	geometry()                  table of the current geometry or nil
//	hash()                      the video digest
//	audiohash()                 the audio digest
//	screenshot([base])          save the most recent frame. returns the filename
//
// The globals variant and generation hold the name of the VIDC variant and the
// chip generation (10 or 20). The mode global is one of "run", "play",
// "script" or "performance", or the empty string if the script is not being
// run from the command line.
//
// The standard Lua print() function writes to the output of the script.
package script
