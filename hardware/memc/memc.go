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

package memc

import (
	"fmt"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware/vidc/audio"
	"github.com/jetsetilly/vidcemu/logger"
)

// Sentinal error patterns.
const (
	OutOfRange = "memc: address out of range (%#08x)"
	BadBuffer  = "memc: invalid buffer (%#08x to %#08x)"
)

// DefaultRAMSize is the amount of physical RAM used by NewMEMC() if a size of
// zero is requested.
const DefaultRAMSize = 4 * 1024 * 1024

// VIDC is the subset of the vidc.VIDC used by the memory controller.
type VIDC interface {
	WriteVRAM(offset uint32, data uint8)
	WriteCRAM(offset uint32, data uint8)
	WriteDAC(ch uint8, v uint8)
	ClearDAC(ch uint8)
	SetSoundMode(enabled bool)
	SetCursorEnable(enabled bool)
	CursorSize() uint32
	DisplaySize() uint32
}

// buffer is a range of RAM used for sound DMA
type buffer struct {
	start uint32
	end   uint32
}

func (b buffer) String() string {
	return fmt.Sprintf("%#08x-%#08x", b.start, b.end)
}

// MEMC is the memory controller model.
type MEMC struct {
	env *environment.Environment
	vd  VIDC

	ram []uint8

	// video DMA pointers
	vinit  uint32
	vstart uint32
	vend   uint32

	// cursor DMA pointer
	cinit uint32

	// sound DMA buffers
	sound     buffer
	sptr      uint32
	next      buffer
	nextValid bool
	soundLoop bool

	videoDMA  bool
	cursorDMA bool
	soundDMA  bool

	// statistics
	Frames         int
	SoundTransfers int
	SoundBuffers   int
	Underruns      int
}

// NewMEMC is the preferred method of initialisation for the MEMC type. The
// VIDC must be attached with AttachVIDC() before any DMA can occur.
func NewMEMC(env *environment.Environment, ramSize int) *MEMC {
	if ramSize <= 0 {
		ramSize = DefaultRAMSize
	}
	mc := &MEMC{
		env: env,
		ram: make([]uint8, ramSize),
	}
	mc.Reset()
	return mc
}

// AttachVIDC connects the memory controller to the VIDC.
func (mc *MEMC) AttachVIDC(vd VIDC) {
	mc.vd = vd
}

// Reset all pointers and disable all DMA. The contents of RAM are kept.
func (mc *MEMC) Reset() {
	mc.vinit = 0
	mc.vstart = 0
	mc.vend = uint32(len(mc.ram))
	mc.cinit = 0
	mc.sound = buffer{}
	mc.sptr = 0
	mc.next = buffer{}
	mc.nextValid = false
	mc.soundLoop = false
	mc.videoDMA = false
	mc.cursorDMA = false
	mc.soundDMA = false
	mc.Frames = 0
	mc.SoundTransfers = 0
	mc.SoundBuffers = 0
	mc.Underruns = 0
}

func (mc *MEMC) String() string {
	return fmt.Sprintf("MEMC: vinit=%#08x vstart=%#08x vend=%#08x cinit=%#08x sound=%s sptr=%#08x video=%v cursor=%v sound=%v",
		mc.vinit, mc.vstart, mc.vend, mc.cinit, mc.sound, mc.sptr, mc.videoDMA, mc.cursorDMA, mc.soundDMA)
}

// RAMSize returns the amount of physical RAM.
func (mc *MEMC) RAMSize() int {
	return len(mc.ram)
}

// Peek returns the byte at the address.
func (mc *MEMC) Peek(addr uint32) (uint8, error) {
	if int(addr) >= len(mc.ram) {
		return 0, curated.Errorf(OutOfRange, addr)
	}
	return mc.ram[addr], nil
}

// Poke writes the byte to the address.
func (mc *MEMC) Poke(addr uint32, data uint8) error {
	if int(addr) >= len(mc.ram) {
		return curated.Errorf(OutOfRange, addr)
	}
	mc.ram[addr] = data
	return nil
}

// Load copies the data into RAM starting at the address.
func (mc *MEMC) Load(addr uint32, data []uint8) error {
	if int(addr)+len(data) > len(mc.ram) {
		return curated.Errorf(OutOfRange, int(addr)+len(data))
	}
	copy(mc.ram[addr:], data)
	return nil
}

// SetVideoPointers sets the address of the start of the frame (init) and the
// limits of the circular screen buffer (start and end).
func (mc *MEMC) SetVideoPointers(init, start, end uint32) error {
	if start >= end || int(end) > len(mc.ram) || init < start || init >= end {
		return curated.Errorf(BadBuffer, start, end)
	}
	mc.vinit = init
	mc.vstart = start
	mc.vend = end
	return nil
}

// SetCursorPointer sets the address of the cursor image.
func (mc *MEMC) SetCursorPointer(init uint32) error {
	if int(init) >= len(mc.ram) {
		return curated.Errorf(OutOfRange, init)
	}
	mc.cinit = init
	return nil
}

// SetSoundBuffer queues the buffer to be used when the current sound buffer
// is exhausted. If there is no current buffer it becomes current immediately.
// The length of the buffer must be a multiple of eight bytes.
func (mc *MEMC) SetSoundBuffer(start, end uint32) error {
	if start >= end || int(end) > len(mc.ram) || (end-start)%audio.NumChannels != 0 {
		return curated.Errorf(BadBuffer, start, end)
	}

	b := buffer{start: start, end: end}
	if mc.sound.end == 0 {
		mc.sound = b
		mc.sptr = start
		return nil
	}

	mc.next = b
	mc.nextValid = true
	return nil
}

// SetSoundLoop causes the current sound buffer to restart when it is exhausted
// and no next buffer has been set.
func (mc *MEMC) SetSoundLoop(loop bool) {
	mc.soundLoop = loop
}

// EnableVideo turns video DMA on or off.
func (mc *MEMC) EnableVideo(enable bool) {
	mc.videoDMA = enable
}

// EnableCursor turns cursor DMA on or off.
func (mc *MEMC) EnableCursor(enable bool) {
	mc.cursorDMA = enable
	if mc.vd != nil {
		mc.vd.SetCursorEnable(enable)
	}
}

// EnableSound turns sound DMA on or off.
func (mc *MEMC) EnableSound(enable bool) {
	mc.soundDMA = enable
	if mc.vd != nil {
		mc.vd.SetSoundMode(enable)
	}
}

// VBlank implements the vidc.Lines interface.
func (mc *MEMC) VBlank(asserted bool) {
	if !asserted || mc.vd == nil {
		return
	}

	mc.Frames++

	if mc.videoDMA {
		mc.videoTransfer()
	}

	if mc.cursorDMA {
		n := mc.vd.CursorSize()
		for i := range n {
			mc.vd.WriteCRAM(i, mc.ram[(mc.cinit+i)%uint32(len(mc.ram))])
		}
	}
}

func (mc *MEMC) videoTransfer() {
	n := mc.vd.DisplaySize()
	p := mc.vinit
	for i := range n {
		mc.vd.WriteVRAM(i, mc.ram[p])
		p++
		if p >= mc.vend {
			p = mc.vstart
		}
	}
}

// SoundDRQ implements the vidc.Lines interface.
func (mc *MEMC) SoundDRQ(asserted bool) {
	if !asserted || mc.vd == nil {
		return
	}

	if !mc.soundDMA || mc.sound.end == 0 {
		mc.underrun()
		return
	}

	if mc.sptr >= mc.sound.end {
		switch {
		case mc.nextValid:
			mc.sound = mc.next
			mc.nextValid = false
			mc.SoundBuffers++
		case mc.soundLoop:
			mc.SoundBuffers++
		default:
			mc.underrun()
			return
		}
		mc.sptr = mc.sound.start
	}

	for ch := range uint32(audio.NumChannels) {
		mc.vd.WriteDAC(uint8(ch), mc.ram[mc.sptr+ch])
	}
	mc.sptr += audio.NumChannels
	mc.SoundTransfers++
}

func (mc *MEMC) underrun() {
	if mc.Underruns == 0 {
		logger.Log(mc.env, "MEMC", "sound underrun")
	}
	mc.Underruns++
	for ch := range uint8(audio.NumChannels) {
		mc.vd.ClearDAC(ch)
	}
}
