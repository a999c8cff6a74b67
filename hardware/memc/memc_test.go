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

package memc_test

import (
	"testing"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware/memc"
	"github.com/jetsetilly/vidcemu/hardware/preferences"
	"github.com/jetsetilly/vidcemu/test"
)

// fakeVIDC records everything the memory controller does to it
type fakeVIDC struct {
	vram      map[uint32]uint8
	cram      map[uint32]uint8
	dac       [8]uint8
	cleared   int
	soundMode bool
	cursor    bool

	displaySize uint32
	cursorSize  uint32
}

func newFakeVIDC() *fakeVIDC {
	return &fakeVIDC{
		vram: make(map[uint32]uint8),
		cram: make(map[uint32]uint8),
	}
}

func (f *fakeVIDC) WriteVRAM(offset uint32, data uint8) { f.vram[offset] = data }
func (f *fakeVIDC) WriteCRAM(offset uint32, data uint8) { f.cram[offset] = data }
func (f *fakeVIDC) WriteDAC(ch uint8, v uint8)           { f.dac[ch] = v }
func (f *fakeVIDC) ClearDAC(ch uint8)                    { f.dac[ch] = 0; f.cleared++ }
func (f *fakeVIDC) SetSoundMode(enabled bool)            { f.soundMode = enabled }
func (f *fakeVIDC) SetCursorEnable(enabled bool)         { f.cursor = enabled }
func (f *fakeVIDC) CursorSize() uint32                   { return f.cursorSize }
func (f *fakeVIDC) DisplaySize() uint32                  { return f.displaySize }

func newMEMC(t *testing.T, ramSize int) (*memc.MEMC, *fakeVIDC) {
	t.Helper()
	p, err := preferences.NewPreferencesAt("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	mc := memc.NewMEMC(env, ramSize)
	f := newFakeVIDC()
	mc.AttachVIDC(f)
	return mc, f
}

func TestRAMAccess(t *testing.T) {
	mc, _ := newMEMC(t, 0)
	test.ExpectEquality(t, mc.RAMSize(), memc.DefaultRAMSize)

	mc, _ = newMEMC(t, 64)
	test.ExpectSuccess(t, mc.Poke(10, 0xaa))
	v, err := mc.Peek(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))

	err = mc.Poke(64, 0)
	test.ExpectSuccess(t, curated.Is(err, memc.OutOfRange))
	_, err = mc.Peek(100)
	test.ExpectSuccess(t, curated.Is(err, memc.OutOfRange))

	test.ExpectSuccess(t, mc.Load(60, []uint8{1, 2, 3, 4}))
	err = mc.Load(61, []uint8{1, 2, 3, 4})
	test.ExpectSuccess(t, curated.Is(err, memc.OutOfRange))
}

func TestVideoDMA(t *testing.T) {
	mc, f := newMEMC(t, 64)
	for i := range uint32(64) {
		test.DemandSuccess(t, mc.Poke(i, uint8(i)))
	}

	// circular buffer from 16 to 32, starting at 28
	test.DemandSuccess(t, mc.SetVideoPointers(28, 16, 32))
	f.displaySize = 8

	// video DMA is disabled
	mc.VBlank(true)
	test.ExpectEquality(t, len(f.vram), 0)
	test.ExpectEquality(t, mc.Frames, 1)

	mc.EnableVideo(true)

	// deassertion does nothing
	mc.VBlank(false)
	test.ExpectEquality(t, len(f.vram), 0)

	mc.VBlank(true)
	test.ExpectEquality(t, mc.Frames, 2)
	test.DemandEquality(t, len(f.vram), 8)
	exp := []uint8{28, 29, 30, 31, 16, 17, 18, 19}
	for i, v := range exp {
		test.ExpectEquality(t, f.vram[uint32(i)], v)
	}
}

func TestVideoPointerErrors(t *testing.T) {
	mc, _ := newMEMC(t, 64)
	test.ExpectSuccess(t, curated.Is(mc.SetVideoPointers(0, 32, 16), memc.BadBuffer))
	test.ExpectSuccess(t, curated.Is(mc.SetVideoPointers(0, 16, 32), memc.BadBuffer))
	test.ExpectSuccess(t, curated.Is(mc.SetVideoPointers(0, 0, 65), memc.BadBuffer))
	test.ExpectSuccess(t, mc.SetVideoPointers(0, 0, 64))
}

func TestCursorDMA(t *testing.T) {
	mc, f := newMEMC(t, 64)
	test.DemandSuccess(t, mc.Load(40, []uint8{0x11, 0x22, 0x33, 0x44}))
	test.DemandSuccess(t, mc.SetCursorPointer(40))
	f.cursorSize = 4

	mc.EnableCursor(true)
	test.ExpectSuccess(t, f.cursor)

	mc.VBlank(true)
	test.DemandEquality(t, len(f.cram), 4)
	test.ExpectEquality(t, f.cram[0], uint8(0x11))
	test.ExpectEquality(t, f.cram[3], uint8(0x44))

	mc.EnableCursor(false)
	test.ExpectFailure(t, f.cursor)

	test.ExpectSuccess(t, curated.Is(mc.SetCursorPointer(64), memc.OutOfRange))
}

func TestSoundDMA(t *testing.T) {
	mc, f := newMEMC(t, 64)
	for i := range uint32(64) {
		test.DemandSuccess(t, mc.Poke(i, uint8(i)))
	}

	test.ExpectSuccess(t, curated.Is(mc.SetSoundBuffer(0, 12), memc.BadBuffer))
	test.DemandSuccess(t, mc.SetSoundBuffer(0, 16))

	mc.EnableSound(true)
	test.ExpectSuccess(t, f.soundMode)

	mc.SoundDRQ(true)
	test.ExpectEquality(t, f.dac, [8]uint8{0, 1, 2, 3, 4, 5, 6, 7})

	// deassertion does nothing
	mc.SoundDRQ(false)
	test.ExpectEquality(t, mc.SoundTransfers, 1)

	mc.SoundDRQ(true)
	test.ExpectEquality(t, f.dac, [8]uint8{8, 9, 10, 11, 12, 13, 14, 15})

	// queue the next buffer
	test.DemandSuccess(t, mc.SetSoundBuffer(32, 40))
	mc.SoundDRQ(true)
	test.ExpectEquality(t, f.dac, [8]uint8{32, 33, 34, 35, 36, 37, 38, 39})
	test.ExpectEquality(t, mc.SoundBuffers, 1)
	test.ExpectEquality(t, mc.Underruns, 0)

	// nothing queued so the channels are cleared
	mc.SoundDRQ(true)
	test.ExpectEquality(t, f.dac, [8]uint8{})
	test.ExpectEquality(t, f.cleared, 8)
	test.ExpectEquality(t, mc.Underruns, 1)
	test.ExpectEquality(t, mc.SoundTransfers, 3)
}

func TestSoundLoop(t *testing.T) {
	mc, f := newMEMC(t, 64)
	for i := range uint32(64) {
		test.DemandSuccess(t, mc.Poke(i, uint8(i)))
	}
	test.DemandSuccess(t, mc.SetSoundBuffer(8, 16))
	mc.SetSoundLoop(true)
	mc.EnableSound(true)

	for range 3 {
		mc.SoundDRQ(true)
		test.ExpectEquality(t, f.dac[0], uint8(8))
	}
	test.ExpectEquality(t, mc.SoundBuffers, 2)
	test.ExpectEquality(t, mc.Underruns, 0)
}

func TestSoundDisabled(t *testing.T) {
	mc, f := newMEMC(t, 64)
	test.DemandSuccess(t, mc.SetSoundBuffer(0, 8))

	f.dac[3] = 99
	mc.SoundDRQ(true)
	test.ExpectEquality(t, f.dac[3], uint8(0))
	test.ExpectEquality(t, mc.Underruns, 1)
	test.ExpectEquality(t, mc.SoundTransfers, 0)

	mc.Reset()
	test.ExpectEquality(t, mc.Underruns, 0)
}
