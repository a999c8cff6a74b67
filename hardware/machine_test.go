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

package hardware_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/hardware"
	"github.com/jetsetilly/vidcemu/hardware/preferences"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/television"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	p, err := preferences.NewPreferencesAt("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(env, vidc.VIDC20, 0)
	test.DemandSuccess(t, err)
	return m
}

// 800x300 frame at 100Hz with a 640x256 4bpp display area at (6, 9)
func program(m *hardware.Machine) {
	m.VIDC.WriteRegister(0x80, 792)
	m.VIDC.WriteRegister(0x81, 92)
	m.VIDC.WriteRegister(0x82, 0)
	m.VIDC.WriteRegister(0x83, 0)
	m.VIDC.WriteRegister(0x84, 640)
	m.VIDC.WriteRegister(0x85, 700)
	m.VIDC.WriteRegister(0x90, 298)
	m.VIDC.WriteRegister(0x91, 2)
	m.VIDC.WriteRegister(0x92, 0)
	m.VIDC.WriteRegister(0x93, 9)
	m.VIDC.WriteRegister(0x94, 265)
	m.VIDC.WriteRegister(0x95, 290)
	m.VIDC.WriteRegister(0xe0, 0x42)
}

func TestVideoPath(t *testing.T) {
	m := newMachine(t)
	program(m)

	test.ExpectEquality(t, m.VIDC.FrameTime(), 10*scheduler.Millisecond)

	// pen 1 green, border blue
	m.VIDC.WriteRegister(0x10, 1)
	m.VIDC.WriteRegister(0x00, 0x00ff00)
	m.VIDC.WriteRegister(0x40, 0xff0000)

	size := m.VIDC.DisplaySize()
	test.DemandEquality(t, size, uint32(320*256))
	for i := range size {
		test.DemandSuccess(t, m.MEMC.Poke(i, 0x11))
	}
	m.MEMC.EnableVideo(true)

	var frames []int
	err := m.RunForFrames(3, func(frame int) (govern.State, error) {
		frames = append(frames, frame)
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, m.TV.FrameNum(), 3)

	// the first frame uses the default period because the machine was
	// created before the registers were programmed
	test.ExpectEquality(t, m.Now(), television.DefaultFramePeriod+20*scheduler.Millisecond)

	// one DMA for every vblank
	test.ExpectEquality(t, m.MEMC.Frames, 4)
	test.ExpectEquality(t, m.VIDC.ReadVRAM(size-1), uint8(0x11))

	s := m.TV.Surface()
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, s.RGBAAt(0, 0), color.RGBA{B: 255, A: 255})
	test.ExpectEquality(t, s.RGBAAt(6, 9), color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, s.RGBAAt(645, 264), color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, s.RGBAAt(646, 264), color.RGBA{B: 255, A: 255})
}

func TestRunForFramesEnding(t *testing.T) {
	m := newMachine(t)
	program(m)

	err := m.RunForFrames(10, func(frame int) (govern.State, error) {
		if frame == 2 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.TV.FrameNum(), 2)
}

func TestRun(t *testing.T) {
	m := newMachine(t)
	program(m)

	var events int
	err := m.Run(func() (govern.State, error) {
		events++
		if m.TV.FrameNum() == 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.TV.FrameNum(), 5)
	test.ExpectSuccess(t, events > 5)

	err = m.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectSuccess(t, err)

	calls := 0
	err = m.Run(func() (govern.State, error) {
		calls++
		if calls == 1 {
			return govern.EmulatorStart, nil
		}
		return govern.Ending, nil
	})
	test.ExpectFailure(t, err)
}

func TestSoundPath(t *testing.T) {
	m := newMachine(t)

	const base = 0x100000
	data := make([]uint8, 64)
	for i := range data {
		data[i] = uint8(i)
	}
	test.DemandSuccess(t, m.MEMC.Load(base, data))
	test.DemandSuccess(t, m.MEMC.SetSoundBuffer(base, base+64))
	m.MEMC.SetSoundLoop(true)

	m.MEMC.EnableSound(true)
	m.VIDC.WriteRegister(0xb0, 48)
	test.ExpectEquality(t, m.VIDC.SoundPeriod(), 50*scheduler.Microsecond)

	test.ExpectSuccess(t, m.RunFor(scheduler.Millisecond))
	test.ExpectEquality(t, m.MEMC.SoundTransfers, 20)
	test.ExpectEquality(t, m.TV.Samples(), uint64(20))
	test.ExpectEquality(t, m.MEMC.Underruns, 0)
	test.ExpectEquality(t, m.MEMC.SoundBuffers, 2)
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	program(m)
	test.ExpectSuccess(t, m.RunForFrames(2, nil))

	m.Reset()
	test.ExpectEquality(t, m.Now(), scheduler.Time(0))
	test.ExpectEquality(t, m.TV.FrameNum(), 0)
	test.ExpectEquality(t, m.Sched.Due(scheduler.FrameTimer), television.DefaultFramePeriod)
	test.ExpectEquality(t, m.Sched.Due(scheduler.VideoTimer), scheduler.Never)
}
