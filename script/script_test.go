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

package script_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/hardware"
	"github.com/jetsetilly/vidcemu/hardware/preferences"
	"github.com/jetsetilly/vidcemu/hardware/vidc"
	"github.com/jetsetilly/vidcemu/script"
	"github.com/jetsetilly/vidcemu/test"
)

func newScript(t *testing.T) (*script.Script, *strings.Builder) {
	t.Helper()
	p, err := preferences.NewPreferencesAt("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(env, vidc.VIDC20, 0)
	test.DemandSuccess(t, err)

	out := &strings.Builder{}
	scr := script.NewScript(m, out)
	t.Cleanup(scr.Close)
	return scr, out
}

// 800x300 frame at 100Hz with a 640x256 4bpp display area
const program = `
vidc(0x80, 792)
vidc(0x81, 92)
vidc(0x84, 640)
vidc(0x85, 700)
vidc(0x90, 298)
vidc(0x91, 2)
vidc(0x93, 9)
vidc(0x94, 265)
vidc(0x95, 290)
vidc(0xe0, 0x42)
`

func TestGeometry(t *testing.T) {
	scr, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`print(geometry())`))
	test.ExpectEquality(t, out.String(), "nil\n")
	out.Reset()

	test.ExpectSuccess(t, scr.RunString(program+`
local g = geometry()
print(g.width, g.height, g.bpp, g.refresh)
`))
	test.ExpectEquality(t, out.String(), "700\t290\t4\t100\n")
}

func TestRunAndHash(t *testing.T) {
	frame := program + `
vidc(0x10, 1)
vidc(0x00, 0x00ff00)
vram(0, 0x11, 0x11, 0x11, 0x11)
print(run(%d))
print(hash())
`
	a, outA := newScript(t)
	b, outB := newScript(t)
	test.ExpectSuccess(t, a.RunString(fmt.Sprintf(frame, 3)))
	test.ExpectSuccess(t, b.RunString(fmt.Sprintf(frame, 3)))

	test.ExpectEquality(t, outA.String(), outB.String())
	test.ExpectSuccess(t, strings.HasPrefix(outA.String(), "3\n"))
	test.ExpectEquality(t, a.Video.FrameNum(), 3)

	// a different number of frames gives a different chained hash
	c, outC := newScript(t)
	test.ExpectSuccess(t, c.RunString(fmt.Sprintf(frame, 4)))
	test.ExpectInequality(t, a.Video.Hash(), c.Video.Hash())
	test.ExpectSuccess(t, strings.HasPrefix(outC.String(), "4\n"))
}

func TestMemory(t *testing.T) {
	scr, out := newScript(t)
	test.ExpectSuccess(t, scr.RunString(`
poke(0x1000, 0xab)
print(peek(0x1000))
pointers(0x1000, 0x1000, 0x2000)
video(true)
soundbuf(0x3000, 0x3040)
loop(true)
sound(true)
vidc(0xb0, 48)
runfor(0.001)
print(now())
`))
	test.ExpectEquality(t, out.String(), "171\n0.001\n")
}

func TestMode(t *testing.T) {
	scr, out := newScript(t)

	test.ExpectSuccess(t, scr.RunString(`print(variant, generation, mode == "")`))
	scr.SetMode(govern.ModePlay)
	test.ExpectSuccess(t, scr.RunString(`print(mode)`))
	test.ExpectEquality(t, out.String(), "VIDC20\t20\ttrue\nplay\n")
}

func TestErrors(t *testing.T) {
	scr, _ := newScript(t)

	err := scr.RunString(`poke(0x7fffffff, 1)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`vidc(0x100, 0)`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`run(`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`soundbuf(0x10, 0x11)`)
	test.ExpectFailure(t, err)
}

func TestScreenshotFile(t *testing.T) {
	scr, out := newScript(t)

	base := filepath.Join(t.TempDir(), "frame")
	fn := filepath.Join(t.TempDir(), "test.lua")
	src := program + fmt.Sprintf("run(1)\nprint(screenshot(%q))\n", base)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(src), 0o600))

	test.ExpectSuccess(t, scr.RunFile(fn))
	saved := strings.TrimSpace(out.String())
	test.ExpectEquality(t, saved, base+"_1.png")

	_, err := os.Stat(saved)
	test.ExpectSuccess(t, err)
}

func TestTestCard(t *testing.T) {
	for _, v := range vidc.Variants {
		p, err := preferences.NewPreferencesAt("")
		test.DemandSuccess(t, err)
		env, err := environment.NewEnvironment(environment.MainEmulation, p)
		test.DemandSuccess(t, err)
		m, err := hardware.NewMachine(env, v, 0)
		test.DemandSuccess(t, err)

		scr := script.NewScript(m, &strings.Builder{})
		test.ExpectSuccess(t, scr.RunString(script.TestCard), v)
		scr.Close()

		g, ok := m.VIDC.Geometry()
		test.DemandSuccess(t, ok, v)
		test.ExpectEquality(t, g.Display.Dx(), 640, v)
		test.ExpectEquality(t, g.Display.Dy(), 256, v)
		test.ExpectEquality(t, g.BPP, 4, v)
		test.ExpectEquality(t, m.VIDC.DisplaySize(), uint32(320*256), v)

		test.ExpectSuccess(t, m.RunForFrames(2, nil), v)
		test.ExpectEquality(t, m.VIDC.ReadVRAM(20), uint8(0x11), v)
	}
}
