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

package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/digest"
	"github.com/jetsetilly/vidcemu/govern"
	"github.com/jetsetilly/vidcemu/hardware"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/logger"
	"github.com/jetsetilly/vidcemu/screenshot"
	"github.com/jetsetilly/vidcemu/soundload"
)

// ScriptError is the error pattern for errors raised while running a script.
const ScriptError = "script: %v"

const logTag = "script"

// Script is a Lua interpreter attached to a machine. The zero value is not
// usable. Use NewScript().
type Script struct {
	m   *hardware.Machine
	L   *lua.LState
	out io.Writer

	Video      *digest.Video
	Audio      *digest.Audio
	Screenshot *screenshot.Screenshot
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the script's print() calls is written to out.
func NewScript(m *hardware.Machine, out io.Writer) *Script {
	scr := &Script{
		m:          m,
		L:          lua.NewState(),
		out:        out,
		Video:      digest.NewVideo(),
		Audio:      digest.NewAudio(),
		Screenshot: screenshot.NewScreenshot(screenshot.PNG),
	}

	m.TV.AddPixelRenderer(scr.Video)
	m.TV.AddPixelRenderer(scr.Screenshot)
	m.TV.AddAudioMixer(scr.Audio)

	for name, fn := range map[string]lua.LGFunction{
		"print":      scr.print,
		"vidc":       scr.vidc,
		"write":      scr.write,
		"vram":       scr.vram,
		"cram":       scr.cram,
		"poke":       scr.poke,
		"peek":       scr.peek,
		"pointers":   scr.pointers,
		"cursorptr":  scr.cursorptr,
		"soundbuf":   scr.soundbuf,
		"loop":       scr.loop,
		"video":      scr.video,
		"cursor":     scr.cursor,
		"sound":      scr.sound,
		"sample":     scr.sample,
		"run":        scr.run,
		"runfor":     scr.runfor,
		"reset":      scr.reset,
		"now":        scr.now,
		"status":     scr.status,
		"geometry":   scr.geometry,
		"hash":       scr.hash,
		"audiohash":  scr.audiohash,
		"screenshot": scr.screenshot,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	v := m.VIDC.Variant()
	scr.L.SetGlobal("variant", lua.LString(v.Name))
	scr.L.SetGlobal("generation", lua.LNumber(v.Generation))
	scr.SetMode(govern.ModeNone)

	return scr
}

// SetMode changes the value of the mode global. Scripts can use it to decide
// whether to run the machine themselves.
func (scr *Script) SetMode(mode govern.Mode) {
	scr.L.SetGlobal("mode", lua.LString(strings.ToLower(mode.String())))
}

// Close the interpreter. The machine is not affected.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the named Lua file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(scr.m.Env, logTag, "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return scr.end()
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return scr.end()
}

// the audio digest only covers samples that have been flushed
func (scr *Script) end() error {
	return scr.Audio.EndMixing()
}

// raise a Lua error if err is not nil
func (scr *Script) check(L *lua.LState, err error) {
	if err != nil {
		L.RaiseError("%v", err)
	}
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) vidc(L *lua.LState) int {
	addr := L.CheckInt(1)
	if addr < 0 || addr > 0xff {
		L.ArgError(1, "register address out of range")
	}
	scr.m.VIDC.WriteRegister(uint8(addr), uint32(L.CheckInt64(2)))
	return 0
}

func (scr *Script) write(L *lua.LState) int {
	scr.m.VIDC.Write(uint32(L.CheckInt64(1)))
	return 0
}

// bytes from argument n onwards
func bytes(L *lua.LState, n int) []uint8 {
	b := make([]uint8, 0, L.GetTop())
	for i := n; i <= L.GetTop(); i++ {
		b = append(b, uint8(L.CheckInt(i)))
	}
	return b
}

func (scr *Script) vram(L *lua.LState) int {
	offset := uint32(L.CheckInt(1))
	for i, b := range bytes(L, 2) {
		scr.m.VIDC.WriteVRAM(offset+uint32(i), b)
	}
	return 0
}

func (scr *Script) cram(L *lua.LState) int {
	offset := uint32(L.CheckInt(1))
	for i, b := range bytes(L, 2) {
		scr.m.VIDC.WriteCRAM(offset+uint32(i), b)
	}
	return 0
}

func (scr *Script) poke(L *lua.LState) int {
	scr.check(L, scr.m.MEMC.Poke(uint32(L.CheckInt(1)), uint8(L.CheckInt(2))))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.m.MEMC.Peek(uint32(L.CheckInt(1)))
	scr.check(L, err)
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) pointers(L *lua.LState) int {
	err := scr.m.MEMC.SetVideoPointers(uint32(L.CheckInt(1)), uint32(L.CheckInt(2)), uint32(L.CheckInt(3)))
	scr.check(L, err)
	return 0
}

func (scr *Script) cursorptr(L *lua.LState) int {
	scr.check(L, scr.m.MEMC.SetCursorPointer(uint32(L.CheckInt(1))))
	return 0
}

func (scr *Script) soundbuf(L *lua.LState) int {
	scr.check(L, scr.m.MEMC.SetSoundBuffer(uint32(L.CheckInt(1)), uint32(L.CheckInt(2))))
	return 0
}

func (scr *Script) loop(L *lua.LState) int {
	scr.m.MEMC.SetSoundLoop(L.CheckBool(1))
	return 0
}

func (scr *Script) video(L *lua.LState) int {
	scr.m.MEMC.EnableVideo(L.CheckBool(1))
	return 0
}

func (scr *Script) cursor(L *lua.LState) int {
	scr.m.MEMC.EnableCursor(L.CheckBool(1))
	return 0
}

func (scr *Script) sound(L *lua.LState) int {
	scr.m.MEMC.EnableSound(L.CheckBool(1))
	return 0
}

func (scr *Script) sample(L *lua.LState) int {
	snd, err := soundload.Load(scr.m.Env, L.CheckString(1))
	scr.check(L, err)
	end, err := snd.Install(scr.m, uint32(L.CheckInt(2)), L.OptBool(3, false))
	scr.check(L, err)
	L.Push(lua.LNumber(end))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "negative number of frames")
	}
	scr.check(L, scr.m.RunForFrames(n, nil))
	L.Push(lua.LNumber(scr.m.TV.FrameNum()))
	return 1
}

func (scr *Script) runfor(L *lua.LState) int {
	d := scheduler.FromSeconds(float64(L.CheckNumber(1)))
	if d < 0 {
		L.ArgError(1, "negative duration")
	}
	scr.check(L, scr.m.RunFor(d))
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Reset()
	return 0
}

func (scr *Script) now(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Now().Seconds()))
	return 1
}

func (scr *Script) status(L *lua.LState) int {
	L.Push(lua.LString(scr.m.VIDC.Status()))
	return 1
}

func (scr *Script) geometry(L *lua.LState) int {
	g, ok := scr.m.VIDC.Geometry()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	t := L.NewTable()
	t.RawSetString("width", lua.LNumber(g.Width))
	t.RawSetString("height", lua.LNumber(g.Height))
	t.RawSetString("bpp", lua.LNumber(g.BPP))
	t.RawSetString("refresh", lua.LNumber(g.Refresh))
	t.RawSetString("interlace", lua.LBool(g.Interlace))
	t.RawSetString("lcd", lua.LBool(g.LCD))
	L.Push(t)
	return 1
}

func (scr *Script) hash(L *lua.LState) int {
	L.Push(lua.LString(scr.Video.Hash()))
	return 1
}

func (scr *Script) audiohash(L *lua.LState) int {
	scr.check(L, scr.Audio.EndMixing())
	L.Push(lua.LString(scr.Audio.Hash()))
	return 1
}

func (scr *Script) screenshot(L *lua.LState) int {
	fn, err := scr.Screenshot.Save(L.OptString(1, ""))
	scr.check(L, err)
	L.Push(lua.LString(fn))
	return 1
}
