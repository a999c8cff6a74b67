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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/vidcemu/prefs"
	"github.com/jetsetilly/vidcemu/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "vidcemu_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestFloatAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("audio.inputGain", &f))
	test.ExpectSuccess(t, dsk.Add("foo", &s))

	test.ExpectSuccess(t, f.Set("0.05"))
	test.ExpectSuccess(t, s.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "audio.inputGain :: 0.05\nfoo :: bar\n")

	s.SetMaxLen(2)
	test.ExpectEquality(t, s.String(), "ba")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var other prefs.String
	test.ExpectSuccess(t, dsk.Add("vidc.value", &v))
	test.ExpectSuccess(t, v.Set(24))

	// a second disk sharing the same file
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dskB.Add("other.value", &other))
	test.ExpectSuccess(t, other.Set("hello"))

	test.DemandSuccess(t, dsk.Save())
	test.DemandSuccess(t, dskB.Save())
	cmpTmpFile(t, fn, "other.value :: hello\nvidc.value :: 24\n")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 24)

	// a command line value takes precedence over the file
	prefs.PushCommandLineStack("vidc.value::8")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 8)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestLoadMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("vidc.value", &v))
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 3)
}

func TestAddKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add(" key", &v))
}

func TestHooks(t *testing.T) {
	var v prefs.Float
	var post float64

	v.SetHookPre(func(value prefs.Value) error {
		if value.(float64) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(float64)
		return nil
	})

	test.ExpectSuccess(t, v.Set(1.5))
	test.ExpectEquality(t, post, 1.5)

	test.ExpectFailure(t, v.Set(-1.0))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectEquality(t, post, 1.5)
}

func TestAddHookPost(t *testing.T) {
	var v prefs.Int
	var a, b int

	v.AddHookPost(func(value prefs.Value) error {
		a = value.(int)
		return nil
	})
	v.AddHookPost(func(value prefs.Value) error {
		b = value.(int) * 2
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, a, 10)
	test.ExpectEquality(t, b, 20)

	// SetHookPost replaces every hook added so far
	v.SetHookPost(nil)
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, a, 10)
	test.ExpectEquality(t, b, 20)
}
