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

//go:build !release

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/vidcemu/paths"
	"github.com/jetsetilly/vidcemu/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".vidcemu/foo/bar/baz")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".vidcemu/baz")

	_, err = os.Stat(".vidcemu/foo/bar")
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "vidc20")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_vidc20_"))

	fn = paths.UniqueFilename("screenshot", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "screenshot__"))
}
