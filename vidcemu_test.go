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

package main

import (
	"testing"

	"github.com/jetsetilly/vidcemu/digest"
	"github.com/jetsetilly/vidcemu/modalflag"
	"github.com/jetsetilly/vidcemu/test"
)

func TestSetupArg(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}

	md.NewArgs([]string{})
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	s, err := setupArg(md)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	md.NewArgs([]string{"setup.lua"})
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	s, err = setupArg(md)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "setup.lua")

	md.NewArgs([]string{"a.lua", "b.lua"})
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	_, err = setupArg(md)
	test.ExpectFailure(t, err)
}

func TestPrintDigests(t *testing.T) {
	v := digest.NewVideo()
	a := digest.NewAudio()

	w := &test.CompareWriter{}
	printDigests(w, v, a)
	test.ExpectSuccess(t, w.Compare(v.Hash()+"\n"+a.Hash()+"\n"))
}
