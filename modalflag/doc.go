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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). This allows
// the arguments to be parsed in layers, one layer for each mode:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PLAY")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 100, "number of frames to run")
//		_, _ = md.Parse()
//	}
//
// The first sub-mode in the list is the default and is selected if the first
// argument after the flags is not one of the listed sub-modes. All sub-mode
// comparisons are case insensitive.
//
// As well as the usual flag types, AddChoice() adds a string flag that can
// only be one of a list of values. For example:
//
//	gui := md.AddChoice("gui", "sdl", []string{"sdl", "ebiten"}, "frontend")
package modalflag
