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

// Package prefs facilitates the storage of preferential values in the
// filesystem. The Bool, Int, Float and String types are safe to Get() and
// Set() from different goroutines.
//
// Values are added to a Disk instance with the Add() function, which takes a
// key and a pointer to the value. The key should be in the form
// "group.name", for example "vidc.rclk":
//
//	dsk, err := prefs.NewDisk(pth)
//	var rclk prefs.Float
//	err = dsk.Add("vidc.rclk", &rclk)
//	err = dsk.Load()
//
// The file stores one entry per line in the form "key :: value". Entries in the
// file that have not been added to the Disk instance are preserved when the
// file is saved. This means that more than one Disk instance can share the
// same file.
//
// Values can also be specified on the command line with the -prefs flag. The
// command line string is pushed onto a stack with PushCommandLineStack(). When
// a Disk is loaded, a matching key on the top of the stack takes precedence
// over the value in the file. Command line values are consumed when used.
//
// Hook functions can be attached to each value with SetHookPre() and
// SetHookPost(). The pre hook can reject a value by returning an error.
// AddHookPost() chains a post hook onto any existing one, for values that
// are watched by more than one emulation.
package prefs
