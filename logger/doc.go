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

// Package logger is the central logging facility for VIDCemu. Log entries are
// made with the Log() and Logf() functions and are tagged with a short string
// indicating the area of the emulation that made the entry.
//
// Every logging request must be accompanied by a Permission. The Allow value
// can be used when a log entry should always be made. The emulation
// environment (see the environment package) implements the Permission
// interface and will deny logging for anything but the main emulation.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count. This is useful because emulated hardware tends
// to repeat itself, for example when a program writes to an undefined
// register address every frame.
//
// In addition to the central logger, independent loggers can be created with
// NewLogger(). These are mostly useful for testing.
package logger
