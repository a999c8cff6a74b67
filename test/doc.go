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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report failure with t.Fatalf() and stop
// the test immediately. Use a Demand function when the remainder of the test
// makes no sense if the condition has not been met.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the
// nil type because it is not obvious. The nil type is considered a success
// and consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The optional tags argument to all Expect and Demand functions is
// prepended to the failure message. This is useful when testing in a loop.
//
// The CompareWriter, RingWriter and CappedWriter types implement the
// io.Writer interface and should be used to capture output.
package test
