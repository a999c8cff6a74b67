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

// Package scheduler implements a virtual timeline on which one-shot timers
// fire. Time is measured in picoseconds from the moment the scheduler was
// created (or last reset) and only moves forward when AdvanceTo() or Run() is
// called. There is no relationship between virtual time and wall-clock time.
//
// Each timer is identified by a Timer value and is either disarmed or armed
// with a due time. Rearm() moves the due time of a timer, replacing any
// previous due time. Rearming with the Never value disarms the timer.
//
// Timers fire strictly in due time order. Timers with the same due time fire
// in order of their Timer value. A timer is disarmed before its handler is
// called so a handler that wants a periodic timer must rearm it, usually
// relative to Now(). Handlers must not call AdvanceTo() or Run().
package scheduler
