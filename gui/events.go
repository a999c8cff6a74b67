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

package gui

// Event is the type of value sent over the event channel.
type Event any

// EventQuit is sent when the window has been closed.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. The Key field is
// the name of the key as given by the windowing library, which for the
// keys used by the Pump is the same in both SDL and Ebitengine.
type EventKeyboard struct {
	Key  string
	Down bool
}

// list of key names that the pump responds to
const (
	KeyPause  = "P"
	KeyReset  = "R"
	KeyFaster = "F"
	KeyQuit   = "Escape"
)
