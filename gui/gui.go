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

// Package gui contains the parts of the interactive frontends that do not
// depend on any particular windowing library.
//
// The emulation runs on its own goroutine. The windowing library runs on the
// main thread. The two sides meet in the Pump type. The Pump is attached to
// the television as both a PixelRenderer and an AudioMixer and so is called
// from the emulation goroutine. The frontend takes frames and audio from the
// Pump and sends user events back to the emulation through it.
package gui

// GUI is implemented by the interactive frontends.
type GUI interface {
	// Service runs the GUI until the window is closed. It must be called from
	// the main thread.
	Service() error

	// Destroy releases any resources held by the GUI.
	Destroy()
}

// Sentinal errors returned by GUI implementations.
const (
	UnsupportedGuiFeature = "gui: unsupported gui feature (%v)"
	WindowError           = "gui: %v"
)
