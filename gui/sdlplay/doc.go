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

// Package sdlplay is a simple SDL frontend. It shows the image produced by the
// television in a window, scaled to fit, and plays the audio through an SDL
// queued audio device.
//
// Keys:
//
//	P       pause/resume
//	R       reset
//	F       toggle double speed
//	Escape  quit
package sdlplay
