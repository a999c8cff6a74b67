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

// Package television is the frame pump for the VIDC. The VIDC has no concept
// of an output device beyond the Resize() notification. The Television type
// implements the vidc.FramePump interface, owns the output surface and
// periodically asks the VIDC to render into it.
//
// Rendering is driven by the scheduler's FrameTimer. The period of the timer
// is the frame time of the VIDC, or DefaultFramePeriod if the VIDC is not
// producing a usable frame.
//
// Each rendered frame is passed to every attached PixelRenderer. The
// television also implements vidc.AudioOutput and forwards every stereo sample
// to the attached AudioMixers.
//
// The limiter sub-package is used by interactive frontends to pace emulation
// to wall-clock time.
package television
