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

// Package clocks defines the constant values that define the speed of the
// clocks driving the video controller.
//
// The VIDC10 derives its pixel clock from a fixed 24MHz crystal. Control
// register bits 1:0 select one of four divisions of that clock. The VIDC20
// has three external clock inputs (VCLK, HCLK and RCLK) whose rates depend
// on the host machine. The default rates for those are in the
// hardware/preferences package.
package clocks

// MHz is one megahertz expressed in Hz.
const MHz = 1000000.0

// VIDC10Crystal is the speed of the VIDC10 master clock in Hz.
const VIDC10Crystal = 24 * MHz

// VIDC10PixelClocks is indexed by bits 1:0 of the VIDC10 control register.
var VIDC10PixelClocks = [4]float64{
	8 * MHz,
	12 * MHz,
	16 * MHz,
	VIDC10Crystal,
}
