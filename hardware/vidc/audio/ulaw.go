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

package audio

import "slices"

// ulaw lookup table. the maximum magnitude is ((16+15)<<7)-16 multiplied by
// eight, which is 31616 and comfortably within the range of int16
var ulaw [256]int16

// the nearest logarithmic value for every linear value. indexed by the linear
// value plus 32768
var compress [65536]uint8

func init() {
	for v := range 256 {
		chord := v >> 5
		point := (v >> 1) & 0x0f
		sign := v & 0x01

		r := ((16 + point) << chord) - 16
		if sign == 0x01 {
			r = -r
		}

		ulaw[v] = int16(r * 8)
	}

	codes := make([]uint8, 256)
	for i := range codes {
		codes[i] = uint8(i)
	}
	slices.SortStableFunc(codes, func(a, b uint8) int {
		return int(ulaw[a]) - int(ulaw[b])
	})

	// the linear values are visited in order so the nearest code never moves
	// backwards
	var j int
	for v := -32768; v <= 32767; v++ {
		for j < len(codes)-1 && distance(ulaw[codes[j+1]], v) <= distance(ulaw[codes[j]], v) {
			j++
		}
		compress[v+32768] = codes[j]
	}
}

func distance(a int16, v int) int {
	d := int(a) - v
	if d < 0 {
		return -d
	}
	return d
}

// Expand converts a logarithmic sample byte to a linear value.
func Expand(v uint8) int16 {
	return ulaw[v]
}

// Compress converts a linear value to the logarithmic sample byte with the
// nearest value. The inverse of Expand().
func Compress(v int16) uint8 {
	return compress[int(v)+32768]
}
