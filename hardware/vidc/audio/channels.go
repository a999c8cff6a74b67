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

import "fmt"

// NumChannels is the number of logarithmic DAC channels.
const NumChannels = 8

// NumPositions is the number of values a stereo image register can hold.
const NumPositions = 8

// gain tables indexed by stereo image position. position 1 is hard left and
// position 7 is hard right. positions 0 and 4 are both centre
var leftGain = [NumPositions]float64{1.0, 2.0, 1.66, 1.34, 1.0, 0.66, 0.34, 0.0}
var rightGain = [NumPositions]float64{1.0, 0.0, 0.34, 0.66, 1.0, 1.34, 1.66, 2.0}

type channel struct {
	// stereo image position (0 to 7)
	position uint8

	// the gain pair derived from the position and the input gain
	left  float64
	right float64

	// the most recent byte written to the channel and its linear value
	raw    uint8
	sample int16

	// the channel has been written to since the last clear
	active bool
}

func (ch *channel) String() string {
	if !ch.active {
		return fmt.Sprintf("pos=%d -", ch.position)
	}
	return fmt.Sprintf("pos=%d %02x (%6d)", ch.position, ch.raw, ch.sample)
}

func (ch *channel) refreshStereoImage(inputGain float64) {
	ch.left = leftGain[ch.position] * inputGain
	ch.right = rightGain[ch.position] * inputGain
}

func (ch *channel) output() (float64, float64) {
	s := float64(ch.sample)
	return s * ch.left, s * ch.right
}
