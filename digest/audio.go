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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/vidcemu/hardware/scheduler"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow us to create digests on audio streams longer than
// audioBufferLength, we'll stuff the previous digest value into the first part
// of the buffer array and make sure we include it when we create the next
// digest value
const audioBufferStart = sha1.Size

// Audio is an implementation of the television.AudioMixer interface. Each
// sample is added to the digest as a little-endian left/right pair. The
// timestamp of the sample is not part of the digest.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int

	// the number of samples included in the digest
	samples int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements digest.Digest interface. Any samples still buffered are not
// included until EndMixing() is called.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
	dig.samples = 0
}

// Samples returns the number of samples added to the digest.
func (dig *Audio) Samples() int {
	return dig.samples
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(_ scheduler.Time, l, r int16) error {
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(l))
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt+2:], uint16(r))
	dig.bufferCt += 4
	dig.samples++

	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}

	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return nil
}
