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

import (
	"encoding/binary"
	"sync"

	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/resample"
)

// AudioQueue holds resampled audio between the emulation and the audio
// device. When the queue is full the oldest samples are dropped. When the
// queue is empty Read() repeats the last sample so that the audio device
// never hears a click.
//
// The Read() function produces signed 16 bit little-endian stereo.
type AudioQueue struct {
	crit sync.Mutex

	rs *resample.Resampler

	// interleaved left/right values
	queue []int16
	limit int

	// the last values read
	lastLeft  int16
	lastRight int16

	// scratch buffer used by Push()
	scratch []int16

	// number of values dropped because the queue was full. number of values
	// padded because the queue was empty
	Dropped int
	Padded  int
}

// NewAudioQueue is the preferred method of initialisation for the AudioQueue
// type. The size is the maximum number of stereo samples held in the queue.
func NewAudioQueue(sampleRate int, size int) *AudioQueue {
	return &AudioQueue{
		rs:    resample.NewResampler(sampleRate),
		limit: max(size, 1) * 2,
	}
}

// SampleRate returns the rate of the audio produced by the queue.
func (q *AudioQueue) SampleRate() int {
	return q.rs.Rate()
}

// Push a sample from the VIDC.
func (q *AudioQueue) Push(at scheduler.Time, left int16, right int16) {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.scratch = q.rs.Push(at, left, right, q.scratch[:0])
	q.queue = append(q.queue, q.scratch...)

	if over := len(q.queue) - q.limit; over > 0 {
		q.Dropped += over / 2
		q.queue = q.queue[:copy(q.queue, q.queue[over:])]
	}
}

// Reset empties the queue and restarts the resampler. Should be called when
// the emulation's virtual time has been reset.
func (q *AudioQueue) Reset() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.rs.Reset()
	q.queue = q.queue[:0]
}

// Len returns the number of stereo samples in the queue.
func (q *AudioQueue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.queue) / 2
}

// Read implements the io.Reader interface. The buffer is always filled and
// the length should be a multiple of four.
func (q *AudioQueue) Read(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := len(p) / 4
	i := 0
	for ; i < n && i*2 < len(q.queue); i++ {
		q.lastLeft = q.queue[i*2]
		q.lastRight = q.queue[i*2+1]
		binary.LittleEndian.PutUint16(p[i*4:], uint16(q.lastLeft))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(q.lastRight))
	}
	q.queue = q.queue[:copy(q.queue, q.queue[i*2:])]

	if i < n {
		q.Padded += n - i
	}
	for ; i < n; i++ {
		binary.LittleEndian.PutUint16(p[i*4:], uint16(q.lastLeft))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(q.lastRight))
	}

	// clear any trailing bytes that don't make up a complete sample
	for j := n * 4; j < len(p); j++ {
		p[j] = 0
	}

	return len(p), nil
}
