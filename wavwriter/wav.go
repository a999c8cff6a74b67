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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
//
// The VIDC sound period can change at any time so samples are resampled to a
// fixed rate before being written.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/logger"
	"github.com/jetsetilly/vidcemu/resample"
)

// DefaultSampleRate is the sample rate of the WAV file if no other rate is
// specified.
const DefaultSampleRate = 44100

// the format tag for uncompressed PCM data
const formatPCM = 1

const (
	numChannels = 2
	bitDepth    = 16
)

// WavWriter implements the television.AudioMixer interface.
type WavWriter struct {
	filename string
	rs       *resample.Resampler
	buffer   []int16

	// time of the most recent sample
	last scheduler.Time
}

// New is the preferred method of initialisation for the WavWriter type. A
// sampleRate of zero gives the default sample rate.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	aw := &WavWriter{
		filename: filename,
		rs:       resample.NewResampler(sampleRate),
		buffer:   make([]int16, 0, sampleRate*numChannels),
	}

	return aw, nil
}

// Samples returns the number of stereo samples buffered so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer) / numChannels
}

// SetAudio implements the television.AudioMixer interface.
func (aw *WavWriter) SetAudio(at scheduler.Time, left int16, right int16) error {
	aw.buffer = aw.rs.Push(at, left, right, aw.buffer)
	aw.last = at
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	// the final sample is held for one output period
	aw.buffer = aw.rs.Flush(aw.last+scheduler.Second/scheduler.Time(aw.rs.Rate()), aw.buffer)

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.rs.Rate(), bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.rs.Rate(),
		},
		Data:           make([]int, len(aw.buffer)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range aw.buffer {
		buf.Data[i] = int(v)
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// closing the encoder writes the header. the file itself is closed by the
	// deferred function
	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
