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

// Package soundload decodes WAV and MP3 files into the logarithmic sample
// bytes played by the VIDC. The result is laid out for the sound DMA of the
// MEMC, with one byte for each of the eight sound channels per sample period.
package soundload

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware"
	"github.com/jetsetilly/vidcemu/hardware/vidc/audio"
	"github.com/jetsetilly/vidcemu/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "soundload: unsupported file format (%s)"
	DecodeError       = "soundload: %s: %v"
)

const logTag = "soundload"

// Sound is decoded audio ready for loading into memory.
type Sound struct {
	// sample rate of the source
	SampleRate int

	// number of channels in the source
	Channels int

	// sample data. each group of audio.NumChannels bytes is one sample period
	Data []uint8
}

func (snd *Sound) String() string {
	return fmt.Sprintf("%dHz %dch %.2fs", snd.SampleRate, snd.Channels, snd.Duration())
}

// Periods returns the number of sample periods in the data.
func (snd *Sound) Periods() int {
	return len(snd.Data) / audio.NumChannels
}

// Duration returns the length of the sound in seconds.
func (snd *Sound) Duration() float64 {
	if snd.SampleRate == 0 {
		return 0
	}
	return float64(snd.Periods()) / float64(snd.SampleRate)
}

// Latch returns the value for the sound frequency register that most closely
// matches the sample rate of the sound, for a VIDC with the specified sound
// clock divider.
func (snd *Sound) Latch(divider float64) uint8 {
	if snd.SampleRate == 0 || divider <= 0 {
		return 0
	}
	l := math.Round(1000000.0/(float64(snd.SampleRate)*divider)) - 2
	return uint8(min(max(l, 0), 255))
}

// Load decodes the named file. The format is decided by the file extension.
func Load(env *environment.Environment, filename string) (*Sound, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	var snd *Sound

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		logger.Log(env, logTag, "loading from wav file")
		snd, err = DecodeWAV(f)
	case ".mp3":
		logger.Log(env, logTag, "loading from mp3 file")
		snd, err = DecodeMP3(f)
	default:
		return nil, curated.Errorf(UnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(env, logTag, "%s: %s", filepath.Base(filename), snd)

	return snd, nil
}

// DecodeWAV decodes uncompressed PCM data from a WAV file.
func DecodeWAV(r io.ReadSeeker) (*Sound, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, curated.Errorf(DecodeError, "wav", "no channels")
	}

	// samples are scaled to 16 bits regardless of the source bit depth
	shift := int(dec.BitDepth) - 16

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if shift > 0 {
			v >>= shift
		} else if shift < 0 {
			v <<= -shift
		}
		samples[i] = int16(max(min(v, math.MaxInt16), math.MinInt16))
	}

	return build(int(dec.SampleRate), chans, samples), nil
}

// DecodeMP3 decodes an MP3 stream.
func DecodeMP3(r io.Reader) (*Sound, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, "mp3", err)
	}

	// the decoded stream is always formatted as 16bit little endian with two
	// channels, even if the source is single channel
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, curated.Errorf(DecodeError, "mp3", err)
	}

	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}

	return build(dec.SampleRate(), 2, samples), nil
}

// build the sound from interleaved samples. source channels are spread across
// the eight sound channels so a stereo source puts the left channel on the
// even sound channels and the right channel on the odd sound channels
func build(rate int, chans int, samples []int16) *Sound {
	snd := &Sound{
		SampleRate: rate,
		Channels:   chans,
	}

	n := len(samples) / chans
	snd.Data = make([]uint8, n*audio.NumChannels)
	for i := range n {
		frame := samples[i*chans : (i+1)*chans]
		for ch := range audio.NumChannels {
			snd.Data[i*audio.NumChannels+ch] = audio.Compress(frame[ch%chans])
		}
	}

	return snd
}

// Install the sound into the memory of the machine at the specified address,
// set the sound buffer pointers and program the sound frequency. Sound DMA is
// enabled. Returns the address of the first byte after the sound.
func (snd *Sound) Install(m *hardware.Machine, addr uint32, loop bool) (uint32, error) {
	err := m.MEMC.Load(addr, snd.Data)
	if err != nil {
		return 0, err
	}

	end := addr + uint32(len(snd.Data))
	err = m.MEMC.SetSoundBuffer(addr, end)
	if err != nil {
		return 0, err
	}
	m.MEMC.SetSoundLoop(loop)

	v := m.VIDC.Variant()
	m.VIDC.WriteRegister(v.SoundFrequencyRegister(), uint32(snd.Latch(v.SoundDivider())))
	m.MEMC.EnableSound(true)

	return end, nil
}
