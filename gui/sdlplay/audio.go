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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the audio device's buffer
const audioBufferLength = 1024

// two channels of 16 bit audio
const bytesPerSample = 4

// the amount of audio data that should be queued on the audio device
// before the queue is topped up
const audioQueueThreshold = audioBufferLength * bytesPerSample * 2

func (scr *SdlPlay) openAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     int32(scr.pump.Audio.SampleRate()),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  audioBufferLength,
	}

	var actualSpec sdl.AudioSpec

	var err error
	scr.audio, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return err
	}

	sdl.PauseAudioDevice(scr.audio, false)

	return nil
}

// move audio from the pump to the audio device
func (scr *SdlPlay) serviceAudio() error {
	if sdl.GetQueuedAudioSize(scr.audio) >= audioQueueThreshold {
		return nil
	}

	n := scr.pump.Audio.Len()
	if n == 0 {
		return nil
	}

	if cap(scr.audioBuf) < n*bytesPerSample {
		scr.audioBuf = make([]byte, n*bytesPerSample)
	}
	scr.audioBuf = scr.audioBuf[:n*bytesPerSample]

	_, err := scr.pump.Audio.Read(scr.audioBuf)
	if err != nil {
		return err
	}

	return sdl.QueueAudio(scr.audio, scr.audioBuf)
}
