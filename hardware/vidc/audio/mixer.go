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

import (
	"fmt"
	"math"
	"strings"
)

// Mixer is the DAC and stereo mixer of the VIDC.
type Mixer struct {
	channels [NumChannels]channel

	// multiplier applied to every channel before the stereo gains
	inputGain float64

	// serial DAC mode (VIDC20 only)
	serial      bool
	serialLeft  int16
	serialRight int16
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer(inputGain float64) *Mixer {
	m := &Mixer{
		inputGain: inputGain,
	}
	m.Reset()
	return m
}

// Reset the mixer to its power-on state. The input gain is kept.
func (m *Mixer) Reset() {
	for i := range m.channels {
		m.channels[i] = channel{}
		m.channels[i].refreshStereoImage(m.inputGain)
	}
	m.serial = false
	m.serialLeft = 0
	m.serialRight = 0
}

func (m *Mixer) String() string {
	s := strings.Builder{}
	for i := range m.channels {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%d:[%s]", i, m.channels[i].String()))
	}
	if m.serial {
		s.WriteString(fmt.Sprintf(" serial:[%d %d]", m.serialLeft, m.serialRight))
	}
	return s.String()
}

// SetInputGain changes the gain applied to every channel.
func (m *Mixer) SetInputGain(gain float64) {
	m.inputGain = gain
	for i := range m.channels {
		m.channels[i].refreshStereoImage(m.inputGain)
	}
}

// InputGain returns the current input gain.
func (m *Mixer) InputGain() float64 {
	return m.inputGain
}

// WriteDAC sets the current sample of the channel. Channel numbers wrap.
func (m *Mixer) WriteDAC(ch uint8, v uint8) {
	c := &m.channels[ch%NumChannels]
	c.raw = v
	c.sample = ulaw[v]
	c.active = true
}

// ClearDAC silences the channel. Channel numbers wrap.
func (m *Mixer) ClearDAC(ch uint8) {
	c := &m.channels[ch%NumChannels]
	c.raw = 0
	c.sample = 0
	c.active = false
}

// Active returns true if the channel has been written to since it was last
// cleared.
func (m *Mixer) Active(ch uint8) bool {
	return m.channels[ch%NumChannels].active
}

// SetStereoImage sets the stereo position of the channel. Only the lower
// three bits of the position are used.
func (m *Mixer) SetStereoImage(ch uint8, pos uint8) {
	c := &m.channels[ch%NumChannels]
	c.position = pos & (NumPositions - 1)
	c.refreshStereoImage(m.inputGain)
}

// StereoImage returns the stereo position of the channel.
func (m *Mixer) StereoImage(ch uint8) uint8 {
	return m.channels[ch%NumChannels].position
}

// Output returns the gain adjusted left and right levels of the channel.
func (m *Mixer) Output(ch uint8) (float64, float64) {
	return m.channels[ch%NumChannels].output()
}

// SetSerialMode switches between the internal logarithmic DAC and the VIDC20
// external serial DAC.
func (m *Mixer) SetSerialMode(serial bool) {
	m.serial = serial
}

// SerialMode returns true if the serial DAC is in use.
func (m *Mixer) SerialMode() bool {
	return m.serial
}

// WriteDAC16 writes a linear sample to the serial DAC. Channel 0 is left and
// channel 1 is right. Other channel values are ignored.
func (m *Mixer) WriteDAC16(ch uint8, v int16) {
	switch ch {
	case 0:
		m.serialLeft = v
	case 1:
		m.serialRight = v
	}
}

// Mix the channels into a single stereo sample.
func (m *Mixer) Mix() (int16, int16) {
	if m.serial {
		return m.serialLeft, m.serialRight
	}

	var l, r float64
	for i := range m.channels {
		cl, cr := m.channels[i].output()
		l += cl
		r += cr
	}

	return saturate(l), saturate(r)
}

func saturate(v float64) int16 {
	v = math.Round(v)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
