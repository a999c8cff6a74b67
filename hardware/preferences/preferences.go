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

// Package preferences collates the preference values used by the emulated
// hardware.
package preferences

import (
	"github.com/jetsetilly/vidcemu/paths"
	"github.com/jetsetilly/vidcemu/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// the three VIDC20 pixel clock sources in Hz. the VIDC10 uses a fixed
	// 24MHz clock and is unaffected by these values
	RCLK prefs.Float
	VCLK prefs.Float
	HCLK prefs.Float

	// gain applied to every DAC channel before stereo positioning
	InputGain prefs.Float

	// the sample rate of the audio delivered to recorders and frontends
	SampleRate prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// default values for the hardware preferences
const (
	DefaultRCLK       = 24000000.0
	DefaultVCLK       = 24000000.0
	DefaultHCLK       = 24000000.0
	DefaultInputGain  = 0.05
	DefaultSampleRate = 44100
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesAt is like NewPreferences but the preferences file is
// specified explicitly. An empty path creates a disk instance that is never
// loaded, which is useful for testing.
func NewPreferencesAt(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vidc.rclk", &p.RCLK)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vidc.vclk", &p.VCLK)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vidc.hclk", &p.HCLK)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.inputGain", &p.InputGain)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.sampleRate", &p.SampleRate)
	if err != nil {
		return nil, err
	}

	if pth != "" {
		err = p.dsk.Load()
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.RCLK.Set(DefaultRCLK)
	p.VCLK.Set(DefaultVCLK)
	p.HCLK.Set(DefaultHCLK)
	p.InputGain.Set(DefaultInputGain)
	p.SampleRate.Set(DefaultSampleRate)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
