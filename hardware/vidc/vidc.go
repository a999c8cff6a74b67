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

package vidc

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/environment"
	"github.com/jetsetilly/vidcemu/hardware/scheduler"
	"github.com/jetsetilly/vidcemu/hardware/vidc/audio"
	"github.com/jetsetilly/vidcemu/logger"
	"github.com/jetsetilly/vidcemu/prefs"
)

// Sentinal error patterns returned by NewVIDC().
const (
	MissingEnvironment = "vidc: environment is required"
	MissingVariant     = "vidc: variant is required"
	MissingScheduler   = "vidc: scheduler is required"
)

// VIDC is the emulation of the video and sound controller.
type VIDC struct {
	env     *environment.Environment
	variant *Variant

	sched   Scheduler
	lines   Lines
	pump    FramePump
	outputs []AudioOutput

	// CRTC registers after conversion to raster positions (pixels for the
	// horizontal registers, lines for the vertical registers)
	crtc [NumCRTC]uint32

	// the raw values of HDSR and HDER. on the VIDC10 the converted values
	// depend on the bpp mode so must be reconverted when the mode changes
	rawHDSR uint32
	rawHDER uint32

	// the most recent value written to the control register and the values
	// decoded from it
	control     uint32
	bppMode     uint8
	interlace   bool
	pixelSource uint8
	pixelRate   uint8
	pixelClock  float64

	// sound frequency register and the sound DMA enable from the memory
	// controller
	soundLatch   uint8
	soundTest    bool
	soundMode    bool
	soundPeriod  scheduler.Time
	soundControl uint32

	// VIDC20 registers that are stored but have no effect
	external    uint32
	fsyn        uint32
	dataControl uint32

	// VIDC20 palette write index
	palIndex uint8

	// pen table and the raw value written for each pen
	palette []color.RGBA
	palRaw  []uint32

	vram []uint8
	cram []uint8

	cursorEnable bool

	mixer *audio.Mixer

	// video timer state. the video timer alternates between the end of the
	// display area and the start of the display area
	frameEpoch scheduler.Time
	nextEdge   videoEdge
	vblank     bool

	// the most recent geometry passed to FramePump.Resize()
	geom          Geometry
	geomSignalled bool

	// undefined register addresses that have been logged
	undefined map[uint8]bool

	// an unsupported bpp mode has been logged
	depthLogged bool
}

// NewVIDC is the preferred method of initialisation for the VIDC type.
//
// The lines and pump arguments can be nil. Audio outputs are added with
// AddAudioOutput().
func NewVIDC(env *environment.Environment, variant *Variant, sched Scheduler, lines Lines, pump FramePump) (*VIDC, error) {
	if env == nil {
		return nil, curated.Errorf(MissingEnvironment)
	}
	if variant == nil {
		return nil, curated.Errorf(MissingVariant)
	}
	if sched == nil {
		return nil, curated.Errorf(MissingScheduler)
	}
	if lines == nil {
		lines = nullLines{}
	}
	if pump == nil {
		pump = nullPump{}
	}

	vd := &VIDC{
		env:       env,
		variant:   variant,
		sched:     sched,
		lines:     lines,
		pump:      pump,
		palette:   make([]color.RGBA, variant.paletteEntries),
		palRaw:    make([]uint32, variant.paletteEntries),
		vram:      make([]uint8, VRAMSize),
		cram:      make([]uint8, CRAMSize),
		mixer:     audio.NewMixer(env.Prefs.InputGain.Get().(float64)),
		undefined: make(map[uint8]bool),
	}

	// changes to the input gain preference take effect immediately. the
	// preferences may be shared with other emulations so the hook is added to
	// any that already exist
	env.Prefs.InputGain.AddHookPost(func(v prefs.Value) error {
		vd.mixer.SetInputGain(v.(float64))
		return nil
	})

	vd.Reset()

	return vd, nil
}

// AddAudioOutput adds a destination for the stereo samples produced by the
// sound timer.
func (vd *VIDC) AddAudioOutput(out AudioOutput) {
	vd.outputs = append(vd.outputs, out)
}

// Reset the VIDC to its power-on state. Both timers are disarmed.
func (vd *VIDC) Reset() {
	for i := range vd.crtc {
		vd.crtc[i] = 0
	}
	vd.rawHDSR = 0
	vd.rawHDER = 0

	vd.control = 0
	vd.bppMode = 0
	vd.interlace = false
	vd.pixelSource = 0
	vd.pixelRate = 0
	vd.pixelClock = vd.variant.pixelClock(vd)

	vd.soundLatch = 0
	vd.soundTest = false
	vd.soundMode = false
	vd.soundPeriod = 0
	vd.soundControl = 0

	vd.external = 0
	vd.fsyn = 0
	vd.dataControl = 0

	vd.palIndex = 0
	for i := range vd.palette {
		vd.palette[i] = color.RGBA{A: 255}
		vd.palRaw[i] = 0
	}

	clear(vd.vram)
	clear(vd.cram)
	vd.cursorEnable = false

	vd.mixer.Reset()

	vd.frameEpoch = vd.sched.Now()
	vd.nextEdge = edgeDisplayEnd
	vd.vblank = false
	vd.geom = Geometry{}
	vd.geomSignalled = false

	vd.sched.Rearm(scheduler.VideoTimer, scheduler.Never)
	vd.sched.Rearm(scheduler.SoundTimer, scheduler.Never)
}

// Label returns the name of the VIDC variant.
func (vd *VIDC) Label() string {
	return vd.variant.Name
}

// Variant returns the variant being emulated.
func (vd *VIDC) Variant() *Variant {
	return vd.variant
}

func (vd *VIDC) String() string {
	return fmt.Sprintf("%s: bpp=%d il=%v clk=%.0f snd=%v latch=%#02x",
		vd.Label(), bitsPerPixel[vd.bppMode], vd.interlace, vd.pixelClock,
		vd.soundMode, vd.soundLatch)
}

// Status returns a multiline description of the register state.
func (vd *VIDC) Status() string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%s: control=%#06x bpp=%d interlace=%v pixel clock=%.0fHz\n",
		vd.Label(), vd.control, bitsPerPixel[vd.bppMode], vd.interlace, vd.pixelClock))

	for i := range NumCRTC {
		if i == VCR {
			s.WriteString("\n")
		} else if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%d", CRTCNames[i], vd.crtc[i]))
	}
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("sound: mode=%v latch=%#02x test=%v period=%s",
		vd.soundMode, vd.soundLatch, vd.soundTest, vd.soundPeriod))
	if vd.variant.Generation == 20 {
		s.WriteString(fmt.Sprintf(" control=%#02x", vd.soundControl))
	}
	s.WriteString(fmt.Sprintf("\n%s\n", vd.mixer.String()))

	s.WriteString(fmt.Sprintf("cursor: enabled=%v flyback=%v vblank=%v", vd.cursorEnable, vd.Flyback(), vd.vblank))

	if vd.variant.Generation == 20 {
		s.WriteString(fmt.Sprintf("\npalette index=%#02x external=%#06x fsyn=%#06x data control=%#06x",
			vd.palIndex, vd.external, vd.fsyn, vd.dataControl))
	}

	return s.String()
}

// Write is the bus facing register write. The register address is taken from
// bits 31:24 of the data word and the value from bits 23:0.
func (vd *VIDC) Write(data uint32) {
	vd.WriteRegister(uint8(data>>24), data&dataMask)
}

// WriteRegister writes the value to the register at the address. Bits of the
// value above bit 23 are ignored.
func (vd *VIDC) WriteRegister(addr uint8, data uint32) {
	vd.variant.decode(vd, addr, data&dataMask)
}

// logUndefined notes a write to a register that does not exist. each address
// is logged only once
func (vd *VIDC) logUndefined(addr uint8, data uint32) {
	if vd.undefined[addr] {
		return
	}
	vd.undefined[addr] = true
	logger.Logf(vd.env, vd.Label(), "write to undefined register %#02x (%#06x)", addr, data)
}

// SetSoundMode is called by the memory controller when sound DMA is enabled
// or disabled.
func (vd *VIDC) SetSoundMode(enabled bool) {
	vd.soundMode = enabled
	vd.refreshSoundFrequency()
}

// SetCursorEnable is called by the memory controller to enable or disable
// cursor DMA.
func (vd *VIDC) SetCursorEnable(enabled bool) {
	vd.cursorEnable = enabled
}

// CursorEnabled returns true if the cursor will be drawn by Render().
func (vd *VIDC) CursorEnabled() bool {
	return vd.cursorEnable
}

// WriteDAC writes a logarithmic sample byte to the channel.
func (vd *VIDC) WriteDAC(ch uint8, v uint8) {
	vd.mixer.WriteDAC(ch, v)
}

// ClearDAC silences the channel.
func (vd *VIDC) ClearDAC(ch uint8) {
	vd.mixer.ClearDAC(ch)
}

// WriteDAC16 writes a linear sample to the serial DAC. Channel 0 is left and
// channel 1 is right. Only meaningful for the VIDC20 in serial DAC mode.
func (vd *VIDC) WriteDAC16(ch uint8, v int16) {
	vd.mixer.WriteDAC16(ch, v)
}

// DACSerialMode returns true if the VIDC20 has been configured to use the
// external serial DAC.
func (vd *VIDC) DACSerialMode() bool {
	return vd.mixer.SerialMode()
}

// Mixer returns the sound mixer.
func (vd *VIDC) Mixer() *audio.Mixer {
	return vd.mixer
}

// VBlank returns the current state of the vblank line.
func (vd *VIDC) VBlank() bool {
	return vd.vblank
}

// CRTC returns the converted value of the CRTC register in the slot.
func (vd *VIDC) CRTC(slot int) uint32 {
	if slot < 0 || slot >= NumCRTC {
		return 0
	}
	return vd.crtc[slot]
}

// PixelClock returns the current pixel clock in Hz.
func (vd *VIDC) PixelClock() float64 {
	return vd.pixelClock
}

// BPP returns the number of bits per pixel of the display area.
func (vd *VIDC) BPP() int {
	return bitsPerPixel[vd.bppMode]
}

// Interlace returns true if interlace is enabled.
func (vd *VIDC) Interlace() bool {
	return vd.interlace
}

// SoundPeriod returns the time between samples. Zero if sound is disabled.
func (vd *VIDC) SoundPeriod() scheduler.Time {
	return vd.soundPeriod
}
