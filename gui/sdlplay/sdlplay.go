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
	"fmt"
	"image"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/gui"
	"github.com/jetsetilly/vidcemu/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	pump *gui.Pump

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. the texture is recreated whenever the size of the
	// frame changes
	texW int32
	texH int32

	scale float32

	audio    sdl.AudioDeviceID
	audioBuf []byte

	// the frame number when the window title was last updated
	titleFrame int
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Must be
// called from the main thread.
func NewSdlPlay(pump *gui.Pump, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		pump:  pump,
		scale: max(scale, 1.0),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(gui.WindowError, err)
	}

	// window size is set in resize() once the first frame arrives
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		640, 512,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.WindowError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(gui.WindowError, err)
	}

	err = scr.openAudio()
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(gui.WindowError, err)
	}

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.audio != 0 {
		sdl.CloseAudioDevice(scr.audio)
		scr.audio = 0
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// resize the texture and the window to fit the image
func (scr *SdlPlay) resize(w, h int32) error {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return err
	}
	scr.texW = w
	scr.texH = h

	// low resolution modes have lines that are twice as tall as they are wide
	sy := scr.scale
	if h*2 <= w {
		sy *= 2
	}
	ww := int32(float32(w) * scr.scale)
	wh := int32(float32(h) * sy)
	scr.window.SetSize(ww, wh)

	return scr.renderer.SetLogicalSize(ww, wh)
}

// copy the image to the texture
func (scr *SdlPlay) update(img *image.RGBA) error {
	w := int32(img.Bounds().Dx())
	h := int32(img.Bounds().Dy())
	if w != scr.texW || h != scr.texH || scr.texture == nil {
		if err := scr.resize(w, h); err != nil {
			return err
		}
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	defer scr.texture.Unlock()

	rowLen := int(w) * pixelDepth
	for y := range int(h) {
		copy(pixels[y*pitch:y*pitch+rowLen], img.Pix[y*img.Stride:y*img.Stride+rowLen])
	}

	return nil
}

func (scr *SdlPlay) present() error {
	err := scr.renderer.Clear()
	if err != nil {
		return err
	}
	if scr.texture != nil {
		err = scr.renderer.Copy(scr.texture, nil, nil)
		if err != nil {
			return err
		}
	}
	scr.renderer.Present()
	return nil
}

// the window title shows the current mode and the measured frame rate. it is
// not updated every frame
func (scr *SdlPlay) updateTitle(frameNum int) {
	if frameNum-scr.titleFrame < 50 && frameNum >= scr.titleFrame {
		return
	}
	scr.titleFrame = frameNum

	title := version.ApplicationName
	if g, ok := scr.pump.Geometry(); ok {
		title = fmt.Sprintf("%s %dx%d %.1fHz", title, g.Width, g.Height, g.Refresh)
	}
	if fps, ok := scr.pump.Limiter.Measured.Load().(float64); ok && fps > 0 {
		title = fmt.Sprintf("%s (%.1ffps)", title, fps)
	}
	if scr.pump.Paused() {
		title = fmt.Sprintf("%s [paused]", title)
	}
	scr.window.SetTitle(title)
}
