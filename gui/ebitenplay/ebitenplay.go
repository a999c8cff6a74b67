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

// Package ebitenplay is an alternative to the sdlplay frontend built on
// Ebitengine, with audio played through oto. The key bindings are the same as
// for sdlplay.
package ebitenplay

import (
	"fmt"
	"image"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jetsetilly/vidcemu/curated"
	"github.com/jetsetilly/vidcemu/gui"
	"github.com/jetsetilly/vidcemu/version"
)

// the amount of audio buffered by oto
const audioBufferSize = 50 * time.Millisecond

// EbitenPlay implements the gui.GUI interface and the ebiten.Game interface.
type EbitenPlay struct {
	pump  *gui.Pump
	scale int

	// copy of the most recent frame
	screen *ebiten.Image
	w, h   int

	otoCtx *oto.Context
	player *oto.Player

	keys []ebiten.Key

	// the error returned by the emulation
	err error
}

// NewEbitenPlay is the preferred method of initialisation for the EbitenPlay
// type.
func NewEbitenPlay(pump *gui.Pump, scale int) (*EbitenPlay, error) {
	eb := &EbitenPlay{
		pump:  pump,
		scale: max(scale, 1),
	}

	op := &oto.NewContextOptions{
		SampleRate:   pump.Audio.SampleRate(),
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   audioBufferSize,
	}

	var ready chan struct{}
	var err error
	eb.otoCtx, ready, err = oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(gui.WindowError, err)
	}
	<-ready

	eb.player = eb.otoCtx.NewPlayer(pump.Audio)
	eb.player.Play()

	return eb, nil
}

// Destroy implements the gui.GUI interface.
func (eb *EbitenPlay) Destroy() {
	if eb.player != nil {
		_ = eb.player.Close()
		eb.player = nil
	}
}

// Service implements the gui.GUI interface. Must be called from the main
// thread.
func (eb *EbitenPlay) Service() error {
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowSize(640*eb.scale, 512*eb.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	err := ebiten.RunGame(eb)
	if err != nil {
		return curated.Errorf(gui.WindowError, err)
	}
	return eb.err
}

// Update implements the ebiten.Game interface.
func (eb *EbitenPlay) Update() error {
	if done, err := eb.pump.Finished(); done {
		eb.err = err
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		eb.pump.Send(gui.EventQuit{})
	}

	eb.keys = inpututil.AppendJustPressedKeys(eb.keys[:0])
	for _, k := range eb.keys {
		eb.pump.Send(gui.EventKeyboard{Key: k.String(), Down: true})
	}
	eb.keys = inpututil.AppendJustReleasedKeys(eb.keys[:0])
	for _, k := range eb.keys {
		eb.pump.Send(gui.EventKeyboard{Key: k.String(), Down: false})
	}

	eb.pump.Frame.Borrow(func(img *image.RGBA, _ int, dirty bool) {
		if img == nil || !dirty {
			return
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if eb.screen == nil || w != eb.w || h != eb.h {
			eb.screen = ebiten.NewImage(w, h)
			eb.w = w
			eb.h = h

			// low resolution modes have lines that are twice as tall as they
			// are wide
			sy := eb.scale
			if h*2 <= w {
				sy *= 2
			}
			ebiten.SetWindowSize(w*eb.scale, h*sy)
		}
		eb.screen.WritePixels(img.Pix)
	})

	eb.updateTitle()

	return nil
}

func (eb *EbitenPlay) updateTitle() {
	title := version.ApplicationName
	if g, ok := eb.pump.Geometry(); ok {
		title = fmt.Sprintf("%s %dx%d %.1fHz", title, g.Width, g.Height, g.Refresh)
	}
	if eb.pump.Paused() {
		title = fmt.Sprintf("%s [paused]", title)
	}
	ebiten.SetWindowTitle(title)
}

// Draw implements the ebiten.Game interface.
func (eb *EbitenPlay) Draw(screen *ebiten.Image) {
	if eb.screen == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(eb.w), float64(sh)/float64(eb.h))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(eb.screen, op)
}

// Layout implements the ebiten.Game interface.
func (eb *EbitenPlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
