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
	"image"

	"github.com/jetsetilly/vidcemu/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// milliseconds to wait between iterations of the service loop
const serviceDelay = 5

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() error {
	// mouse motion events fill up the event queue and are of no use to us
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				scr.pump.Send(gui.EventQuit{})

			case *sdl.KeyboardEvent:
				if ev.Repeat != 0 {
					continue
				}
				scr.pump.Send(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: ev.Type == sdl.KEYDOWN,
				})
			}
		}

		if done, err := scr.pump.Finished(); done {
			return err
		}

		if err := scr.serviceAudio(); err != nil {
			return err
		}

		var err error
		scr.pump.Frame.Borrow(func(img *image.RGBA, frameNum int, dirty bool) {
			if img == nil || !dirty {
				return
			}
			err = scr.update(img)
			scr.updateTitle(frameNum)
		})
		if err != nil {
			return err
		}

		if err := scr.present(); err != nil {
			return err
		}

		sdl.Delay(serviceDelay)
	}
}
