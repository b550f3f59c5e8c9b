// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the conventional host mapping for the hexadecimal keypad: the left hand
// block of the keyboard, 1 to V, maps to the 4x4 grid of the keypad.
var keypadKeys = map[string]uint8{
	"X": 0x0,
	"1": 0x1,
	"2": 0x2,
	"3": 0x3,
	"Q": 0x4,
	"W": 0x5,
	"E": 0x6,
	"A": 0x7,
	"S": 0x8,
	"D": 0x9,
	"Z": 0xa,
	"C": 0xb,
	"4": 0xc,
	"R": 0xd,
	"F": 0xe,
	"V": 0xf,
}

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them at all
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service window and keyboard events. Window close and the Escape key both
// raise the quit condition; the keypad keys assert and release input lines
// on the attached keypad.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. we don't want to
	// truncate the queue because we may miss a key release
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}

			key := sdl.GetKeyName(ev.Keysym.Sym)

			if key == "Escape" {
				if ev.Type == sdl.KEYDOWN {
					scr.quit = true
				}
				break // switch
			}

			if scr.keypad == nil {
				break // switch
			}

			if line, ok := keypadKeys[key]; ok {
				if ev.Type == sdl.KEYDOWN {
					scr.keypad.Hold(line)
				} else {
					scr.keypad.Release(line)
				}
			}

		case nil:
			// if we have a nil value then WaitEventTimeout has timed out
			// and we can say that the event queue is empty
			empty = true
		}
	}
}
