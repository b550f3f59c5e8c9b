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

// Package sdlplay is the SDL implementation of the screen interfaces. It
// opens a window showing the display buffer, sounds the buzzer through the
// host audio device and feeds host keyboard events to the keypad.
//
// The Service() function must be called regularly (ideally once per
// emulated instruction) and from the main goroutine, per the usual SDL
// restrictions on event handling.
package sdlplay

import (
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// the window width and height is the display size multiplied by this value,
// unless the scale argument to NewSdlPlay says otherwise
const defScale = 12

// SdlPlay is an SDL implementation of the screen.Renderer and
// screen.AudioCue interfaces.
type SdlPlay struct {
	// all audio is handled by the beeper type
	snd *beeper

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer
	pixels []byte

	// the keypad to assert input lines on, if one has been attached
	keypad *userinput.Keypad

	// window has been closed or the quit key pressed
	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. A scale value of zero or less means the default scale.
func NewSdlPlay(scale float32, fullscreen bool) (*SdlPlay, error) {
	scr := &SdlPlay{}

	if scale <= 0 {
		scale = defScale
	}

	// set up sdl
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	winFlags := uint32(sdl.WINDOW_SHOWN)
	if fullscreen {
		winFlags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(video.Width)*scale), int32(float32(video.Height)*scale),
		winFlags)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the display buffer to the window for us,
	// whatever the window size ends up being
	err = scr.renderer.SetLogicalSize(video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING,
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// initialise the sound system
	scr.snd, err = newBeeper()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	// show a black window straight away rather than waiting for the first
	// frame from the emulation
	scr.renderer.SetDrawColor(0, 0, 0, 255)
	scr.renderer.Clear()
	scr.renderer.Present()

	return scr, nil
}

// AttachKeypad connects host keyboard events to the supplied keypad.
func (scr *SdlPlay) AttachKeypad(keypad *userinput.Keypad) {
	scr.keypad = keypad
}

// ShouldQuit returns true once the user has asked for the window to close.
func (scr *SdlPlay) ShouldQuit() bool {
	return scr.quit
}

// NewFrame implements the screen.Renderer interface.
func (scr *SdlPlay) NewFrame(dsp *video.Display) error {
	i := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			var v byte
			if dsp.Pixel(x, y) != 0 {
				v = 255
			}
			scr.pixels[i] = v   // blue
			scr.pixels[i+1] = v // green
			scr.pixels[i+2] = v // red
			scr.pixels[i+3] = 255
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the screen.Renderer interface. Note that SDL
// itself is shut down by EndAudio(), which is always called later.
func (scr *SdlPlay) EndRendering() error {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	return nil
}
