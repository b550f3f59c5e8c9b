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
	"time"

	"github.com/gopher8/gopher8/curated"

	"github.com/veandco/go-sdl2/sdl"
)

const sampleFreq = 22050

// the buzzer is a square wave at this frequency
const beepFreq = 440

const amplitude = 48

// all audio for the SdlPlay type is handled by the beeper.
type beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

func newBeeper() (*beeper, error) {
	snd := &beeper{}

	// prerequisite: SDL_INIT_AUDIO must be included in the call to
	// sdl.Init()
	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// Cue implements the screen.AudioCue interface. The cue is queued to the
// audio device in its entirety; the device plays it out while the emulation
// carries on.
func (scr *SdlPlay) Cue(duration time.Duration) error {
	n := int(float64(sampleFreq) * duration.Seconds())

	// number of samples in one half-cycle of the square wave
	half := sampleFreq / (2 * beepFreq)

	silence := scr.snd.spec.Silence
	data := make([]uint8, n)
	for i := 0; i < n; i++ {
		if (i/half)%2 == 0 {
			data[i] = silence + amplitude
		} else {
			data[i] = silence - amplitude
		}
	}

	if err := sdl.QueueAudio(scr.snd.id, data); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}

// EndAudio implements the screen.AudioCue interface. As well as closing the
// audio device this shuts down SDL itself; rendering has always ended by
// the time this function is called.
func (scr *SdlPlay) EndAudio() error {
	sdl.CloseAudioDevice(scr.snd.id)
	sdl.Quit()
	return nil
}
