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

// Package wavwriter allows writing of the machine's audio cues to disk as a
// WAV file. Note that audio data is buffered in memory in its entirety and
// written to disk on program end. Cues are written back to back with no
// record of the silence between them. It is therefore probably only
// suitable for testing purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/logger"
)

// SampleFreq is the sample frequency of the written file in Hz.
const SampleFreq = 22050

// the rendered cue is a square wave at this frequency
const beepFreq = 440

const amplitude = 8000

// WavWriter implements the screen.AudioCue interface.
type WavWriter struct {
	filename string
	samples  []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		samples:  make([]int, 0),
	}

	return aw, nil
}

// Cue implements the screen.AudioCue interface. The cue is rendered as a
// square wave of the specified duration.
func (aw *WavWriter) Cue(duration time.Duration) error {
	n := int(float64(SampleFreq) * duration.Seconds())

	// number of samples in one half-cycle of the square wave
	half := SampleFreq / (2 * beepFreq)

	for i := 0; i < n; i++ {
		if (i/half)%2 == 0 {
			aw.samples = append(aw.samples, amplitude)
		} else {
			aw.samples = append(aw.samples, -amplitude)
		}
	}

	return nil
}

// EndAudio implements the screen.AudioCue interface. The buffered samples
// are encoded and written to disk.
func (aw *WavWriter) EndAudio() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.samples,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
