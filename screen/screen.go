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

// Package screen defines the contracts between the machine and the host
// presentation layer. The machine itself does not present anything, visually
// or sonically. Instead, Renderer and AudioCue implementations are added to
// the machine and are notified as a side effect of emulation.
//
// More than one Renderer and more than one AudioCue may observe a single
// machine. The SDL host and the digest renderer used by the regression tests
// are both implementations of the same contract.
package screen

import (
	"time"

	"github.com/gopher8/gopher8/hardware/video"
)

// Renderer implementations display, or otherwise work with, the machine's
// display buffer. The buffer is to be treated as read-only: how cells are
// converted to a visual representation is entirely the renderer's concern.
type Renderer interface {
	// NewFrame is called whenever the display buffer may have changed, at
	// most once per emulation tick.
	NewFrame(dsp *video.Display) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. for simplicity, the Renderer should be considered unusable
	// after EndRendering() has been called
	EndRendering() error
}

// AudioCue implementations render the machine's audible cue. The cue is
// raised when the sound timer is set to a non-zero value; the duration is
// how long the timer will take to count back down to zero.
type AudioCue interface {
	Cue(duration time.Duration) error

	// the AudioCue should be considered unusable after EndAudio() has been
	// called
	EndAudio() error
}
