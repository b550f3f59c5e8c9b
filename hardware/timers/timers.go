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

// Package timers implements the two 8 bit countdown timers of the machine.
// Both decrement at a fixed wall-clock rate of 60Hz, regardless of how fast
// instructions are executing. The driver works by comparing elapsed
// wall-clock time against the decrement interval on every call to Step();
// there is no separate thread.
package timers

import (
	"time"

	"github.com/gopher8/gopher8/screen"
)

// Rate is the decrement frequency of both timers in Hz.
const Rate = 60

// interval is the wall-clock time between decrements.
const interval = time.Second / Rate

// Timers are the delay and sound countdown timers.
type Timers struct {
	delay uint8
	sound uint8

	// wall-clock time of the most recent decrement
	lastTick time.Time

	cues []screen.AudioCue
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{lastTick: time.Now()}
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
	tmr.lastTick = time.Now()
}

// AddAudioCue registers an (additional) implementation of AudioCue.
func (tmr *Timers) AddAudioCue(cue screen.AudioCue) {
	tmr.cues = append(tmr.cues, cue)
}

// Step decrements each non-zero timer once for every decrement interval
// that has elapsed since the previous call. Called on every tick of the
// emulation; how often instructions execute has no effect on the rate.
func (tmr *Timers) Step(now time.Time) {
	for now.Sub(tmr.lastTick) >= interval {
		tmr.lastTick = tmr.lastTick.Add(interval)
		if tmr.delay > 0 {
			tmr.delay--
		}
		if tmr.sound > 0 {
			tmr.sound--
		}
	}
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay loads the delay timer.
func (tmr *Timers) SetDelay(value uint8) {
	tmr.delay = value
}

// Sound returns the current value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetSound loads the sound timer. Loading a non-zero value raises the
// audible cue with every registered AudioCue implementation; the duration
// of the cue is the time the timer will take to count back down to zero.
func (tmr *Timers) SetSound(value uint8) error {
	raise := value > 0 && tmr.sound == 0
	tmr.sound = value

	if raise {
		d := time.Duration(value) * interval
		for _, cue := range tmr.cues {
			if err := cue.Cue(d); err != nil {
				return err
			}
		}
	}

	return nil
}
