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

package hardware

import (
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/timers"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/random"
	"github.com/gopher8/gopher8/screen"
	"github.com/gopher8/gopher8/userinput"
)

// DefIPS is the instruction rate used when Preferences.IPS is not set. The
// original machine had no defined clock; this rate suits most programs.
const DefIPS float32 = 200

// Preferences are the startup choices for the machine. The zero value is a
// usable default.
type Preferences struct {
	// requested instruction rate. values of zero or less mean DefIPS
	IPS float32

	// how sprite coordinates beyond the display edge are treated
	Policy video.Policy

	// whether the register block transfer instructions advance the address
	// register by the size of the transfer
	IncrementOnTransfer bool

	// seed the random source with zero rather than the creation time.
	// emulation is then deterministic from a given program and input
	ZeroSeed bool
}

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	Prefs Preferences

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *video.Display
	Timers  *timers.Timers
	Keypad  *userinput.Keypad

	rnd *random.Random

	// the current emulation state. manipulated by Run() and by the
	// continueCheck functions given to it
	State State

	renderers []screen.Renderer
	cues      []screen.AudioCue

	lmtr limiter
}

// NewChip8 creates a new machine and everything associated with it. The
// machine is in the Initialising state with no program attached.
func NewChip8(prefs Preferences) *Chip8 {
	ch8 := &Chip8{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Display: video.NewDisplay(prefs.Policy),
		Timers:  timers.NewTimers(),
		Keypad:  userinput.NewKeypad(),
	}

	ch8.rnd = random.NewRandom()
	ch8.rnd.ZeroSeed = prefs.ZeroSeed

	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Display, ch8.Timers, ch8.Keypad, ch8.rnd)
	ch8.CPU.IncrementOnTransfer = prefs.IncrementOnTransfer

	ch8.lmtr.init(prefs.IPS)

	return ch8
}

// AttachProgram loads a program into memory and resets the machine ready
// for Run().
func (ch8 *Chip8) AttachProgram(data []byte) error {
	if err := ch8.Mem.LoadProgram(data); err != nil {
		return err
	}
	ch8.Reset()
	return nil
}

// Reset the machine to its power-on condition. The loaded program, if any,
// survives the reset.
func (ch8 *Chip8) Reset() {
	ch8.CPU.Reset()
	ch8.CPU.IncrementOnTransfer = ch8.Prefs.IncrementOnTransfer
	ch8.Display.Clear()
	ch8.Display.ResetDirty()
	ch8.Timers.Reset()
	ch8.State = Initialising
}

// AddRenderer registers an (additional) implementation of Renderer. Every
// registered renderer receives every frame.
func (ch8 *Chip8) AddRenderer(r screen.Renderer) {
	ch8.renderers = append(ch8.renderers, r)
}

// AddAudioCue registers an (additional) implementation of AudioCue.
func (ch8 *Chip8) AddAudioCue(cue screen.AudioCue) {
	ch8.cues = append(ch8.cues, cue)
	ch8.Timers.AddAudioCue(cue)
}

// End cleanly shuts down all registered renderers and audio cues.
func (ch8 *Chip8) End() error {
	var err error
	for _, r := range ch8.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	for _, cue := range ch8.cues {
		if e := cue.EndAudio(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// SetLimiter turns instruction rate limiting on or off. With the limiter
// off the emulation runs as fast as the host allows. The timers still
// count wall-clock time.
func (ch8 *Chip8) SetLimiter(active bool) {
	ch8.lmtr.active = active
}

// ActualIPS returns the measured instruction rate over the most recent
// measurement period.
func (ch8 *Chip8) ActualIPS() float32 {
	return ch8.lmtr.measured()
}

func (ch8 *Chip8) renderFrame() error {
	for _, r := range ch8.renderers {
		if err := r.NewFrame(ch8.Display); err != nil {
			return err
		}
	}
	return nil
}
