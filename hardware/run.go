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
	"time"

	"github.com/gopher8/gopher8/userinput"
)

// While the continueCheck() function only runs once per instruction it can
// still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return hardware.Ending, nil
//		}
//	}
//	return hardware.Running, nil
const PerformanceBrake = 100

// Step runs one tick of the machine at the given wall-clock time: the
// timers catch up with elapsed time, at most one instruction executes and
// any changed frame is pushed to the registered renderers.
//
// Errors from instruction execution are unrecoverable. The machine moves to
// the Ending state and must not be stepped again; LastResult on the CPU
// identifies the failed instruction.
func (ch8 *Chip8) Step(now time.Time) error {
	ch8.Timers.Step(now)

	switch ch8.State {
	case Initialising:
		ch8.State = Running
		fallthrough

	case Running:
		if err := ch8.CPU.ExecuteInstruction(); err != nil {
			ch8.State = Ending
			return err
		}
		if ch8.CPU.LastResult.AwaitInput {
			ch8.State = AwaitingInput
		}

	case AwaitingInput:
		// instruction execution is suspended until an input line is
		// asserted. the line index is latched into the register named by
		// the suspending instruction
		if line, ok := userinput.FirstAsserted(ch8.Keypad); ok {
			ch8.CPU.V[ch8.CPU.LastResult.AwaitDestination] = line
			ch8.State = Running
		}

	case Paused:
		// timers and renderers only
	}

	if ch8.Display.Dirty() {
		if err := ch8.renderFrame(); err != nil {
			return err
		}
		ch8.Display.ResetDirty()
	}

	return nil
}

// Run sets the emulation running at the requested instruction rate. The
// continueCheck function is called after every tick; the emulation stops
// cleanly when it returns Ending. A nil continueCheck means run forever, or
// until an emulation error.
func (ch8 *Chip8) Run(continueCheck func() (State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (State, error) { return Running, nil }
	}

	for {
		ch8.lmtr.checkInstruction()

		if err := ch8.Step(time.Now()); err != nil {
			return err
		}

		state, err := continueCheck()
		if err != nil {
			return err
		}

		switch state {
		case Ending:
			ch8.State = Ending
			return nil
		case Paused:
			if ch8.State == Running {
				ch8.State = Paused
			}
		case Running:
			if ch8.State == Paused {
				ch8.State = Running
			}
		}
	}
}
