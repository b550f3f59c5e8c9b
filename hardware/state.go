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

// State describes the mode the emulation is in.
type State int

// List of valid emulation states.
const (
	Initialising State = iota
	Running

	// the machine has executed the wait-for-keypress instruction with no
	// input line asserted. instruction execution is suspended but the
	// timers keep counting
	AwaitingInput

	Paused
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "initialising"
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting input"
	case Paused:
		return "paused"
	case Ending:
		return "ending"
	}
	return "unknown"
}
