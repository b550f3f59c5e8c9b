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

// Package userinput conceptualises the sixteen input lines of the machine's
// keypad. The machine only ever asks whether a line is currently asserted;
// how lines map to physical keys is a host concern. By convention the lines
// are presented to the user as a 4x4 grid.
package userinput

// NumLines is the number of input lines on the keypad.
const NumLines = 16

// Port is the contract between the machine and the host's input source.
type Port interface {
	// IsAsserted returns true if the specified input line is currently
	// held. Line values outside of 0 to 15 always return false.
	IsAsserted(line uint8) bool
}

// Keypad is the reference Port implementation. The host holds and releases
// lines in response to physical key events.
//
// Note that there is no synchronisation. The emulation is single threaded
// and the host services input events on the same execution path as the
// machine tick.
type Keypad struct {
	lines [NumLines]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Hold the specified line. Out of range values are ignored.
func (kp *Keypad) Hold(line uint8) {
	if line < NumLines {
		kp.lines[line] = true
	}
}

// Release the specified line. Out of range values are ignored.
func (kp *Keypad) Release(line uint8) {
	if line < NumLines {
		kp.lines[line] = false
	}
}

// IsAsserted implements the Port interface.
func (kp *Keypad) IsAsserted(line uint8) bool {
	return line < NumLines && kp.lines[line]
}

// FirstAsserted returns the lowest numbered line currently asserted, in the
// manner of the original machine's key-wait scan.
func FirstAsserted(port Port) (uint8, bool) {
	for line := uint8(0); line < NumLines; line++ {
		if port.IsAsserted(line) {
			return line, true
		}
	}
	return 0, false
}
