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

package cpu

import (
	"fmt"

	"github.com/gopher8/gopher8/hardware/cpu/instructions"
)

// Result records the outcome of the most recent call to
// ExecuteInstruction(). Used by the emulation loop to drive the scheduler
// state machine and for diagnostics on halt.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the decoded instruction
	Opcode instructions.Opcode

	// the instruction was FX0A and no input line was asserted at the time
	// of execution. the machine should suspend until one is, latching the
	// line index into the destination register
	AwaitInput bool

	// the register to latch the input line index into
	AwaitDestination uint8
}

func (res Result) String() string {
	return fmt.Sprintf("%#04x: %s", res.Address, res.Opcode)
}
