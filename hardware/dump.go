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
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/cpu/instructions"
	"github.com/gopher8/gopher8/hardware/memory"
)

// DumpRegisters writes a human readable summary of the machine state: the
// registers, the call stack, the timers and the most recently executed
// instruction. Intended for diagnostics after an emulation error.
func (ch8 *Chip8) DumpRegisters(w io.Writer) {
	fmt.Fprintf(w, "state: %s\n", ch8.State)
	fmt.Fprintf(w, "last instruction: %s\n", ch8.CPU.LastResult)

	for i, v := range ch8.CPU.V {
		fmt.Fprintf(w, "V%x: %#02x  ", i, v)
		if i%4 == 3 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "I: %#04x  PC: %#04x\n", ch8.CPU.I, ch8.CPU.PC)

	fmt.Fprintf(w, "stack (%d deep):", len(ch8.CPU.Stack))
	for _, address := range ch8.CPU.Stack {
		fmt.Fprintf(w, " %#04x", address)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "delay: %#02x  sound: %#02x\n", ch8.Timers.Delay(), ch8.Timers.Sound())
}

// DumpMemory writes the entire address space as a hex dump, sixteen bytes
// per row.
func (ch8 *Chip8) DumpMemory(w io.Writer) {
	for base := 0; base < memory.Size; base += 16 {
		fmt.Fprintf(w, "%#04x:", base)
		for offset := 0; offset < 16; offset++ {
			d, _ := ch8.Mem.Read8(uint16(base + offset))
			fmt.Fprintf(w, " %02x", d)
		}
		fmt.Fprintln(w)
	}
}

// DumpOpcodes writes the program area of memory as a decoded instruction
// stream. Like any linear disassembly it will present program data as
// instructions too; the rendering of unknown words makes those easy to
// spot.
func (ch8 *Chip8) DumpOpcodes(w io.Writer) {
	for address := uint16(memory.OriginProgram); int(address) < memory.Size; address += cpu.OpcodeSize {
		value, err := ch8.Mem.Read16(address)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "%#04x  %04x  %s\n", address, value, instructions.Decode(value))
	}
}

// DumpGraph writes the machine's component graph in graphviz dot format.
func (ch8 *Chip8) DumpGraph(w io.Writer) {
	memviz.Map(w, ch8)
}
