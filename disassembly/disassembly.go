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

// Package disassembly produces a linear disassembly of a program. Every
// aligned instruction word is decoded in sequence, with no attempt to follow
// the flow of execution. Program data that happens to sit between
// instructions will therefore be presented as instructions too, which is
// unavoidable without running the program.
package disassembly

import (
	"fmt"
	"io"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/cpu/instructions"
	"github.com/gopher8/gopher8/hardware/memory"
)

// Error patterns for the disassembly package.
const (
	ProgramTooLarge = "disassembly: program too large (%d bytes)"
)

// Entry is a single decoded instruction word.
type Entry struct {
	Address uint16
	Opcode  instructions.Opcode
}

func (e Entry) String() string {
	return fmt.Sprintf("%#04x  %04x  %s", e.Address, e.Opcode.Value, e.Opcode)
}

// Disassembly is the result of disassembling a program.
type Disassembly struct {
	Entries []Entry
}

// FromProgram disassembles a program as it would be laid out in memory. An
// odd trailing byte is padded with zero, as it would be by the zero
// initialised memory of the real machine.
func FromProgram(data []byte) (*Disassembly, error) {
	if len(data) > memory.Size-memory.OriginProgram {
		return nil, curated.Errorf(ProgramTooLarge, len(data))
	}

	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(data)+1)/2),
	}

	for i := 0; i < len(data); i += cpu.OpcodeSize {
		value := uint16(data[i]) << 8
		if i+1 < len(data) {
			value |= uint16(data[i+1])
		}

		dsm.Entries = append(dsm.Entries, Entry{
			Address: uint16(memory.OriginProgram + i),
			Opcode:  instructions.Decode(value),
		})
	}

	return dsm, nil
}

// Write the disassembly in a human readable format, one entry per line.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
