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

package memory

import (
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/logger"
)

// Size is the extent of addressable memory in bytes.
const Size = 4096

// The fixed memory layout. The low 512 bytes belonged to the interpreter on
// the original machine; only the font table lives there in this emulation.
const (
	OriginFont    = 0x000
	OriginProgram = 0x200
)

// Error patterns for the memory package.
const (
	AddressOutOfRange = "memory: address out of range (%#04x)"
	DigitOutOfRange   = "memory: no font glyph for value (%#02x)"
	ProgramTooLarge   = "memory: program too large (%d bytes)"
)

// Memory is the flat byte addressable memory of the machine.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes all of memory and reloads the font table.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginFont:], font[:])
}

// LoadProgram copies the program bytes verbatim into memory starting at
// OriginProgram. There is no header and no relocation.
func (mem *Memory) LoadProgram(data []byte) error {
	if len(data) > Size-OriginProgram {
		return curated.Errorf(ProgramTooLarge, len(data))
	}

	// clear any previous program before copying. the font table is below
	// OriginProgram and is unaffected
	for i := OriginProgram; i < Size; i++ {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginProgram:], data)

	logger.Logf("memory", "%d bytes loaded at %#04x", len(data), OriginProgram)

	return nil
}

// Read8 returns the byte at the specified address.
func (mem *Memory) Read8(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.ram[address], nil
}

// Write8 sets the byte at the specified address.
func (mem *Memory) Write8(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.ram[address] = data
	return nil
}

// Read16 returns the 16 bit word at the specified address. Instruction words
// are stored big-endian, regardless of the byte order of the host.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	if int(address)+1 >= Size {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1]), nil
}
