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

package instructions

// Operation identifies the decoded meaning of an instruction word.
type Operation int

// The list of operations in the CHIP-8 instruction set. Unknown is the
// terminal case for instruction words that match no operation.
const (
	Sys             Operation = iota // 0NNN
	Cls                              // 00E0
	Ret                              // 00EE
	Jmp                              // 1NNN
	Call                             // 2NNN
	SkipEqual                        // 3XNN
	SkipNotEqual                     // 4XNN
	SkipEqualReg                     // 5XY0
	Load                             // 6XNN
	Add                              // 7XNN
	LoadReg                          // 8XY0
	OrReg                            // 8XY1
	AndReg                           // 8XY2
	XorReg                           // 8XY3
	AddReg                           // 8XY4
	SubReg                           // 8XY5
	ShiftRight                       // 8XY6
	SubnReg                          // 8XY7
	ShiftLeft                        // 8XYE
	SkipNotEqualReg                  // 9XY0
	LoadIndex                        // ANNN
	JmpRelative                      // BNNN
	Random                           // CXNN
	Draw                             // DXYN
	SkipPressed                      // EX9E
	SkipNotPressed                   // EXA1
	LoadFromDelay                    // FX07
	WaitKey                          // FX0A
	LoadDelay                        // FX15
	LoadSound                        // FX18
	AddIndex                         // FX1E
	LoadSprite                       // FX29
	BCD                              // FX33
	StoreRegs                        // FX55
	LoadRegs                         // FX65
	Unknown
)

// Opcode is a decoded instruction word. The operand fields are populated for
// every word, even when the operation does not use them.
type Opcode struct {
	// the instruction word the opcode was decoded from
	Value uint16

	Op Operation

	// operand fields
	NNN uint16 // 12 bit immediate address
	NN  uint8  // 8 bit immediate
	N   uint8  // 4 bit immediate
	X   uint8  // first register index
	Y   uint8  // second register index
}

// Decode an instruction word. Decoding is total: the same word always yields
// the same Opcode and every word yields something, if only an Opcode with
// the Unknown operation.
func Decode(value uint16) Opcode {
	op := Opcode{
		Value: value,
		NNN:   value & 0x0fff,
		NN:    uint8(value & 0x00ff),
		N:     uint8(value & 0x000f),
		X:     uint8(value & 0x0f00 >> 8),
		Y:     uint8(value & 0x00f0 >> 4),
	}

	switch value & 0xf000 {
	case 0x0000:
		switch value {
		case 0x00e0:
			op.Op = Cls
		case 0x00ee:
			op.Op = Ret
		default:
			op.Op = Sys
		}
	case 0x1000:
		op.Op = Jmp
	case 0x2000:
		op.Op = Call
	case 0x3000:
		op.Op = SkipEqual
	case 0x4000:
		op.Op = SkipNotEqual
	case 0x5000:
		op.Op = SkipEqualReg
	case 0x6000:
		op.Op = Load
	case 0x7000:
		op.Op = Add
	case 0x8000:
		switch value & 0x000f {
		case 0x0:
			op.Op = LoadReg
		case 0x1:
			op.Op = OrReg
		case 0x2:
			op.Op = AndReg
		case 0x3:
			op.Op = XorReg
		case 0x4:
			op.Op = AddReg
		case 0x5:
			op.Op = SubReg
		case 0x6:
			op.Op = ShiftRight
		case 0x7:
			op.Op = SubnReg
		case 0xe:
			op.Op = ShiftLeft
		default:
			op.Op = Unknown
		}
	case 0x9000:
		op.Op = SkipNotEqualReg
	case 0xa000:
		op.Op = LoadIndex
	case 0xb000:
		op.Op = JmpRelative
	case 0xc000:
		op.Op = Random
	case 0xd000:
		op.Op = Draw
	case 0xe000:
		switch value & 0x00ff {
		case 0x9e:
			op.Op = SkipPressed
		case 0xa1:
			op.Op = SkipNotPressed
		default:
			op.Op = Unknown
		}
	case 0xf000:
		switch value & 0x00ff {
		case 0x07:
			op.Op = LoadFromDelay
		case 0x0a:
			op.Op = WaitKey
		case 0x15:
			op.Op = LoadDelay
		case 0x18:
			op.Op = LoadSound
		case 0x1e:
			op.Op = AddIndex
		case 0x29:
			op.Op = LoadSprite
		case 0x33:
			op.Op = BCD
		case 0x55:
			op.Op = StoreRegs
		case 0x65:
			op.Op = LoadRegs
		default:
			op.Op = Unknown
		}
	}

	return op
}
