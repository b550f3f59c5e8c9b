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

import "fmt"

// String returns the opcode in a conventional assembly notation. Useful for
// disassembly and error reporting.
func (op Opcode) String() string {
	switch op.Op {
	case Sys:
		return fmt.Sprintf("SYS $%03x", op.NNN)
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jmp:
		return fmt.Sprintf("JP $%03x", op.NNN)
	case Call:
		return fmt.Sprintf("CALL $%03x", op.NNN)
	case SkipEqual:
		return fmt.Sprintf("SE V%x,$%02x", op.X, op.NN)
	case SkipNotEqual:
		return fmt.Sprintf("SNE V%x,$%02x", op.X, op.NN)
	case SkipEqualReg:
		return fmt.Sprintf("SE V%x,V%x", op.X, op.Y)
	case Load:
		return fmt.Sprintf("LD V%x,$%02x", op.X, op.NN)
	case Add:
		return fmt.Sprintf("ADD V%x,$%02x", op.X, op.NN)
	case LoadReg:
		return fmt.Sprintf("LD V%x,V%x", op.X, op.Y)
	case OrReg:
		return fmt.Sprintf("OR V%x,V%x", op.X, op.Y)
	case AndReg:
		return fmt.Sprintf("AND V%x,V%x", op.X, op.Y)
	case XorReg:
		return fmt.Sprintf("XOR V%x,V%x", op.X, op.Y)
	case AddReg:
		return fmt.Sprintf("ADD V%x,V%x", op.X, op.Y)
	case SubReg:
		return fmt.Sprintf("SUB V%x,V%x", op.X, op.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%x", op.X)
	case SubnReg:
		return fmt.Sprintf("SUBN V%x,V%x", op.X, op.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%x", op.X)
	case SkipNotEqualReg:
		return fmt.Sprintf("SNE V%x,V%x", op.X, op.Y)
	case LoadIndex:
		return fmt.Sprintf("LD I,$%03x", op.NNN)
	case JmpRelative:
		return fmt.Sprintf("JP V0,$%03x", op.NNN)
	case Random:
		return fmt.Sprintf("RND V%x,$%02x", op.X, op.NN)
	case Draw:
		return fmt.Sprintf("DRW V%x,V%x,$%x", op.X, op.Y, op.N)
	case SkipPressed:
		return fmt.Sprintf("SKP V%x", op.X)
	case SkipNotPressed:
		return fmt.Sprintf("SKNP V%x", op.X)
	case LoadFromDelay:
		return fmt.Sprintf("LD V%x,DT", op.X)
	case WaitKey:
		return fmt.Sprintf("LD V%x,K", op.X)
	case LoadDelay:
		return fmt.Sprintf("LD DT,V%x", op.X)
	case LoadSound:
		return fmt.Sprintf("LD ST,V%x", op.X)
	case AddIndex:
		return fmt.Sprintf("ADD I,V%x", op.X)
	case LoadSprite:
		return fmt.Sprintf("LD F,V%x", op.X)
	case BCD:
		return fmt.Sprintf("LD B,V%x", op.X)
	case StoreRegs:
		return fmt.Sprintf("LD [I],V%x", op.X)
	case LoadRegs:
		return fmt.Sprintf("LD V%x,[I]", op.X)
	}

	return fmt.Sprintf("??? $%04x", op.Value)
}
