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

package instructions_test

import (
	"testing"

	"github.com/gopher8/gopher8/hardware/cpu/instructions"
	"github.com/gopher8/gopher8/test"
)

func TestFieldExtraction(t *testing.T) {
	op := instructions.Decode(0xd7a5)
	test.Equate(t, op.Op == instructions.Draw, true)
	test.Equate(t, op.NNN, 0x7a5)
	test.Equate(t, op.NN, 0xa5)
	test.Equate(t, op.N, 0x5)
	test.Equate(t, op.X, 0x7)
	test.Equate(t, op.Y, 0xa)
}

func TestOperationSelection(t *testing.T) {
	expected := map[uint16]instructions.Operation{
		0x0123: instructions.Sys,
		0x00e0: instructions.Cls,
		0x00ee: instructions.Ret,
		0x1abc: instructions.Jmp,
		0x2abc: instructions.Call,
		0x3a01: instructions.SkipEqual,
		0x4a01: instructions.SkipNotEqual,
		0x5ab0: instructions.SkipEqualReg,
		0x6a01: instructions.Load,
		0x7a01: instructions.Add,
		0x8ab0: instructions.LoadReg,
		0x8ab1: instructions.OrReg,
		0x8ab2: instructions.AndReg,
		0x8ab3: instructions.XorReg,
		0x8ab4: instructions.AddReg,
		0x8ab5: instructions.SubReg,
		0x8ab6: instructions.ShiftRight,
		0x8ab7: instructions.SubnReg,
		0x8abe: instructions.ShiftLeft,
		0x9ab0: instructions.SkipNotEqualReg,
		0xaabc: instructions.LoadIndex,
		0xbabc: instructions.JmpRelative,
		0xca7f: instructions.Random,
		0xdab5: instructions.Draw,
		0xea9e: instructions.SkipPressed,
		0xeaa1: instructions.SkipNotPressed,
		0xfa07: instructions.LoadFromDelay,
		0xfa0a: instructions.WaitKey,
		0xfa15: instructions.LoadDelay,
		0xfa18: instructions.LoadSound,
		0xfa1e: instructions.AddIndex,
		0xfa29: instructions.LoadSprite,
		0xfa33: instructions.BCD,
		0xfa55: instructions.StoreRegs,
		0xfa65: instructions.LoadRegs,

		// unrecognised sub-functions
		0x8ab8: instructions.Unknown,
		0x8abf: instructions.Unknown,
		0xea00: instructions.Unknown,
		0xfaff: instructions.Unknown,
	}

	for value, operation := range expected {
		op := instructions.Decode(value)
		if op.Op != operation {
			t.Errorf("%#04x decoded to the wrong operation (%s)", value, op)
		}
	}
}

func TestTotality(t *testing.T) {
	// every 16 bit word decodes and decoding is deterministic
	for i := 0; i <= 0xffff; i++ {
		a := instructions.Decode(uint16(i))
		b := instructions.Decode(uint16(i))
		if a != b {
			t.Fatalf("decoding of %#04x is not deterministic", i)
		}
		if a.Value != uint16(i) {
			t.Fatalf("decoding of %#04x lost the instruction word", i)
		}
	}
}

func TestString(t *testing.T) {
	test.Equate(t, instructions.Decode(0x00e0).String(), "CLS")
	test.Equate(t, instructions.Decode(0x1200).String(), "JP $200")
	test.Equate(t, instructions.Decode(0x6a02).String(), "LD Va,$02")
	test.Equate(t, instructions.Decode(0xd015).String(), "DRW V0,V1,$5")
	test.Equate(t, instructions.Decode(0xfa65).String(), "LD Va,[I]")
	test.Equate(t, instructions.Decode(0xffff).String(), "??? $ffff")
}
