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

package memory_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/test"
)

func TestFontTable(t *testing.T) {
	mem := memory.NewMemory()

	// first row of the zero glyph
	d, err := mem.Read8(memory.OriginFont)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// last row of the F glyph
	d, err = mem.Read8(memory.OriginFont + 16*memory.GlyphSize - 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x80)
}

func TestSpriteAddress(t *testing.T) {
	mem := memory.NewMemory()

	a, err := mem.SpriteAddress(0x0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, a, memory.OriginFont)

	a, err = mem.SpriteAddress(0xf)
	test.ExpectedSuccess(t, err)
	test.Equate(t, a, memory.OriginFont+15*memory.GlyphSize)

	_, err = mem.SpriteAddress(0x10)
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, memory.DigitOutOfRange), true)
	}
}

func TestBigEndianFetch(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectedSuccess(t, mem.LoadProgram([]byte{0x00, 0xe0, 0x12, 0x00}))

	o, err := mem.Read16(memory.OriginProgram)
	test.ExpectedSuccess(t, err)
	test.Equate(t, o, 0x00e0)

	o, err = mem.Read16(memory.OriginProgram + 2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, o, 0x1200)
}

func TestBounds(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Read8(memory.Size)
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, memory.AddressOutOfRange), true)
	}

	err = mem.Write8(memory.Size, 0xff)
	test.ExpectedFailure(t, err)

	// a 16 bit read of the last byte of memory runs out of bounds
	_, err = mem.Read16(memory.Size - 1)
	test.ExpectedFailure(t, err)

	_, err = mem.Read16(memory.Size - 2)
	test.ExpectedSuccess(t, err)
}

func TestProgramTooLarge(t *testing.T) {
	mem := memory.NewMemory()

	data := make([]byte, memory.Size-memory.OriginProgram)
	test.ExpectedSuccess(t, mem.LoadProgram(data))

	data = make([]byte, memory.Size-memory.OriginProgram+1)
	err := mem.LoadProgram(data)
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, memory.ProgramTooLarge), true)
	}
}
