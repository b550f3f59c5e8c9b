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

package cpu_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/timers"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/random"
	"github.com/gopher8/gopher8/test"
	"github.com/gopher8/gopher8/userinput"
)

// assembles a test rig with the supplied program loaded at the program
// origin and the program counter pointing at its first instruction.
func newTestCPU(t *testing.T, program []byte) (*cpu.CPU, *userinput.Keypad, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory()
	if err := mem.LoadProgram(program); err != nil {
		t.Fatalf("program load failed: %v", err)
	}

	kp := userinput.NewKeypad()
	rnd := random.NewRandom()
	rnd.ZeroSeed = true

	mc := cpu.NewCPU(mem, video.NewDisplay(video.Clamp), timers.NewTimers(), kp, rnd)

	return mc, kp, mem
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error at %s: %v", mc.LastResult, err)
	}
}

func TestLoadAndArithmetic(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x0a, // LD V0,$0a
		0x70, 0x05, // ADD V0,$05
		0x61, 0x03, // LD V1,$03
		0x80, 0x14, // ADD V0,V1
	})

	step(t, mc)
	test.Equate(t, mc.V[0], 0x0a)

	step(t, mc)
	test.Equate(t, mc.V[0], 0x0f)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.V[0], 0x12)
	test.Equate(t, mc.V[cpu.Flag], 0)
}

func TestAddCarry(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0xff, // LD V0,$ff
		0x61, 0x02, // LD V1,$02
		0x80, 0x14, // ADD V0,V1
		0x80, 0x14, // ADD V0,V1
	})

	step(t, mc)
	step(t, mc)

	// 0xff + 0x02 wraps to 0x01 and carries
	step(t, mc)
	test.Equate(t, mc.V[0], 0x01)
	test.Equate(t, mc.V[cpu.Flag], 1)

	// 0x01 + 0x02 does not carry. the flag write is unconditional
	step(t, mc)
	test.Equate(t, mc.V[0], 0x03)
	test.Equate(t, mc.V[cpu.Flag], 0)
}

func TestSubBorrow(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x05, // LD V0,$05
		0x61, 0x03, // LD V1,$03
		0x80, 0x15, // SUB V0,V1
		0x80, 0x15, // SUB V0,V1
		0x80, 0x17, // SUBN V0,V1
	})

	step(t, mc)
	step(t, mc)

	// V0 > V1 so the flag is set
	step(t, mc)
	test.Equate(t, mc.V[0], 0x02)
	test.Equate(t, mc.V[cpu.Flag], 1)

	// V0 < V1 now. result wraps, flag unset
	step(t, mc)
	test.Equate(t, mc.V[0], 0xff)
	test.Equate(t, mc.V[cpu.Flag], 0)

	// SUBN: V1 - V0 = 0x03 - 0xff wraps to 0x04. V1 > V0 is false
	step(t, mc)
	test.Equate(t, mc.V[0], 0x04)
	test.Equate(t, mc.V[cpu.Flag], 0)
}

func TestShifts(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x81, // LD V0,$81
		0x80, 0x06, // SHR V0
		0x80, 0x0e, // SHL V0
		0x80, 0x0e, // SHL V0
	})

	step(t, mc)

	// shift right of 0x81. bit shifted out is 1
	step(t, mc)
	test.Equate(t, mc.V[0], 0x40)
	test.Equate(t, mc.V[cpu.Flag], 1)

	// shift left of 0x40. bit shifted out is 0
	step(t, mc)
	test.Equate(t, mc.V[0], 0x80)
	test.Equate(t, mc.V[cpu.Flag], 0)

	// shift left of 0x80. bit shifted out is 1 and the result is 0
	step(t, mc)
	test.Equate(t, mc.V[0], 0x00)
	test.Equate(t, mc.V[cpu.Flag], 1)
}

func TestBitwise(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x0f, // LD V0,$0f
		0x61, 0x35, // LD V1,$35
		0x80, 0x11, // OR V0,V1
		0x80, 0x12, // AND V0,V1
		0x80, 0x13, // XOR V0,V1
	})

	step(t, mc)
	step(t, mc)

	step(t, mc)
	test.Equate(t, mc.V[0], 0x3f)

	step(t, mc)
	test.Equate(t, mc.V[0], 0x35)

	step(t, mc)
	test.Equate(t, mc.V[0], 0x00)
}

func TestSkips(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x0a, // LD V0,$0a
		0x30, 0x0a, // SE V0,$0a     skips
		0x00, 0x00, // skipped
		0x40, 0x0a, // SNE V0,$0a    does not skip
		0x61, 0x0a, // LD V1,$0a
		0x50, 0x10, // SE V0,V1      skips
		0x00, 0x00, // skipped
		0x90, 0x10, // SNE V0,V1     does not skip
		0x62, 0x01, // LD V2,$01
	})

	start := mc.PC

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC, start+6)

	step(t, mc)
	test.Equate(t, mc.PC, start+8)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC, start+14)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.V[2], 0x01)
}

func TestCallReturnRoundTrip(t *testing.T) {
	// 24 call frames. each frame is a CALL to the next frame followed by
	// the RET the callee eventually returns to, so the pushed addresses
	// are distinct from the call targets. a lone RET in the final frame
	// starts the unwind
	program := make([]byte, cpu.StackDepth*4+2)
	for i := 0; i < cpu.StackDepth; i++ {
		target := memory.OriginProgram + (i+1)*4
		program[i*4] = 0x20 | uint8(target>>8)
		program[i*4+1] = uint8(target)
		program[i*4+2] = 0x00
		program[i*4+3] = 0xee
	}
	program[cpu.StackDepth*4] = 0x00
	program[cpu.StackDepth*4+1] = 0xee

	mc, _, _ := newTestCPU(t, program)

	pushed := make([]uint16, 0, cpu.StackDepth)
	for i := 0; i < cpu.StackDepth; i++ {
		pushed = append(pushed, mc.PC+cpu.OpcodeSize)
		step(t, mc)
	}
	test.Equate(t, len(mc.Stack), cpu.StackDepth)

	// returns pop the pushed addresses in reverse order
	for i := cpu.StackDepth - 1; i >= 0; i-- {
		step(t, mc)
		test.Equate(t, mc.PC, pushed[i])
	}
	test.Equate(t, len(mc.Stack), 0)

	// one further return underflows
	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cpu.StackUnderflow), true)
	}
}

func TestStackOverflow(t *testing.T) {
	// a program that calls itself endlessly. the 25th call is fatal
	mc, _, _ := newTestCPU(t, []byte{
		0x22, 0x00, // CALL $200
	})

	for i := 0; i < cpu.StackDepth; i++ {
		step(t, mc)
	}

	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cpu.StackOverflow), true)
	}
}

func TestSelfJump(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x12, 0x00, // JP $200 - jumps to itself
	})

	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cpu.SelfJump), true)
	}
}

func TestUnknownOpcode(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x80, 0x08, // no such 8XY8 operation
	})

	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cpu.UnknownOpcode), true)
	}
	test.Equate(t, mc.LastResult.Address, memory.OriginProgram)
}

func TestBCD(t *testing.T) {
	mc, _, mem := newTestCPU(t, []byte{
		0xa3, 0x00, // LD I,$300
		0x60, 0x01, // LD V0,$01
		0xf0, 0x33, // LD B,V0
		0x60, 0xc7, // LD V0,$c7
		0xf0, 0x33, // LD B,V0
	})

	step(t, mc)
	step(t, mc)
	step(t, mc)

	// value 1 expands to digits 0,0,1
	for i, expected := range []uint8{0, 0, 1} {
		d, err := mem.Read8(uint16(0x300 + i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, d, expected)
	}

	// value 199 expands to digits 1,9,9
	step(t, mc)
	step(t, mc)
	for i, expected := range []uint8{1, 9, 9} {
		d, err := mem.Read8(uint16(0x300 + i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, d, expected)
	}
}

func TestRegisterBlockRoundTrip(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0xa3, 0x00, // LD I,$300
		0xf7, 0x55, // LD [I],V7
		0xf7, 0x65, // LD V7,[I]
	})

	before := [8]uint8{}
	for i := 0; i < 8; i++ {
		mc.V[i] = uint8(0x11 * (i + 1))
		before[i] = mc.V[i]
	}

	step(t, mc)
	step(t, mc)

	// overwrite the registers then load them back
	for i := 0; i < 8; i++ {
		mc.V[i] = 0
	}
	step(t, mc)

	for i := 0; i < 8; i++ {
		test.Equate(t, mc.V[i], before[i])
	}

	// the address register is unchanged by default
	test.Equate(t, mc.I, 0x300)
}

func TestTransferIncrementQuirk(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0xa3, 0x00, // LD I,$300
		0xf3, 0x55, // LD [I],V3
	})
	mc.IncrementOnTransfer = true

	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.I, 0x304)
}

func TestBlockTransferBounds(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0xaf, 0xfe, // LD I,$ffe
		0xf7, 0x55, // LD [I],V7 - runs off the end of memory
	})

	step(t, mc)
	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Has(err, memory.AddressOutOfRange), true)
	}
}

func TestAddIndexOverflow(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0xaf, 0xff, // LD I,$fff
		0x60, 0x01, // LD V0,$01
		0xf0, 0x1e, // ADD I,V0
	})

	step(t, mc)
	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.I, 0x1000)
	test.Equate(t, mc.V[cpu.Flag], 1)
}

func TestSpriteAddressLookup(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x0a, // LD V0,$0a
		0xf0, 0x29, // LD F,V0
		0x60, 0x10, // LD V0,$10
		0xf0, 0x29, // LD F,V0 - no glyph for $10
	})

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.I, uint16(0x0a*memory.GlyphSize))

	step(t, mc)
	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Has(err, memory.DigitOutOfRange), true)
	}
}

func TestDrawFromFontTable(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x00, // LD V0,$00
		0xf0, 0x29, // LD F,V0 - glyph for digit 0
		0x61, 0x00, // LD V1,$00
		0xd1, 0x15, // DRW V1,V1,$5
		0xd1, 0x15, // DRW V1,V1,$5
	})

	step(t, mc)
	step(t, mc)
	step(t, mc)

	// drawing the zero glyph on a clear display. no collision
	step(t, mc)
	test.Equate(t, mc.V[cpu.Flag], 0)

	// drawing it again erases it. every toggled pixel is a collision
	step(t, mc)
	test.Equate(t, mc.V[cpu.Flag], 1)
}

func TestKeySkips(t *testing.T) {
	mc, kp, _ := newTestCPU(t, []byte{
		0x60, 0x05, // LD V0,$05
		0xe0, 0x9e, // SKP V0   - not pressed, no skip
		0xe0, 0xa1, // SKNP V0  - not pressed, skips
		0x00, 0x00, // skipped
		0xe0, 0x9e, // SKP V0   - pressed this time, skips
		0x00, 0x00, // skipped
		0x61, 0x01, // LD V1,$01
	})

	start := mc.PC

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC, start+4)

	step(t, mc)
	test.Equate(t, mc.PC, start+8)

	kp.Hold(0x05)
	step(t, mc)
	test.Equate(t, mc.PC, start+12)

	step(t, mc)
	test.Equate(t, mc.V[1], 0x01)
}

func TestWaitKey(t *testing.T) {
	mc, kp, _ := newTestCPU(t, []byte{
		0xf2, 0x0a, // LD V2,K
		0xf3, 0x0a, // LD V3,K
	})

	// no key held. the executor reports the suspension in its result
	step(t, mc)
	test.Equate(t, mc.LastResult.AwaitInput, true)
	test.Equate(t, mc.LastResult.AwaitDestination, 0x2)

	// a key held at execution time is latched without suspending
	kp.Hold(0x0b)
	step(t, mc)
	test.Equate(t, mc.LastResult.AwaitInput, false)
	test.Equate(t, mc.V[3], 0x0b)
}

func TestRandomMask(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0xc0, 0x0f, // RND V0,$0f
		0xc1, 0x00, // RND V1,$00
	})

	step(t, mc)
	test.Equate(t, mc.V[0]&0xf0, 0)

	// a zero mask always produces zero
	step(t, mc)
	test.Equate(t, mc.V[1], 0)
}

func TestTimerInstructions(t *testing.T) {
	mc, _, _ := newTestCPU(t, []byte{
		0x60, 0x3c, // LD V0,$3c
		0xf0, 0x15, // LD DT,V0
		0xf1, 0x07, // LD V1,DT
		0xf0, 0x18, // LD ST,V0
	})

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.V[1], 0x3c)

	// the sound timer write succeeds with no audio cue registered
	step(t, mc)
}
