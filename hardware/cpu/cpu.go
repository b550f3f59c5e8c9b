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
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/timers"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/random"
	"github.com/gopher8/gopher8/userinput"
)

const (
	// NumRegisters is the number of general registers.
	NumRegisters = 16

	// Flag is the index of the flag register, VF. It is overwritten as a
	// side effect of the arithmetic, shift and draw instructions and should
	// never be used as an accumulator by the running program.
	Flag = 0x0f

	// StackDepth is the maximum number of nested calls.
	StackDepth = 24

	// OpcodeSize is the width of one instruction word in bytes. The program
	// counter only ever moves in steps of this size.
	OpcodeSize = 2
)

// Error patterns for the cpu package. All of them are fatal to the running
// machine.
const (
	UnknownOpcode  = "cpu: unknown opcode %#04x at %#04x"
	StackOverflow  = "cpu: call stack overflow at %#04x"
	StackUnderflow = "cpu: return with empty call stack at %#04x"
	SelfJump       = "cpu: jump to self at %#04x"
)

// CPU implements the instruction interpreter of the CHIP-8 machine.
type CPU struct {
	// the general registers, V0 to VF
	V [NumRegisters]uint8

	// the address register, I
	I uint16

	// the program counter. always instruction aligned
	PC uint16

	// the call stack. never more than StackDepth entries
	Stack []uint16

	mem    *memory.Memory
	dsp    *video.Display
	tmr    *timers.Timers
	keypad userinput.Port
	rnd    *random.Random

	// whether FX55 and FX65 advance the address register by the size of the
	// transfer. documentation for the original machine is ambiguous on this
	// point so it is a startup choice rather than hardwired behaviour. off
	// by default
	IncrementOnTransfer bool

	// result of the most recent ExecuteInstruction(). the address field is
	// valid even when ExecuteInstruction() has returned an error
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, dsp *video.Display, tmr *timers.Timers, keypad userinput.Port, rnd *random.Random) *CPU {
	mc := &CPU{
		mem:    mem,
		dsp:    dsp,
		tmr:    tmr,
		keypad: keypad,
		rnd:    rnd,
		Stack:  make([]uint16, 0, StackDepth),
	}
	mc.Reset()
	return mc
}

// Reset the registers, stack and program counter. The program counter is
// set to the program origin in memory.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.OriginProgram
	mc.Stack = mc.Stack[:0]
}

func (mc *CPU) push(address uint16) error {
	if len(mc.Stack) >= StackDepth {
		return curated.Errorf(StackOverflow, mc.LastResult.Address)
	}
	mc.Stack = append(mc.Stack, address)
	return nil
}

func (mc *CPU) pop() (uint16, error) {
	if len(mc.Stack) == 0 {
		return 0, curated.Errorf(StackUnderflow, mc.LastResult.Address)
	}
	address := mc.Stack[len(mc.Stack)-1]
	mc.Stack = mc.Stack[:len(mc.Stack)-1]
	return address, nil
}
