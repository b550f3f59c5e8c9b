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
	"github.com/gopher8/gopher8/hardware/cpu/instructions"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/userinput"
)

// ExecuteInstruction fetches, decodes and executes one instruction at the
// current program counter. The outcome is recorded in LastResult.
//
// Any error is unrecoverable and the machine must not be stepped again.
func (mc *CPU) ExecuteInstruction() error {
	value, err := mc.mem.Read16(mc.PC)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}

	op := instructions.Decode(value)

	mc.LastResult = Result{
		Address: mc.PC,
		Opcode:  op,
	}

	// the program counter advances past the instruction before execution.
	// a call therefore pushes the address of the next instruction and the
	// skip instructions advance over one further instruction
	mc.PC += OpcodeSize

	switch op.Op {
	case instructions.Sys:
		// the original machine would run a native program at the operand
		// address. no emulation ever implements this
		logger.Logf("cpu", "syscall %#04x ignored", op.NNN)

	case instructions.Cls:
		mc.dsp.Clear()

	case instructions.Ret:
		address, err := mc.pop()
		if err != nil {
			return err
		}
		mc.PC = address

	case instructions.Jmp:
		if op.NNN == mc.LastResult.Address {
			return curated.Errorf(SelfJump, mc.LastResult.Address)
		}
		mc.PC = op.NNN

	case instructions.Call:
		if err := mc.push(mc.PC); err != nil {
			return err
		}
		mc.PC = op.NNN

	case instructions.SkipEqual:
		if mc.V[op.X] == op.NN {
			mc.PC += OpcodeSize
		}

	case instructions.SkipNotEqual:
		if mc.V[op.X] != op.NN {
			mc.PC += OpcodeSize
		}

	case instructions.SkipEqualReg:
		if mc.V[op.X] == mc.V[op.Y] {
			mc.PC += OpcodeSize
		}

	case instructions.Load:
		mc.V[op.X] = op.NN

	case instructions.Add:
		// no flag change for the immediate form
		mc.V[op.X] += op.NN

	case instructions.LoadReg:
		mc.V[op.X] = mc.V[op.Y]

	case instructions.OrReg:
		mc.V[op.X] |= mc.V[op.Y]

	case instructions.AndReg:
		mc.V[op.X] &= mc.V[op.Y]

	case instructions.XorReg:
		mc.V[op.X] ^= mc.V[op.Y]

	case instructions.AddReg:
		// carry is detected after the 8 bit result has wrapped
		mc.V[op.X] += mc.V[op.Y]
		mc.V[Flag] = flag(mc.V[op.Y] > mc.V[op.X])

	case instructions.SubReg:
		mc.V[Flag] = flag(mc.V[op.X] > mc.V[op.Y])
		mc.V[op.X] -= mc.V[op.Y]

	case instructions.ShiftRight:
		mc.V[Flag] = mc.V[op.X] & 0x01
		mc.V[op.X] >>= 1

	case instructions.SubnReg:
		mc.V[Flag] = flag(mc.V[op.Y] > mc.V[op.X])
		mc.V[op.X] = mc.V[op.Y] - mc.V[op.X]

	case instructions.ShiftLeft:
		mc.V[Flag] = mc.V[op.X] >> 7
		mc.V[op.X] <<= 1

	case instructions.SkipNotEqualReg:
		if mc.V[op.X] != mc.V[op.Y] {
			mc.PC += OpcodeSize
		}

	case instructions.LoadIndex:
		mc.I = op.NNN

	case instructions.JmpRelative:
		mc.PC = uint16(mc.V[0]) + op.NNN

	case instructions.Random:
		mc.V[op.X] = uint8(mc.rnd.Intn(255)) & op.NN

	case instructions.Draw:
		sprite := make([]uint8, op.N)
		for i := uint16(0); i < uint16(op.N); i++ {
			d, err := mc.mem.Read8(mc.I + i)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			sprite[i] = d
		}
		mc.V[Flag] = flag(mc.dsp.DrawSprite(mc.V[op.X], mc.V[op.Y], sprite))

	case instructions.SkipPressed:
		if mc.keypad.IsAsserted(mc.V[op.X]) {
			mc.PC += OpcodeSize
		}

	case instructions.SkipNotPressed:
		if !mc.keypad.IsAsserted(mc.V[op.X]) {
			mc.PC += OpcodeSize
		}

	case instructions.LoadFromDelay:
		mc.V[op.X] = mc.tmr.Delay()

	case instructions.WaitKey:
		// if an input line is already asserted then latch it immediately.
		// otherwise the machine suspends: the scheduler keeps ticking (and
		// the timers keep counting) but no instruction executes until a
		// line is asserted
		if line, ok := userinput.FirstAsserted(mc.keypad); ok {
			mc.V[op.X] = line
		} else {
			mc.LastResult.AwaitInput = true
			mc.LastResult.AwaitDestination = op.X
		}

	case instructions.LoadDelay:
		mc.tmr.SetDelay(mc.V[op.X])

	case instructions.LoadSound:
		if err := mc.tmr.SetSound(mc.V[op.X]); err != nil {
			return curated.Errorf("cpu: %v", err)
		}

	case instructions.AddIndex:
		mc.V[Flag] = flag(mc.I+uint16(mc.V[op.X]) > 0x0fff)
		mc.I += uint16(mc.V[op.X])

	case instructions.LoadSprite:
		address, err := mc.mem.SpriteAddress(mc.V[op.X])
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.I = address

	case instructions.BCD:
		v := mc.V[op.X]
		digits := [3]uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range digits {
			if err := mc.mem.Write8(mc.I+uint16(i), d); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}

	case instructions.StoreRegs:
		for i := uint16(0); i <= uint16(op.X); i++ {
			if err := mc.mem.Write8(mc.I+i, mc.V[i]); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}
		if mc.IncrementOnTransfer {
			mc.I += uint16(op.X) + 1
		}

	case instructions.LoadRegs:
		for i := uint16(0); i <= uint16(op.X); i++ {
			d, err := mc.mem.Read8(mc.I + i)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			mc.V[i] = d
		}
		if mc.IncrementOnTransfer {
			mc.I += uint16(op.X) + 1
		}

	case instructions.Unknown:
		return curated.Errorf(UnknownOpcode, op.Value, mc.LastResult.Address)
	}

	return nil
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
