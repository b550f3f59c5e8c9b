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

// Package cpu implements the fetch-decode-execute cycle of the CHIP-8
// interpreter: sixteen 8 bit registers, the 16 bit address register, the
// bounded call stack and the program counter, together with one execution
// handler for every operation the decoder can produce.
//
// Errors returned by ExecuteInstruction() are unrecoverable. Once an
// instruction's preconditions are violated - a full call stack, an out of
// range memory access, an opcode the machine does not understand - the
// machine cannot safely continue and the caller is expected to halt the
// emulation.
//
// Note the flag conventions of the arithmetic instructions, which follow
// the original machine rather than any tidied-up description of it: the
// carry test for ADD is made after the 8 bit result has wrapped, and the
// borrow tests for SUB and SUBN are strict greater-than comparisons.
package cpu
