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

// Package instructions decodes 16 bit instruction words into a structured
// Opcode value. Decoding is a pure and total function: every possible
// instruction word decodes to some Opcode, with unrecognised words decoding
// to the Unknown operation. Rejection of unknown operations is the
// responsibility of the CPU, not the decoder.
//
// The operand fields (NNN, NN, N, X and Y) are extracted for every word,
// whether or not the operation makes use of them.
package instructions
