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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and carry the
// formatting pattern they were created with. The pattern can be tested for
// with the Is() and Has() functions, which is how the emulation
// distinguishes, for example, a call stack overflow from an unknown opcode
// without comparing formatted message strings.
//
// The Error() function for curated errors normalises the error chain so that
// duplicate adjacent parts are removed. This alleviates the problem of when
// and how to wrap errors as they percolate up through the interpreter.
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, close to the code that creates them.
package curated
