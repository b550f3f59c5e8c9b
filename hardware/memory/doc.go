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

// Package memory implements the flat 4096 byte memory map of the CHIP-8
// machine. The font table for the sixteen hexadecimal digits is placed at
// the bottom of memory on creation and reset. Program data is copied in at
// the fixed program origin.
//
// Memory accesses are bounds checked. An out of range access is an
// unrecoverable error in the running program and the returned error should
// be treated as fatal by the caller.
package memory
