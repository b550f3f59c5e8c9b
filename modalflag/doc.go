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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides the ability of specifying "modes" in addition to
// flags. A mode is a special command line argument that introduces a new
// layer of flags and even further sub-modes.
//
// The idiomatic pattern is to declare the available sub-modes and flags for
// the current layer, call Parse() and then switch on Mode():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 0, "window scale")
//		p, err := md.Parse()
//		...
//	}
//
// The first listed sub-mode is the default and is selected when the first
// trailing argument does not name any sub-mode. Sub-mode comparison is case
// insensitive.
package modalflag
