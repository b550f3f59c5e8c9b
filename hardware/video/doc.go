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

// Package video implements the 64x32 monochrome display buffer of the
// machine. Pixels are only ever changed by XOR during a sprite draw, or
// zeroed wholesale by the screen clear instruction.
//
// Sprite coordinates are subject to a Policy. The documentation for the
// original machine is inconsistent on what happens at the display edges and
// real programs disagree: some require clamping to work (VBRIX) while
// others look better with wrap-around (PONG). The policy is therefore a
// startup choice and not hardwired.
package video
