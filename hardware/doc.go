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

// Package hardware assembles the components of the CHIP-8 machine into a
// single emulated unit and provides the main emulation loop.
//
// The emulation is single threaded and cooperative. One call to Step() is
// one tick of the machine: the timers are given the chance to decrement,
// at most one instruction executes and any changed frame is pushed to the
// registered renderers. The Run() function drives Step() at the requested
// instruction rate.
//
// The machine is always in one of the states enumerated by the State type.
// In particular the blocking keypress instruction does not block anything:
// it moves the machine into the AwaitingInput state, in which the timers
// keep counting and the loop keeps ticking but no instruction executes
// until an input line is asserted.
package hardware
