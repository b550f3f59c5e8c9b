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

package playmode

import (
	"fmt"
	"os"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/logger"
)

// the memory dump and component graph are written to files named after the
// program that caused the halt.
func writeHaltDumps(ch8 *hardware.Chip8, program string) error {
	mem := fmt.Sprintf("%s_halt.mem", program)
	f, err := os.Create(mem)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	ch8.DumpMemory(f)
	if err := f.Close(); err != nil {
		return curated.Errorf(PlayError, err)
	}
	logger.Logf("playmode", "memory dump written to %s", mem)

	ops := fmt.Sprintf("%s_halt.ops", program)
	f, err = os.Create(ops)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	ch8.DumpOpcodes(f)
	if err := f.Close(); err != nil {
		return curated.Errorf(PlayError, err)
	}
	logger.Logf("playmode", "opcode dump written to %s", ops)

	dot := fmt.Sprintf("%s_halt.dot", program)
	f, err = os.Create(dot)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	ch8.DumpGraph(f)
	if err := f.Close(); err != nil {
		return curated.Errorf(PlayError, err)
	}
	logger.Logf("playmode", "component graph written to %s", dot)

	return nil
}
