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

// Package performance measures the emulation performance of the host: a
// program is run flat out, with no instruction rate limiting and no
// display, for a fixed period of wall-clock time. The resulting instruction
// rate is an upper bound on what the host can sustain.
//
// Profiling of the emulation with the runtime pprof tools is also handled
// by this package.
package performance

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/digest"
	"github.com/gopher8/gopher8/hardware"
)

// Error pattern for the performance package.
const PerformanceError = "performance: %v"

// Check runs the program for the specified period of time and reports the
// measured instruction rate to output.
func Check(output io.Writer, profile bool, program string, prefs hardware.Preferences, runTime string) error {
	data, err := os.ReadFile(program)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	ch8 := hardware.NewChip8(prefs)
	ch8.SetLimiter(false)

	// a digest renderer stands in for a display. frames are produced and
	// consumed as they would be in play mode, so the measurement includes
	// the cost of rendering
	ch8.AddRenderer(digest.NewVideo())

	if err := ch8.AttachProgram(data); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	// setup trigger that expires when duration has elapsed
	timesUp := make(chan bool, 1)
	time.AfterFunc(duration, func() {
		timesUp <- true
	})

	instructions := 0
	performanceFilter := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		return ch8.Run(func() (hardware.State, error) {
			instructions++

			performanceFilter++
			if performanceFilter >= hardware.PerformanceBrake {
				performanceFilter = 0
				select {
				case <-timesUp:
					return hardware.Ending, nil
				default:
				}
			}
			return hardware.Running, nil
		})
	})
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	ips := float64(instructions) / duration.Seconds()
	fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %.2f seconds)\n",
		ips, instructions, duration.Seconds())

	return memProfile(profile, "mem.profile")
}
