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

// Package playmode is the normal mode of operation: a program running in a
// window, with the keyboard mapped to the keypad. Emulation errors are
// unrecoverable; when one occurs the machine state is dumped for
// diagnosis and the program exits.
package playmode

import (
	"io"
	"os"
	"os/signal"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/gui/sdlplay"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/wavwriter"
)

// Error pattern for the playmode package.
const PlayError = "playmode: %v"

// Play sets the emulation running.
func Play(output io.Writer, program string, prefs hardware.Preferences, scale float32, fullscreen bool, wavFile string, haltDump bool) error {
	data, err := os.ReadFile(program)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	scr, err := sdlplay.NewSdlPlay(scale, fullscreen)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	ch8 := hardware.NewChip8(prefs)
	ch8.AddRenderer(scr)
	ch8.AddAudioCue(scr)
	scr.AttachKeypad(ch8.Keypad)

	// add wavwriter cue if the wav argument has been specified
	if wavFile != "" {
		aw, err := wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		ch8.AddAudioCue(aw)
	}

	defer func() {
		_ = ch8.End()
	}()

	if err := ch8.AttachProgram(data); err != nil {
		return curated.Errorf(PlayError, err)
	}

	// redirect interrupt signal so that ctrl-c ends the emulation loop
	// rather than the process
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = ch8.Run(func() (hardware.State, error) {
		scr.Service()
		if scr.ShouldQuit() {
			return hardware.Ending, nil
		}

		select {
		case <-intChan:
			return hardware.Ending, nil
		default:
		}

		return hardware.Running, nil
	})

	if err != nil {
		// the machine cannot continue. write diagnostics before
		// returning the error
		ch8.DumpRegisters(output)
		if haltDump {
			if err := writeHaltDumps(ch8, program); err != nil {
				return err
			}
		}
		return curated.Errorf(PlayError, err)
	}

	return nil
}
