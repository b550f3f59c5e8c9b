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

package main

import (
	"fmt"
	"os"

	"github.com/gopher8/gopher8/disassembly"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/modalflag"
	"github.com/gopher8/gopher8/performance"
	"github.com/gopher8/gopher8/playmode"
	"github.com/gopher8/gopher8/statsview"
	"github.com/gopher8/gopher8/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAY", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// machinePrefs gathers the flags common to every mode that creates a
// machine.
func machinePrefs(md *modalflag.Modes) (*float64, *string, *bool, *bool) {
	ips := md.AddFloat64("ips", float64(hardware.DefIPS), "instructions per second")
	policy := md.AddString("display", "CLAMP", "sprite coordinate policy: CLAMP, WRAP")
	increment := md.AddBool("increment", false, "block transfers advance the address register")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	return ips, policy, increment, log
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	ips, policy, increment, log := machinePrefs(md)
	scale := md.AddFloat64("scale", 0.0, "window scale")
	fullscreen := md.AddBool("fullscreen", false, "fullscreen window")
	wav := md.AddString("wav", "", "record audio to wav file")
	haltDump := md.AddBool("dump", false, "write memory dump and component graph on emulation error")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *ips <= 0 {
		return fmt.Errorf("ips value must be positive")
	}

	pol, err := video.ParsePolicy(*policy)
	if err != nil {
		return err
	}

	prefs := hardware.Preferences{
		IPS:                 float32(*ips),
		Policy:              pol,
		IncrementOnTransfer: *increment,
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		return playmode.Play(os.Stdout, md.GetArg(0), prefs, float32(*scale), *fullscreen, *wav, *haltDump)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromProgram(data)
		if err != nil {
			return err
		}

		return dsm.Write(os.Stdout)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	ips, policy, increment, log := machinePrefs(md)
	profile := md.AddBool("profile", false, "perform cpu and mem profiling")
	duration := md.AddString("duration", "5s", "run duration")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	if *ips <= 0 {
		return fmt.Errorf("ips value must be positive")
	}

	pol, err := video.ParsePolicy(*policy)
	if err != nil {
		return err
	}

	prefs := hardware.Preferences{
		IPS:                 float32(*ips),
		Policy:              pol,
		IncrementOnTransfer: *increment,
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		return performance.Check(os.Stdout, *profile, md.GetArg(0), prefs, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
