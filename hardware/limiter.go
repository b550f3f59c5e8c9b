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

package hardware

import (
	"sync/atomic"
	"time"
)

type limiter struct {
	// whether to wait on the pulse before every instruction
	active bool

	// the requested number of instructions per second
	requested atomic.Value // float32

	// the measured number of instructions per second
	actual atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when the instruction rate changes
	pulse *time.Ticker

	// measurement
	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

func (lmtr *limiter) init(ips float32) {
	lmtr.active = true
	lmtr.requested.Store(float32(0))
	lmtr.actual.Store(float32(0))
	lmtr.pulse = time.NewTicker(time.Millisecond * 10)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.measureTime = time.Now()
	lmtr.setRate(ips)
}

func (lmtr *limiter) setRate(ips float32) {
	if ips <= 0 {
		ips = DefIPS
	}
	lmtr.requested.Store(ips)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / ips))
}

// checkInstruction waits for the next pulse when limiting is active. Called
// once before every instruction.
func (lmtr *limiter) checkInstruction() {
	if lmtr.active {
		<-lmtr.pulse.C
	}

	lmtr.measureCt++

	// measure the actual instruction rate on a coarser pulse
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureCt = 0
		lmtr.measureTime = t
	default:
	}
}

func (lmtr *limiter) measured() float32 {
	return lmtr.actual.Load().(float32)
}
