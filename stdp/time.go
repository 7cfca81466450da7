// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import (
	"math"

	"github.com/emer/emergent/v2/etime"
)

// Time contains the simulation clock and grid-resolution information shared
// by connections: spike times are in ms, but transmission delays on events
// are expressed in integral simulation steps of Resolution ms each.
type Time struct {

	// accumulated amount of time the simulation has been running,
	// in simulation-time (not real world time), in ms.
	Time float64

	// total step count, incremented continuously from whenever it was
	// last reset.
	Step int

	// duration of one simulation step in ms.
	Resolution float64 `def:"0.1"`

	// current evaluation mode, e.g., Train, Test, etc
	Mode etime.Modes
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Resolution = 0.1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.Resolution == 0 {
		tm.Defaults()
	}
}

// StepInc increments the clock by one step
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time += tm.Resolution
}

// Steps returns the number of whole simulation steps for a duration in ms,
// rounding to nearest.
func (tm *Time) Steps(ms float64) int {
	return int(math.Round(ms / tm.Resolution))
}

// Ms returns the duration in ms of the given number of simulation steps.
func (tm *Time) Ms(steps int) float64 {
	return float64(steps) * tm.Resolution
}
