// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import "testing"

func TestTimeSteps(t *testing.T) {
	tm := NewTime()
	if tm.Resolution != 0.1 {
		t.Errorf("default resolution = %v", tm.Resolution)
	}
	if n := tm.Steps(1); n != 10 {
		t.Errorf("Steps(1) = %v, want 10", n)
	}
	if n := tm.Steps(1.5); n != 15 {
		t.Errorf("Steps(1.5) = %v, want 15", n)
	}
	if n := tm.Steps(0.13); n != 1 { // rounds to nearest step
		t.Errorf("Steps(0.13) = %v, want 1", n)
	}
	if ms := tm.Ms(15); relDif(ms, 1.5) > difTol {
		t.Errorf("Ms(15) = %v, want 1.5", ms)
	}
}

func TestTimeClock(t *testing.T) {
	tm := NewTime()
	for i := 0; i < 25; i++ {
		tm.StepInc()
	}
	if tm.Step != 25 {
		t.Errorf("Step = %v, want 25", tm.Step)
	}
	if relDif(tm.Time, 2.5) > difTol {
		t.Errorf("Time = %v, want 2.5", tm.Time)
	}
	tm.Reset()
	if tm.Step != 0 || tm.Time != 0 || tm.Resolution != 0.1 {
		t.Errorf("Reset state wrong: %+v", tm)
	}
}
