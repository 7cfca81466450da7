// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import (
	"errors"
	"math"
	"testing"
)

// difTol is the relative difference tolerance for comparing vs. target values
const difTol = 1.0e-9

func relDif(a, b float64) float64 {
	d := math.Abs(a - b)
	if m := math.Max(math.Abs(a), math.Abs(b)); m > 0 {
		return d / m
	}
	return d
}

var tstW = []float64{0, 0.001, 0.5, 1, 10, 50, 99, 99.999, 100}
var tstK = []float64{0, 0.01, 0.5, 1, 2.5, 10, 1000}

func TestFacilitateBounds(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	for _, w := range tstW {
		for _, k := range tstK {
			nw := sp.Facilitate(w, k)
			if nw < w {
				t.Errorf("Facilitate(%v, %v) = %v decreased weight", w, k, nw)
			}
			if nw > sp.Wmax {
				t.Errorf("Facilitate(%v, %v) = %v exceeds Wmax = %v", w, k, nw, sp.Wmax)
			}
			if k == 0 && relDif(nw, w) > difTol {
				t.Errorf("Facilitate(%v, 0) = %v changed weight", w, nw)
			}
		}
	}
}

func TestDepressBounds(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	for _, w := range tstW {
		for _, k := range tstK {
			nw := sp.Depress(w, k)
			if nw > w {
				t.Errorf("Depress(%v, %v) = %v increased weight", w, k, nw)
			}
			if nw < 0 {
				t.Errorf("Depress(%v, %v) = %v below zero", w, k, nw)
			}
			if k == 0 && relDif(nw, w) > difTol {
				t.Errorf("Depress(%v, 0) = %v changed weight", w, nw)
			}
		}
	}
}

// With MuPlus = MuMinus = 0 the rule is additive: fixed increments and
// decrements independent of the current weight, away from the clamps.
func TestAdditiveRule(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	sp.MuPlus = 0
	sp.MuMinus = 0
	sp.Update()
	k := 1.5
	finc := sp.Lambda * k * sp.Wmax
	dinc := sp.Alpha * sp.Lambda * k * sp.Wmax
	for _, w := range []float64{10, 25, 50, 90} {
		if dif := relDif(sp.Facilitate(w, k)-w, finc); dif > difTol {
			t.Errorf("additive facilitate at w=%v: increment %v != %v (dif %v)", w, sp.Facilitate(w, k)-w, finc, dif)
		}
		if dif := relDif(w-sp.Depress(w, k), dinc); dif > difTol {
			t.Errorf("additive depress at w=%v: decrement %v != %v (dif %v)", w, w-sp.Depress(w, k), dinc, dif)
		}
	}
	// pure additive depression at the floor: the max(..., 0) clamp is load-bearing
	if nw := sp.Depress(0, k); nw != 0 {
		t.Errorf("additive depress at w=0 must clamp exactly to 0, got %v", nw)
	}
}

// With MuPlus = MuMinus = 1 the rule is multiplicative: steps scale linearly
// with the distance from the respective bound.
func TestMultiplicativeRule(t *testing.T) {
	sp := Params{}
	sp.Defaults() // MuPlus = MuMinus = 1
	k := 2.0
	for _, w := range []float64{0, 10, 50, 90, 100} {
		finc := sp.Lambda * k * (sp.Wmax - w)
		dinc := sp.Alpha * sp.Lambda * k * w
		if dif := relDif(sp.Facilitate(w, k)-w, finc); dif > difTol {
			t.Errorf("multiplicative facilitate at w=%v: increment %v != %v", w, sp.Facilitate(w, k)-w, finc)
		}
		if dif := relDif(w-sp.Depress(w, k), dinc); dif > difTol {
			t.Errorf("multiplicative depress at w=%v: decrement %v != %v", w, w-sp.Depress(w, k), dinc)
		}
	}
	// self-limiting at zero: (0)^MuMinus = 0 for MuMinus > 0
	if nw := sp.Depress(0, k); nw != 0 {
		t.Errorf("multiplicative depress at w=0: got %v", nw)
	}
}

func TestDecay(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	if dif := relDif(sp.Decay(1, -sp.TauPlus), 1/math.E); dif > difTol {
		t.Errorf("Decay over one tau: %v != 1/e (dif %v)", sp.Decay(1, -sp.TauPlus), dif)
	}
	if v := sp.Decay(3.25, 0); v != 3.25 {
		t.Errorf("Decay over zero time changed value: %v", v)
	}
}

func TestValidate(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	if err := sp.Validate(); err != nil {
		t.Errorf("default params must validate: %v", err)
	}
	sp.TauPlus = 0
	if err := sp.Validate(); !errors.Is(err, ErrConfig) {
		t.Errorf("tau_plus = 0 must yield ErrConfig, got: %v", err)
	}
	sp.Defaults()
	sp.Wmax = -1
	if err := sp.Validate(); !errors.Is(err, ErrConfig) {
		t.Errorf("Wmax = -1 must yield ErrConfig, got: %v", err)
	}
}

func TestSynapseVars(t *testing.T) {
	sy := Synapse{}
	sy.Init()
	if sy.Wt != 1 || sy.Kplus != 0 {
		t.Errorf("Init state wrong: %+v", sy)
	}
	if err := sy.SetVarByName("Kplus", 2.5); err != nil {
		t.Error(err)
	}
	v, err := sy.VarByName("Kplus")
	if err != nil {
		t.Error(err)
	}
	if v != 2.5 {
		t.Errorf("Kplus = %v != 2.5", v)
	}
	if _, err := sy.VarByName("NoSuchVar"); err == nil {
		t.Errorf("invalid var name must error")
	}
}
