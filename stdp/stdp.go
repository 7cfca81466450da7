// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import (
	"fmt"
	"math"
)

// Params are the STDP weight-update rule parameters for one synapse.
// All state and parameters are float64: times are in ms and the rule must
// reproduce the reference double-precision dynamics exactly.
type Params struct {
	TauPlus float64 `def:"20" min:"0" desc:"time constant of the STDP potentiation window and of the pre-synaptic trace Kplus, in ms -- the depression window time constant tau_minus lives in the post-synaptic unit"`
	Lambda  float64 `def:"0.01" desc:"step size for potentiation, as a fraction of Wmax"`
	Alpha   float64 `def:"1" desc:"asymmetry parameter -- scales depressing increments as Alpha*Lambda"`
	MuPlus  float64 `def:"1" min:"0" max:"1" desc:"weight dependence exponent for potentiation: 0 = additive, 1 = multiplicative, in between = Guetig interpolation"`
	MuMinus float64 `def:"1" min:"0" max:"1" desc:"weight dependence exponent for depression"`
	Wmax    float64 `def:"100" min:"0" desc:"maximum allowed weight"`

	InvTau float64 `view:"-" json:"-" xml:"-" inactive:"+" desc:"1 / TauPlus"`
}

func (sp *Params) Defaults() {
	sp.TauPlus = 20
	sp.Lambda = 0.01
	sp.Alpha = 1
	sp.MuPlus = 1
	sp.MuMinus = 1
	sp.Wmax = 100
	sp.Update()
}

// Update must be called after any changes to parameters
func (sp *Params) Update() {
	if sp.TauPlus != 0 {
		sp.InvTau = 1 / sp.TauPlus
	}
}

// Validate returns a ConfigurationError for parameter values that make the
// rule degenerate.  Called at connection-validation time, before first use:
// bulk parameter setting itself rejects nothing, as in the reference model.
func (sp *Params) Validate() error {
	if sp.TauPlus <= 0 {
		return fmt.Errorf("%w: tau_plus = %g, must be > 0", ErrConfig, sp.TauPlus)
	}
	if sp.Wmax <= 0 {
		return fmt.Errorf("%w: Wmax = %g, must be > 0", ErrConfig, sp.Wmax)
	}
	return nil
}

// Facilitate returns the weight after one potentiation step with facilitation
// factor kplus (the decayed pre-synaptic trace).  The update is computed on
// the normalized weight w/Wmax and clamped at 1, so the result never exceeds
// Wmax.  kplus = 0 leaves the weight unchanged.
func (sp *Params) Facilitate(w, kplus float64) float64 {
	norm := (w / sp.Wmax) + sp.Lambda*math.Pow(1-(w/sp.Wmax), sp.MuPlus)*kplus
	if norm < 1 {
		return norm * sp.Wmax
	}
	return sp.Wmax
}

// Depress returns the weight after one depression step with depression factor
// kminus (the post-synaptic decayed spike count).  Symmetric to Facilitate
// but driving the weight toward the floor at 0, where it is clamped.  The
// clamp is load-bearing only for MuMinus = 0 (pure additive depression); for
// MuMinus > 0 the (w/Wmax)^MuMinus term vanishes at w = 0 on its own.
func (sp *Params) Depress(w, kminus float64) float64 {
	norm := (w / sp.Wmax) - sp.Alpha*sp.Lambda*math.Pow(w/sp.Wmax, sp.MuMinus)*kminus
	if norm > 0 {
		return norm * sp.Wmax
	}
	return 0
}

// Decay returns trace value k decayed over dt ms (dt <= 0 decays, matching
// the t_last - t convention used throughout: exp(dt/TauPlus)).
func (sp *Params) Decay(k, dt float64) float64 {
	return k * math.Exp(dt*sp.InvTau)
}
