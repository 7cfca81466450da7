// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import (
	"fmt"
	"reflect"
)

// Synapse holds the mutable state of one STDP synapse
type Synapse struct {
	Wt    float64 `desc:"synaptic weight value (efficacy) -- invariant 0 <= Wt <= Wmax, maintained by the update kernels"`
	Kplus float64 `desc:"pre-synaptic eligibility trace -- exponentially decaying accumulation of pre-synaptic spikes, decayed and incremented by 1 on each pre-synaptic spike"`
}

// Init restores the constructed state: unit weight, empty trace.
func (sy *Synapse) Init() {
	sy.Wt = 1
	sy.Kplus = 0
}

var SynapseVars = []string{"Wt", "Kplus"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float64 {
	v := reflect.ValueOf(*sy)
	return v.Field(idx).Interface().(float64)
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float64, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}

func (sy *Synapse) SetVarByIndex(idx int, val float64) {
	v := reflect.ValueOf(sy)
	v.Elem().Field(idx).SetFloat(val)
}

// SetVarByName sets synapse variable to given value
func (sy *Synapse) SetVarByName(varNm string, val float64) error {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return err
	}
	sy.SetVarByIndex(i, val)
	return nil
}
