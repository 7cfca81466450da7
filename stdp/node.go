// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

// SpikeEvent is the downstream event dispatched to the target unit after a
// synapse update, carrying the freshly updated weight.  Delay is expressed in
// simulation steps (see Time) because that is what the host's event queues
// index by.
type SpikeEvent struct {
	Weight     float64 `desc:"synaptic weight after this update"`
	DelaySteps int     `desc:"total transmission delay in simulation steps"`
	RPort      int32   `desc:"receptor port on the target unit"`
}

// PostNode is the capability set a post-synaptic unit must provide to an
// incoming STDP synapse.  The synapse depends only on this interface, never
// on a concrete unit type.
//
// The history archive behind History and KValue is owned by the post-synaptic
// unit; its concurrency discipline (single writer per unit) is the host
// simulator's contract.
type PostNode interface {
	// History returns the unit's spike times t with t1 < t <= t2, in
	// strictly increasing order with no duplicates.  Every call marks the
	// returned entries as consulted for reference-counted pruning, so a
	// synapse must query each qualifying interval exactly once per
	// pre-synaptic spike -- never twice, never not at all.
	History(t1, t2 float64) []float64

	// KValue returns the unit's exponentially decayed spike count at time t
	// (decaying with the unit's own tau_minus), used as the depression factor.
	KValue(t float64) float64

	// RegisterSTDPConn primes the archive at connection-validation time:
	// entries at or before tFirst are marked consulted, so spikes that
	// predate the synapse are never credited.
	RegisterSTDPConn(tFirst float64)

	// Handle delivers a spike event to this unit.
	Handle(ev *SpikeEvent)
}

// TargetResolver maps a connection's compact target index to the PostNode it
// addresses.  It decouples target storage (index vs. pointer table, per-host
// layout) from the update algorithm: a Conn holds only an opaque int32.
type TargetResolver interface {
	// Node returns the post-synaptic unit for the given target index.
	Node(idx int32) PostNode
}

// NodeList is the direct pointer-table resolver: index into a slice of units.
type NodeList []PostNode

func (nl NodeList) Node(idx int32) PostNode { return nl[idx] }
