// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nest is the overall repository for event-driven spiking synapse
models implemented in the Go language (golang), following the NEST simulator
model definitions.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* stdp: the spike-timing dependent plasticity synapse (NEST stdp_synapse):
per-synapse weight updates driven by the relative timing of pre- and
post-synaptic spikes, with separately settable weight-dependence exponents
for potentiation and depression, layered over a capability interface to the
post-synaptic unit's spike-history archive.

* examples: these compile into runnable programs. examples/stdpwin sweeps
the STDP window (weight change vs. spike-time difference) into a table for
plotting and parameter exploration.
*/
package nest
