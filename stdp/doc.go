// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp implements an event-driven spike-timing dependent plasticity
(STDP) synapse with separately settable weight-dependence exponents for
potentiation and depression, following the NEST stdp_synapse model.

Each Conn is one directed synapse between a pre-synaptic and a post-synaptic
unit.  The synapse is updated once per delivered pre-synaptic spike: every
post-synaptic spike since the previous pre-synaptic spike drives one
facilitation step, weighted by the exponentially decaying pre-synaptic trace
Kplus, and the pre-synaptic spike itself drives exactly one depression step,
scaled by the post-synaptic unit's decayed spike count.  The weight is kept
in [0, Wmax] by construction of the update kernels.

The weight-dependence exponents select the rule family:

	multiplicative STDP  MuPlus = MuMinus = 1
	additive STDP        MuPlus = MuMinus = 0
	Guetig STDP          MuPlus = MuMinus in [0, 1]
	van Rossum STDP      MuPlus = 0, MuMinus = 1

The post-synaptic unit is consulted only through the PostNode capability
interface: a bounded spike-history query, a decayed spike count at a single
time, registration at connection-validation time, and event delivery.  The
host simulator owns spike generation, routing, and delivery order; it must
deliver each connection's pre-synaptic spikes from a single goroutine in
non-decreasing time order.

References:

	Guetig et al. (2003) Learning Input Correlations through Nonlinear
	Temporally Asymmetric Hebbian Plasticity. Journal of Neuroscience

	Rubin, J., Lee, D. and Sompolinsky, H. (2001). Equilibrium
	properties of temporally asymmetric Hebbian plasticity, PRL 86, 364-367

	Song, S., Miller, K. D. and Abbott, L. F. (2000). Competitive Hebbian
	learning through spike-timing-dependent synaptic plasticity,
	Nature Neuroscience 3:9, 919-926

	van Rossum, M. C. W., Bi, G-Q and Turrigiano, G. G. (2000). Stable
	Hebbian learning from spike timing-dependent plasticity,
	Journal of Neuroscience, 20:23, 8812-8821
*/
package stdp
