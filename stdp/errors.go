// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import "errors"

// The synapse core has no recoverable-error taxonomy of its own: it performs
// no I/O and the update computation is pure.  The two sentinel errors below
// cover the only failure classes, and both indicate caller-side problems.
var (
	// ErrConfig marks a degenerate parameterization (tau_plus <= 0 or
	// Wmax <= 0), surfaced eagerly at connection-validation time.
	ErrConfig = errors.New("stdp: degenerate configuration")

	// ErrSequencing marks a pre-synaptic spike delivered out of order
	// (t_spike <= t_lastspike).  This means the host's delivery-order
	// guarantee was broken -- fatal, not retriable.
	ErrSequencing = errors.New("stdp: pre-synaptic spike out of order")
)
