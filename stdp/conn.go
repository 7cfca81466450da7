// Copyright (c) 2024, The NEST-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

import (
	"fmt"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/params"
)

// Conn is one directed synaptic connection from a pre-synaptic to a
// post-synaptic unit, holding the generic connection bookkeeping (delay,
// receptor port, target address) together with the STDP parameters and the
// synapse state.  A Conn is owned by exactly one connection record in the
// host simulator and is updated only by the goroutine delivering that
// record's pre-synaptic spikes -- it does no locking of its own.
type Conn struct {

	// inactivate this connection -- allows for easy experimentation
	Off bool

	// Class is for applying parameter styles, can be space separated multple tags
	Cls string

	// can record notes about this connection here
	Notes string

	// name of this connection, typically Send-unit To Recv-unit
	Nm string

	// dendritic delay between pre-synaptic spike emission and its effect at
	// the post-synaptic site, in ms -- shifts the history query window
	Delay float64 `def:"1" min:"0"`

	// receptor port on the target unit that spike events are delivered to
	RPort int32

	// opaque target address, resolved to a PostNode via a TargetResolver
	TargetIndex int32

	// STDP weight-update rule parameters
	STDP Params `view:"inline"`

	// current synapse state: weight and pre-synaptic trace
	Syn Synapse
}

func (cn *Conn) Defaults() {
	cn.Delay = 1
	cn.STDP.Defaults()
	cn.Syn.Init()
}

// UpdateParams updates all params given any changes that might have been made
func (cn *Conn) UpdateParams() {
	cn.STDP.Update()
}

func (cn *Conn) TypeName() string { return "Conn" } // always, for params..
func (cn *Conn) Class() string    { return "STDP " + cn.Cls }
func (cn *Conn) Name() string     { return cn.Nm }
func (cn *Conn) Label() string    { return cn.Nm }

func (cn *Conn) IsOff() bool     { return cn.Off }
func (cn *Conn) SetOff(off bool) { cn.Off = off }

// Target resolves this connection's target unit through the given resolver.
func (cn *Conn) Target(tr TargetResolver) PostNode {
	return tr.Node(cn.TargetIndex)
}

// SetWeight is the administrative weight override: it writes the weight
// directly, bypassing the plasticity and trace logic entirely.
func (cn *Conn) SetWeight(w float64) {
	cn.Syn.Wt = w
}

// Validate checks the connection at connection-validation time and registers
// it with the post-synaptic unit's history archive, seeded with
// tLastSpike - Delay so that history entries from before the synapse existed
// are already marked consulted and excluded from future queries.
// Must be called exactly once, before the first Send.
func (cn *Conn) Validate(post PostNode, tLastSpike float64) error {
	if err := cn.STDP.Validate(); err != nil {
		return err
	}
	post.RegisterSTDPConn(tLastSpike - cn.Delay)
	return nil
}

// Send processes one pre-synaptic spike at tSpike, given the previous
// pre-synaptic spike time tLastSpike (0 for a new synapse): it applies one
// facilitation step per qualifying post-synaptic spike since the last
// pre-synaptic one, exactly one depression step for this spike, updates the
// pre-synaptic trace, and dispatches the spike event to post with the
// updated weight.  Spike times for a given Conn must be strictly increasing.
func (cn *Conn) Send(tSpike, tLastSpike float64, tm *Time, post PostNode) error {
	if tSpike <= tLastSpike {
		return fmt.Errorf("%w: t_spike = %g <= t_lastspike = %g", ErrSequencing, tSpike, tLastSpike)
	}

	// history in (t_lastspike - delay, t_spike - delay] -- must be queried
	// exactly once even when empty, to keep archive access counts correct.
	// Entries up to t_lastspike - delay were already counted, at registration
	// or by the previous Send.
	hist := post.History(tLastSpike-cn.Delay, tSpike-cn.Delay)

	// facilitation due to post-synaptic spikes since last pre-synaptic spike
	for _, tPost := range hist {
		minusDt := tLastSpike - (tPost + cn.Delay)
		if minusDt == 0 {
			// boundary entry, already credited -- see RegisterSTDPConn
			continue
		}
		cn.Syn.Wt = cn.STDP.Facilitate(cn.Syn.Wt, cn.STDP.Decay(cn.Syn.Kplus, minusDt))
	}

	// depression due to the new pre-synaptic spike
	cn.Syn.Wt = cn.STDP.Depress(cn.Syn.Wt, post.KValue(tSpike-cn.Delay))

	post.Handle(&SpikeEvent{
		Weight:     cn.Syn.Wt,
		DelaySteps: tm.Steps(cn.Delay),
		RPort:      cn.RPort,
	})

	cn.Syn.Kplus = cn.STDP.Decay(cn.Syn.Kplus, tLastSpike-tSpike) + 1
	return nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  Params

// SetStatus bulk-sets parameters from named values, using the reference
// model's dictionary keys.  No range validation is
// performed here (callers own physical sensibility; Validate catches the
// degenerate cases before first use), but unknown names are an error.
func (cn *Conn) SetStatus(d map[string]float64) error {
	for k, v := range d {
		switch k {
		case "weight":
			cn.Syn.Wt = v
		case "tau_plus":
			cn.STDP.TauPlus = v
		case "lambda":
			cn.STDP.Lambda = v
		case "alpha":
			cn.STDP.Alpha = v
		case "mu_plus":
			cn.STDP.MuPlus = v
		case "mu_minus":
			cn.STDP.MuMinus = v
		case "Wmax":
			cn.STDP.Wmax = v
		case "delay":
			cn.Delay = v
		default:
			return fmt.Errorf("stdp: SetStatus: unknown parameter: %v", k)
		}
	}
	cn.UpdateParams()
	return nil
}

// Status returns all bulk parameters plus size_of, the memory footprint of
// this connection in bytes (diagnostic only).
func (cn *Conn) Status() map[string]float64 {
	return map[string]float64{
		"weight":   cn.Syn.Wt,
		"tau_plus": cn.STDP.TauPlus,
		"lambda":   cn.STDP.Lambda,
		"alpha":    cn.STDP.Alpha,
		"mu_plus":  cn.STDP.MuPlus,
		"mu_minus": cn.STDP.MuMinus,
		"Wmax":     cn.STDP.Wmax,
		"delay":    cn.Delay,
		"size_of":  float64(cn.MemSize()),
	}
}

// MemSize returns the memory footprint of this connection record in bytes.
func (cn *Conn) MemSize() int {
	return int(unsafe.Sizeof(*cn))
}

// MemNote returns a human-readable one-line memory report.
func (cn *Conn) MemNote() string {
	return fmt.Sprintf("%s: ConnMem: %v", cn.Nm, (datasize.ByteSize)(cn.MemSize()).HumanReadable())
}

// ApplyParams applies given parameter style Sheet to this connection.
// Calls UpdateParams if anything set to ensure derived parameters are all updated.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (cn *Conn) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(cn, setMsg)
	if app {
		cn.UpdateParams()
	}
	return app, err
}

func (cn *Conn) String() string {
	str := "Conn: " + cn.Nm
	if cn.Off {
		str += " (Off)"
	}
	return fmt.Sprintf("%s -> target %d rport %d delay %gms", str, cn.TargetIndex, cn.RPort, cn.Delay)
}
