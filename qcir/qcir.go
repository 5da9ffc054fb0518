// SPDX-License-Identifier: MIT

// Package qcir is a minimal quantum circuit representation: a flat
// gate list plus a DAG recording each gate's per-qubit causal
// dependencies, together with a ToZX/FromZX bridge to zxgraph and a
// reader/writer for a small OpenQASM-like text subset.
package qcir

import "github.com/katalvlaran/zxgo/phase"

// QCir is a sequence of Gates over a fixed number of qubits. Gates is
// append-only and always kept in the same causal order as the DAG's
// own node ids, so index i of Gates and NodeID(i) of DAG name the same
// gate.
type QCir struct {
	qubits int
	label  string
	gates  []Gate
	dag    *DAG
}

// New allocates an empty circuit over qubits wires.
func New(qubits int, opts ...Option) *QCir {
	c := &QCir{qubits: qubits, dag: NewDAG(qubits)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Qubits reports the circuit's wire count.
func (c *QCir) Qubits() int { return c.qubits }

// Label reports the circuit's optional name.
func (c *QCir) Label() string { return c.label }

// Gates returns a copy of the gate list in the order they were added.
func (c *QCir) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// DAG exposes the circuit's dependency DAG for depth/topo-order queries.
func (c *QCir) DAG() *DAG { return c.dag }

// AddGate validates qubit indices and arity for a fixed (non-phase)
// gate kind, appends it to the gate list, and records it in the DAG.
// Use AddPhaseGate for RZ/RX.
func (c *QCir) AddGate(kind Kind, qubits []int) error {
	if kind.isPhaseGate() {
		return ErrArity
	}
	return c.addGate(Gate{Kind: kind, Qubits: qubits})
}

// AddPhaseGate is AddGate for RZ/RX, which additionally carry a phase.
func (c *QCir) AddPhaseGate(kind Kind, qubits []int, ph phase.Phase) error {
	if !kind.isPhaseGate() {
		return ErrArity
	}
	return c.addGate(Gate{Kind: kind, Qubits: qubits, Phase: ph})
}

func (c *QCir) addGate(g Gate) error {
	if len(g.Qubits) != g.Kind.arity() {
		return ErrArity
	}
	seen := make(map[int]bool, len(g.Qubits))
	for _, q := range g.Qubits {
		if q < 0 || q >= c.qubits {
			return ErrBadQubit
		}
		if seen[q] {
			return ErrDuplicateQubit
		}
		seen[q] = true
	}
	c.gates = append(c.gates, g)
	c.dag.AddNode(g)
	return nil
}
