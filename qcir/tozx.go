// SPDX-License-Identifier: MIT
package qcir

import (
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// ToZX translates the circuit into an equivalent ZXGraph, one input
// and one output boundary per qubit. Each qubit's wire is tracked as a
// (tip vertex id, pending edge type) pair: a single-qubit gate inserts
// one spider connected to the tip via the pending edge type (then
// resets pending to Simple); an H gate needs no new vertex at all,
// since a Hadamard is already just an edge type in this data model, so
// it only toggles the pending edge type (consecutive H's cancel
// exactly the way two Hadamards should). CX/CZ each insert one spider
// per qubit and join the pair with a Simple (CX) or Hadamard (CZ)
// edge, the standard two-spider ZX gadgets for those gates. SWAP
// expands to three alternating CX gates before translation.
func (c *QCir) ToZX() (*zxgraph.ZXGraph, error) {
	g := zxgraph.NewGraph()
	tip := make([]int, c.qubits)
	pending := make([]zxgraph.EdgeType, c.qubits)
	for q := 0; q < c.qubits; q++ {
		id, err := g.AddInput(q)
		if err != nil {
			return nil, err
		}
		tip[q] = id
		pending[q] = zxgraph.Simple
	}

	for _, gate := range c.expand() {
		if err := c.applyGate(g, tip, pending, gate); err != nil {
			return nil, err
		}
	}

	for q := 0; q < c.qubits; q++ {
		out, err := g.AddOutput(q)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(tip[q], out, pending[q]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// expand lowers SWAP into three alternating CX gates (the Open
// Question decision recorded in DESIGN.md); every other gate passes
// through unchanged.
func (c *QCir) expand() []Gate {
	out := make([]Gate, 0, len(c.gates))
	for _, gt := range c.gates {
		if gt.Kind != SWAP {
			out = append(out, gt)
			continue
		}
		a, b := gt.Control(), gt.Target()
		out = append(out,
			Gate{Kind: CX, Qubits: []int{a, b}},
			Gate{Kind: CX, Qubits: []int{b, a}},
			Gate{Kind: CX, Qubits: []int{a, b}},
		)
	}
	return out
}

func (c *QCir) applyGate(g *zxgraph.ZXGraph, tip []int, pending []zxgraph.EdgeType, gate Gate) error {
	switch gate.Kind {
	case H:
		q := gate.Qubits[0]
		pending[q] = pending[q].Toggled()
		return nil
	case CX:
		return applyTwoSpider(g, tip, pending, gate.Control(), gate.Target(), zxgraph.ZSpider, zxgraph.XSpider, zxgraph.Simple)
	case CZ:
		return applyTwoSpider(g, tip, pending, gate.Control(), gate.Target(), zxgraph.ZSpider, zxgraph.ZSpider, zxgraph.Hadamard)
	default:
		q := gate.Qubits[0]
		ph, zAxis, ok := gate.Kind.fixedPhase()
		if gate.Kind.isPhaseGate() {
			ph, zAxis, ok = gate.Phase, gate.Kind == RZ, true
		}
		if !ok {
			return ErrUnsupportedGate
		}
		vtype := zxgraph.XSpider
		if zAxis {
			vtype = zxgraph.ZSpider
		}
		v := g.AddVertex(q, vtype, ph)
		if err := g.AddEdge(tip[q], v, pending[q]); err != nil {
			return err
		}
		tip[q] = v
		pending[q] = zxgraph.Simple
		return nil
	}
}

func applyTwoSpider(g *zxgraph.ZXGraph, tip []int, pending []zxgraph.EdgeType, qa, qb int, ta, tb zxgraph.VertexType, joint zxgraph.EdgeType) error {
	va := g.AddVertex(qa, ta, phase.Zero)
	vb := g.AddVertex(qb, tb, phase.Zero)
	if err := g.AddEdge(tip[qa], va, pending[qa]); err != nil {
		return err
	}
	if err := g.AddEdge(tip[qb], vb, pending[qb]); err != nil {
		return err
	}
	if err := g.AddEdge(va, vb, joint); err != nil {
		return err
	}
	tip[qa], tip[qb] = va, vb
	pending[qa], pending[qb] = zxgraph.Simple, zxgraph.Simple
	return nil
}
