// SPDX-License-Identifier: MIT
package qcir

import (
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// FromZX inverts ToZX on graphs shaped the way ToZX itself produces
// them: a simple same-qubit chain of spiders per wire, with two-qubit
// gates recognizable as a pair of spiders (one per qubit) joined by a
// single cross-qubit edge. It is a scoped, structural inverse, not a
// general circuit-extraction algorithm — a simplified or otherwise
// rewritten ZXGraph (anything gflow-verified but no longer chain-
// shaped) needs the extractor package's gflow-based algorithm instead,
// and FromZX reports ErrNotCircuitLike rather than guess.
//
// The walk advances one "frontier" vertex per qubit in lockstep: each
// round every still-active qubit proposes the next same-qubit neighbor
// of its frontier; a single-qubit gate commits immediately, a
// two-qubit gate commits only once both its qubits propose each other
// as partners in the same round (so cross-qubit gates are emitted in
// a causally consistent order without needing a full topological sort
// of the whole graph).
func FromZX(g *zxgraph.ZXGraph) (*QCir, error) {
	inputIDs, outputIDs := g.Inputs(), g.Outputs()
	n := len(inputIDs)
	if n == 0 || len(outputIDs) != n {
		return nil, ErrNotCircuitLike
	}

	frontier := make([]int, n)
	cameFrom := make([]int, n)
	done := make([]bool, n)
	for q := 0; q < n; q++ {
		frontier[q] = inputIDs[q]
		cameFrom[q] = -1
	}

	out := New(n)
	active := n
	for active > 0 {
		proposals := make([]int, n)
		for q := 0; q < n; q++ {
			if done[q] {
				continue
			}
			next, err := proposeNext(g, frontier[q], cameFrom[q], q)
			if err != nil {
				return nil, err
			}
			proposals[q] = next
		}

		progressed := false
		handled := make([]bool, n)
		for q := 0; q < n; q++ {
			if done[q] || handled[q] {
				continue
			}
			nv := proposals[q]
			if g.RoleOf(nv) == zxgraph.RoleOutput {
				if nv != outputIDs[q] {
					return nil, ErrNotCircuitLike
				}
				if err := emitPendingH(g, out, frontier[q], nv, q); err != nil {
					return nil, err
				}
				done[q] = true
				active--
				progressed = true
				continue
			}

			crossQ := crossQubitNeighbors(g, nv, q)
			switch len(crossQ) {
			case 0:
				if err := emitPendingH(g, out, frontier[q], nv, q); err != nil {
					return nil, err
				}
				kind, ph, err := classifySingle(g.Vertex(nv))
				if err != nil {
					return nil, err
				}
				if kind.isPhaseGate() {
					if err := out.AddPhaseGate(kind, []int{q}, ph); err != nil {
						return nil, err
					}
				} else if err := out.AddGate(kind, []int{q}); err != nil {
					return nil, err
				}
				cameFrom[q], frontier[q] = frontier[q], nv
				progressed = true
			case 1:
				partnerID := crossQ[0]
				pq := g.Vertex(partnerID).Qubit
				if done[pq] || handled[pq] || proposals[pq] != partnerID {
					continue // partner not ready this round
				}
				if err := emitPendingH(g, out, frontier[q], nv, q); err != nil {
					return nil, err
				}
				if err := emitPendingH(g, out, frontier[pq], partnerID, pq); err != nil {
					return nil, err
				}
				if err := emitTwoQubit(g, out, nv, partnerID, q, pq); err != nil {
					return nil, err
				}
				cameFrom[q], frontier[q] = frontier[q], nv
				cameFrom[pq], frontier[pq] = frontier[pq], partnerID
				handled[q], handled[pq] = true, true
				progressed = true
			default:
				return nil, ErrNotCircuitLike
			}
		}
		if !progressed {
			return nil, ErrNotCircuitLike
		}
	}
	return out, nil
}

// proposeNext returns the one same-qubit neighbor of v other than
// cameFrom (or v's only neighbor, for a degree-1 input boundary).
func proposeNext(g *zxgraph.ZXGraph, v, cameFrom, qubit int) (int, error) {
	var candidates []int
	for _, nb := range g.Vertex(v).Neighbors() {
		if nb == cameFrom {
			continue
		}
		if g.Vertex(nb).Qubit != qubit {
			continue
		}
		candidates = append(candidates, nb)
	}
	if len(candidates) != 1 {
		return 0, ErrNotCircuitLike
	}
	return candidates[0], nil
}

func crossQubitNeighbors(g *zxgraph.ZXGraph, v, qubit int) []int {
	var out []int
	for _, nb := range g.Vertex(v).Neighbors() {
		if g.Vertex(nb).Qubit != qubit {
			out = append(out, nb)
		}
	}
	return out
}

func emitPendingH(g *zxgraph.ZXGraph, out *QCir, from, to, qubit int) error {
	if g.Vertex(from).EdgeCount(to, zxgraph.Hadamard) == 0 {
		return nil
	}
	return out.AddGate(H, []int{qubit})
}

func emitTwoQubit(g *zxgraph.ZXGraph, out *QCir, va, vb, qa, qb int) error {
	a, b := g.Vertex(va), g.Vertex(vb)
	joint := zxgraph.Simple
	if a.EdgeCount(vb, zxgraph.Hadamard) > 0 {
		joint = zxgraph.Hadamard
	}
	if !a.Phase.IsZero() || !b.Phase.IsZero() {
		return ErrNotCircuitLike
	}

	switch {
	case a.Type == zxgraph.ZSpider && b.Type == zxgraph.XSpider && joint == zxgraph.Simple:
		return out.AddGate(CX, []int{qa, qb})
	case a.Type == zxgraph.XSpider && b.Type == zxgraph.ZSpider && joint == zxgraph.Simple:
		return out.AddGate(CX, []int{qb, qa})
	case a.Type == zxgraph.ZSpider && b.Type == zxgraph.ZSpider && joint == zxgraph.Hadamard:
		lo, hi := qa, qb
		if lo > hi {
			lo, hi = hi, lo
		}
		return out.AddGate(CZ, []int{lo, hi})
	default:
		return ErrNotCircuitLike
	}
}

func classifySingle(v *zxgraph.ZXVertex) (Kind, phase.Phase, error) {
	for _, k := range []Kind{X, Z, S, Sdg, T, Tdg} {
		ph, zAxis, _ := k.fixedPhase()
		wantType := zxgraph.XSpider
		if zAxis {
			wantType = zxgraph.ZSpider
		}
		if v.Type == wantType && v.Phase.Equal(ph) {
			return k, phase.Zero, nil
		}
	}
	switch v.Type {
	case zxgraph.ZSpider:
		return RZ, v.Phase, nil
	case zxgraph.XSpider:
		return RX, v.Phase, nil
	default:
		return 0, phase.Zero, ErrNotCircuitLike
	}
}
