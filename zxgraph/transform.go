// SPDX-License-Identifier: MIT
package zxgraph

import "github.com/katalvlaran/zxgo/phase"

// ToggleVertex performs the Z<->X colour change at id: it swaps the
// vertex's VertexType between ZSpider and XSpider (a no-op for
// Boundary and HBox vertices) and flips the EdgeType of every edge
// incident to it, then re-canonicalizes every touched pair since the
// colour change can turn a same-colour pairing into an opposite-colour
// one or vice versa. Used by normalization (to_graph toggles every
// X-spider to Z) and by several rewrite rules.
//
// Complexity: O(deg(v)).
func (g *ZXGraph) ToggleVertex(id int) {
	v := g.vertices[id]
	if v == nil {
		return
	}
	switch v.Type {
	case ZSpider:
		v.Type = XSpider
	case XSpider:
		v.Type = ZSpider
	}

	others := v.Neighbors()
	for _, other := range others {
		byType := v.neighbors[other]
		s, h := byType[Simple], byType[Hadamard]
		flipped := map[EdgeType]int{}
		if s > 0 {
			flipped[Hadamard] = s
		}
		if h > 0 {
			flipped[Simple] = h
		}
		v.neighbors[other] = flipped
		if nv := g.vertices[other]; nv != nil && other != id {
			mirror := map[EdgeType]int{}
			for k, val := range flipped {
				mirror[k] = val
			}
			nv.neighbors[id] = mirror
		}
	}
	for _, other := range others {
		g.canonicalizePair(id, other)
	}
	g.invalidateTopo()
}

// Adjoint returns a new ZXGraph that is the dagger of g: inputs and
// outputs are swapped and every vertex's phase is negated. The result
// shares no mutable state with g.
//
// Complexity: O(|V|+|E|).
func (g *ZXGraph) Adjoint() *ZXGraph {
	out := g.Clone()
	out.inputs, out.outputs = out.outputs, out.inputs
	for _, v := range out.vertices {
		v.Phase = v.Phase.Neg()
	}
	out.LogProcedure("adjoint")
	return out
}

// Compose concatenates other after g by identifying g's outputs with
// other's inputs, qubit-wise: for every qubit index present in both
// g.Outputs() and other.Inputs(), the two boundary vertices are
// removed and their unique interior neighbors are joined directly, with
// an edge type equal to the XOR of the two wires' Hadamard-ness (two
// Hadamards in series cancel). Returns ErrQubitMismatch if the qubit
// sets disagree.
//
// Complexity: O(|other.V| + |other.E| + qubits).
func (g *ZXGraph) Compose(other *ZXGraph) error {
	selfQubits := qubitSet(g.outputs)
	otherQubits := qubitSet(other.inputs)
	if !sameQubitSet(selfQubits, otherQubits) {
		return ErrQubitMismatch
	}

	// absorb registers other's boundaries in g.inputs/g.outputs under the
	// same qubit keys, so the receiver's own boundary maps are saved first.
	selfInputs := make(map[int]int, len(g.inputs))
	for q, id := range g.inputs {
		selfInputs[q] = id
	}
	selfOutputs := make(map[int]int, len(g.outputs))
	for q, id := range g.outputs {
		selfOutputs[q] = id
	}
	idMap := g.absorb(other, 0)
	g.inputs = selfInputs

	for q, outID := range selfOutputs {
		inID, ok := other.inputs[q]
		if !ok {
			continue
		}
		a, etA := soleNeighbor(g, outID)
		mappedInID := idMap[inID]
		b, etB := soleNeighbor(g, mappedInID)

		g.RemoveVertex(outID)
		g.RemoveVertex(mappedInID)

		composed := Simple
		if (etA == Hadamard) != (etB == Hadamard) {
			composed = Hadamard
		}
		_ = g.AddEdge(a, b, composed)
	}

	newOutputs := make(map[int]int, len(other.outputs))
	for q, id := range other.outputs {
		newOutputs[q] = idMap[id]
	}
	g.outputs = newOutputs
	g.scalar *= other.scalar
	g.procedures = append(g.procedures, other.procedures...)
	g.LogProcedure("compose")
	g.invalidateTopo()
	return nil
}

// TensorProduct mutates g into the disjoint union of g and other, with
// other's qubit indices offset by the number of qubits already in g
// (len(g.Inputs())), so the two circuits act on disjoint qubit ranges.
//
// Complexity: O(|other.V| + |other.E|).
func (g *ZXGraph) TensorProduct(other *ZXGraph) {
	shift := len(g.Inputs())
	g.absorb(other, shift)
	g.scalar *= other.scalar
	g.LogProcedure("tensor_product")
	g.invalidateTopo()
}

// absorb copies every vertex and edge of other into g with fresh ids
// and qubit indices shifted by qubitShift, wiring inputs/outputs maps
// for the copied boundaries, and returns the old->new id mapping so
// callers (Compose) can locate the copies they need to re-wire.
func (g *ZXGraph) absorb(other *ZXGraph, qubitShift int) map[int]int {
	idMap := make(map[int]int, len(other.vertices))
	for oldID, ov := range other.vertices {
		var newID int
		switch {
		case isBoundaryRole(oldID, other.inputs):
			newID, _ = g.AddInputUnchecked(ov.Qubit + qubitShift)
		case isBoundaryRole(oldID, other.outputs):
			newID, _ = g.AddOutputUnchecked(ov.Qubit + qubitShift)
		default:
			newID = g.AddVertexAt(ov.Qubit+qubitShift, ov.Column, ov.Type, ov.Phase)
		}
		idMap[oldID] = newID
	}
	for oldID, ov := range other.vertices {
		for oldOther, byType := range ov.neighbors {
			if oldOther < oldID {
				continue // each undirected pair processed once
			}
			for et, mult := range byType {
				for i := 0; i < mult; i++ {
					_ = g.AddEdge(idMap[oldID], idMap[oldOther], et)
				}
			}
		}
	}
	return idMap
}

// AddInputUnchecked and AddOutputUnchecked bypass the "qubit already
// taken" check used by the public AddInput/AddOutput. absorb calls them
// with shifted qubit indices; with a shift of 0 (Compose) they overwrite
// the receiver's entries, which Compose saves and restores itself.
func (g *ZXGraph) AddInputUnchecked(qubit int) (int, error) {
	id := g.freshID()
	g.vertices[id] = newVertex(id, qubit, 0, Boundary, phase.Zero)
	g.inputs[qubit] = id
	return id, nil
}

func (g *ZXGraph) AddOutputUnchecked(qubit int) (int, error) {
	id := g.freshID()
	g.vertices[id] = newVertex(id, qubit, 0, Boundary, phase.Zero)
	g.outputs[qubit] = id
	return id, nil
}

func isBoundaryRole(id int, set map[int]int) bool {
	for _, vid := range set {
		if vid == id {
			return true
		}
	}
	return false
}

// soleNeighbor returns the single neighbor of a degree-1 boundary
// vertex and the edge type connecting them. Panics if the vertex does
// not have exactly one incident edge, which would mean invariant 1 was
// already violated before Compose ran.
func soleNeighbor(g *ZXGraph, boundaryID int) (int, EdgeType) {
	v := g.vertices[boundaryID]
	neighbors := v.Neighbors()
	if len(neighbors) != 1 {
		panic("zxgraph: boundary vertex does not have degree 1")
	}
	other := neighbors[0]
	if v.EdgeCount(other, Hadamard) > 0 {
		return other, Hadamard
	}
	return other, Simple
}

func qubitSet(m map[int]int) map[int]struct{} {
	out := make(map[int]struct{}, len(m))
	for q := range m {
		out[q] = struct{}{}
	}
	return out
}

func sameQubitSet(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for q := range a {
		if _, ok := b[q]; !ok {
			return false
		}
	}
	return true
}
