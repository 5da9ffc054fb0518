// SPDX-License-Identifier: MIT
package zxgraph

// IsEmpty reports whether the graph has no vertices at all.
func (g *ZXGraph) IsEmpty() bool { return len(g.vertices) == 0 }

// IsIdentity reports whether the graph is exactly a set of direct
// Simple wires from each input to the same-qubit output, with no
// interior vertices at all: the ZX-graph of a circuit with zero gates.
//
// Complexity: O(qubits).
func (g *ZXGraph) IsIdentity() bool {
	if len(g.interior) != 0 {
		return false
	}
	if len(g.inputs) != len(g.outputs) {
		return false
	}
	for q, inID := range g.inputs {
		outID, ok := g.outputs[q]
		if !ok {
			return false
		}
		inV := g.vertices[inID]
		if inV.Degree() != 1 || inV.EdgeCount(outID, Simple) != 1 {
			return false
		}
	}
	return true
}

// IsGraphLike reports whether g satisfies invariant 7: every interior
// vertex is a ZSpider, every interior-interior edge is Hadamard, every
// boundary connects to exactly one interior vertex via exactly one
// Simple edge, no vertex is isolated, and no input connects directly
// to an output.
//
// Complexity: O(|V|+|E|).
func (g *ZXGraph) IsGraphLike() bool {
	for id := range g.interior {
		v := g.vertices[id]
		if v.Type != ZSpider {
			return false
		}
		if v.Degree() == 0 {
			return false
		}
		for other, byType := range v.neighbors {
			boundary := g.isBoundary(other)
			for et, mult := range byType {
				if mult == 0 {
					continue
				}
				if boundary {
					if et != Simple {
						return false
					}
				} else if et != Hadamard {
					return false
				}
			}
		}
	}
	for _, id := range g.Inputs() {
		if !g.hasSingleInteriorSimpleNeighbor(id) {
			return false
		}
	}
	for _, id := range g.Outputs() {
		if !g.hasSingleInteriorSimpleNeighbor(id) {
			return false
		}
	}
	return true
}

func (g *ZXGraph) hasSingleInteriorSimpleNeighbor(boundaryID int) bool {
	v := g.vertices[boundaryID]
	if v.Degree() != 1 {
		return false
	}
	nb := v.Neighbors()[0]
	if v.EdgeCount(nb, Simple) != 1 {
		return false
	}
	return !g.isBoundary(nb) // no input-output direct edge
}

func (g *ZXGraph) isBoundary(id int) bool {
	_, isIn := g.interior[id]
	return !isIn && (g.vertexIsIn(id, g.inputs) || g.vertexIsIn(id, g.outputs))
}

func (g *ZXGraph) vertexIsIn(id int, set map[int]int) bool {
	for _, vid := range set {
		if vid == id {
			return true
		}
	}
	return false
}

// IsValid checks every universal invariant from the module's data
// model and returns the first violation found, or nil.
//
// Complexity: O(|V|+|E|).
func (g *ZXGraph) IsValid() error {
	for id, v := range g.vertices {
		if v.Type == Boundary && v.Degree() != 1 {
			return &InvariantError{Vertex: id, Reason: "boundary vertex degree != 1"}
		}
		for other, byType := range v.neighbors {
			if other == id {
				return &InvariantError{Vertex: id, Reason: "self-loop survived canonicalization"}
			}
			ov, ok := g.vertices[other]
			if !ok {
				return &InvariantError{Vertex: id, Reason: "neighbor not present in graph"}
			}
			for et, mult := range byType {
				if ov.neighbors[id][et] != mult {
					return &InvariantError{Vertex: id, Reason: "asymmetric neighbor relation"}
				}
			}
			if byType[Simple] >= 2 && (v.Type != Boundary && ov.Type != Boundary) {
				if sameColour(v.Type, ov.Type) {
					return &InvariantError{Vertex: id, Reason: "reducible parallel Simple edges remain"}
				}
			}
			if byType[Hadamard] >= 2 && sameColour(v.Type, ov.Type) {
				return &InvariantError{Vertex: id, Reason: "reducible parallel Hadamard edges remain"}
			}
		}
	}
	seenQubits := make(map[int]bool)
	for q := range g.inputs {
		if seenQubits[q] {
			return &InvariantError{Vertex: -1, Reason: "duplicate input qubit id"}
		}
		seenQubits[q] = true
	}
	seenQubits = make(map[int]bool)
	for q := range g.outputs {
		if seenQubits[q] {
			return &InvariantError{Vertex: -1, Reason: "duplicate output qubit id"}
		}
		seenQubits[q] = true
	}
	return nil
}

func sameColour(a, b VertexType) bool {
	return (a == ZSpider && b == ZSpider) || (a == XSpider && b == XSpider)
}

// Density returns 2*|E| / |V|^2, the fraction of possible undirected
// pairs that carry at least one edge, counting each canonical edge
// once regardless of multiplicity. This is one of several formulas
// that appear for density across the original codebase (see the
// module's open design questions); this package fixes it to
// 2*|E|/|V|^2 and documents the choice here rather than varying it per
// caller.
//
// Complexity: O(|V|+|E|).
func (g *ZXGraph) Density() float64 {
	n := len(g.vertices)
	if n == 0 {
		return 0
	}
	edges := 0
	seen := make(map[[2]int]bool)
	for id, v := range g.vertices {
		for other, byType := range v.neighbors {
			key := [2]int{id, other}
			if id > other {
				key = [2]int{other, id}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			for _, mult := range byType {
				if mult > 0 {
					edges++
					break
				}
			}
		}
	}
	return 2 * float64(edges) / float64(n*n)
}

// TCount returns the number of interior spiders whose phase has
// denominator 4 (T-count).
func (g *ZXGraph) TCount() int { return g.countByPhase(func(p phaseQ) bool { return p.IsT() }) }

// NonCliffordCount returns the number of interior spiders whose phase
// is not in {0, pi/2, pi, -pi/2}.
func (g *ZXGraph) NonCliffordCount() int {
	return g.countByPhase(func(p phaseQ) bool { return !p.IsClifford() })
}

// NonCliffordTCount returns the number of interior spiders with a
// non-Clifford phase whose denominator is not 4 either: phases needing
// further rotation synthesis beyond Clifford+T.
func (g *ZXGraph) NonCliffordTCount() int {
	return g.countByPhase(func(p phaseQ) bool { return !p.IsClifford() && !p.IsT() })
}

// phaseQ is a narrow local alias so this file doesn't need to import
// the phase package just to name the predicate type.
type phaseQ interface {
	IsClifford() bool
	IsT() bool
}

func (g *ZXGraph) countByPhase(pred func(phaseQ) bool) int {
	n := 0
	for id := range g.interior {
		v := g.vertices[id]
		if v.Type != ZSpider && v.Type != XSpider {
			continue
		}
		if pred(v.Phase) {
			n++
		}
	}
	return n
}
