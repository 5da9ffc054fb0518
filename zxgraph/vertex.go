// SPDX-License-Identifier: MIT
package zxgraph

import "github.com/katalvlaran/zxgo/phase"

// ZXVertex is one vertex of a ZXGraph: a globally unique id, a qubit
// index (meaningful for boundaries and for layout, not for the
// semantics of interior spiders), a column hint used only by drawing
// and extraction layout, its VertexType, its Phase, and its neighbor
// multiset.
//
// Neighbors are stored as neighbors[otherID][EdgeType] = multiplicity
// rather than a flat slice, so that degree queries, per-type counts,
// and the canonicalization pass in mutate_edges.go are all O(1) per
// neighbor instead of O(degree) scans.
type ZXVertex struct {
	ID     int
	Qubit  int
	Column float64
	Type   VertexType
	Phase  phase.Phase

	neighbors map[int]map[EdgeType]int
}

func newVertex(id int, qubit int, column float64, vtype VertexType, ph phase.Phase) *ZXVertex {
	return &ZXVertex{
		ID:        id,
		Qubit:     qubit,
		Column:    column,
		Type:      vtype,
		Phase:     ph,
		neighbors: make(map[int]map[EdgeType]int),
	}
}

// Degree returns the total number of incident edge-ends, counting
// multiplicity and counting a self-loop twice (mirrors standard graph
// degree convention); self-loops never survive canonicalization so in
// practice this only matters transiently inside a rule's apply step.
func (v *ZXVertex) Degree() int {
	d := 0
	for other, byType := range v.neighbors {
		for _, mult := range byType {
			d += mult
			if other == v.ID {
				d += mult // loop contributes twice
			}
		}
	}
	return d
}

// EdgeCount returns the multiplicity of edges of type et between v and
// the neighbor with id other.
func (v *ZXVertex) EdgeCount(other int, et EdgeType) int {
	byType, ok := v.neighbors[other]
	if !ok {
		return 0
	}
	return byType[et]
}

// HasNeighbor reports whether v has at least one edge (of any type) to other.
func (v *ZXVertex) HasNeighbor(other int) bool {
	byType, ok := v.neighbors[other]
	if !ok {
		return false
	}
	for _, mult := range byType {
		if mult > 0 {
			return true
		}
	}
	return false
}

// Neighbors returns the distinct neighbor ids of v, in ascending order.
func (v *ZXVertex) Neighbors() []int {
	out := make([]int, 0, len(v.neighbors))
	for id, byType := range v.neighbors {
		hasAny := false
		for _, mult := range byType {
			if mult > 0 {
				hasAny = true
				break
			}
		}
		if hasAny {
			out = append(out, id)
		}
	}
	sortInts(out)
	return out
}

// sortInts sorts a small slice of ints ascending (insertion sort is
// plenty for the degree-bounded neighbor lists this package deals in;
// avoids pulling in sort for a handful of elements in hot paths).
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
