// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// IdentityRemovalRule deletes an interior Z or X spider of phase zero
// and degree two: it contributes nothing but a wire, so its two
// neighbors are reconnected directly, with the edge type composed from
// the two edges it stood between (Hadamard-ness XORs: Simple+Simple
// stays Simple, Simple+Hadamard becomes Hadamard, Hadamard+Hadamard
// cancels back to Simple).
type IdentityRemovalRule struct{}

func (IdentityRemovalRule) Name() string { return IdentityRemoval.String() }

// FindMatches keeps every interior Z/X spider with phase zero and
// exactly two distinct neighbors, each joined by a single edge.
func (IdentityRemovalRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, id := range g.Interior() {
		v := g.Vertex(id)
		if v.Type != zxgraph.ZSpider && v.Type != zxgraph.XSpider {
			continue
		}
		if !v.Phase.IsZero() {
			continue
		}
		nbs := v.Neighbors()
		if len(nbs) != 2 || v.Degree() != 2 {
			continue
		}
		out = append(out, Match{Kind: IdentityRemoval, Support: []int{id}, U: nbs[0], V: nbs[1], Extra: []int{id}})
	}
	return out
}

// Apply removes each matched spider and reconnects its two former
// neighbors with the composed edge type.
func (IdentityRemovalRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		id := m.Extra[0]
		v := g.Vertex(id)
		if v == nil {
			continue
		}
		n1, n2 := m.U, m.V
		et1 := soleEdgeType(v, n1)
		et2 := soleEdgeType(v, n2)
		combined := zxgraph.Simple
		if (et1 == zxgraph.Hadamard) != (et2 == zxgraph.Hadamard) {
			combined = zxgraph.Hadamard
		}
		g.RemoveVertex(id)
		_ = g.AddEdge(n1, n2, combined)
		g.LogProcedure(IdentityRemoval.String())
	}
}

// soleEdgeType reports the edge type joining v to other, preferring
// Hadamard when (degenerately) both are present.
func soleEdgeType(v *zxgraph.ZXVertex, other int) zxgraph.EdgeType {
	if v.EdgeCount(other, zxgraph.Hadamard) > 0 {
		return zxgraph.Hadamard
	}
	return zxgraph.Simple
}
