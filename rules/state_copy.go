// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// StateCopyRule pushes a classical basis state (phase 0 or pi) through
// an opposite-coloured spider it is the sole neighbor of: the spider
// being measured out disappears, and a fresh copy of the leaf (same
// colour, same phase) is attached to each of its other neighbors,
// preserving whichever edge type originally joined that neighbor.
type StateCopyRule struct{}

func (StateCopyRule) Name() string { return StateCopy.String() }

// FindMatches keeps a degree-one interior spider u with phase 0 or pi
// whose sole neighbor v is an interior spider of the opposite colour.
func (StateCopyRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, u := range g.Interior() {
		vu := g.Vertex(u)
		if vu.Type != zxgraph.ZSpider && vu.Type != zxgraph.XSpider {
			continue
		}
		if !vu.Phase.IsZero() && !vu.Phase.IsPi() {
			continue
		}
		nbs := vu.Neighbors()
		if vu.Degree() != 1 || len(nbs) != 1 {
			continue
		}
		v := nbs[0]
		vv := g.Vertex(v)
		if vv == nil {
			continue
		}
		opposite := (vu.Type == zxgraph.ZSpider && vv.Type == zxgraph.XSpider) ||
			(vu.Type == zxgraph.XSpider && vv.Type == zxgraph.ZSpider)
		if !opposite {
			continue
		}
		interior, ok := roleInterior(g, v)
		if !ok || !interior {
			continue
		}
		out = append(out, Match{Kind: StateCopy, Support: []int{u, v}, U: u, V: v})
	}
	return filterDisjoint(out)
}

// Apply fans the leaf's phase and colour out to every other neighbor
// of v, then deletes both u and v.
func (StateCopyRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		vu, vv := g.Vertex(m.U), g.Vertex(m.V)
		if vu == nil || vv == nil {
			continue
		}
		leafType, leafPhase := vu.Type, vu.Phase
		for _, w := range vv.Neighbors() {
			if w == m.U {
				continue
			}
			for _, et := range [2]zxgraph.EdgeType{zxgraph.Simple, zxgraph.Hadamard} {
				for i := 0; i < vv.EdgeCount(w, et); i++ {
					leaf := g.AddVertexAt(g.Vertex(w).Qubit, g.Vertex(w).Column, leafType, leafPhase)
					_ = g.AddEdge(leaf, w, et)
				}
			}
		}
		g.RemoveVertex(m.U)
		g.RemoveVertex(m.V)
		g.LogProcedure(StateCopy.String())
	}
}
