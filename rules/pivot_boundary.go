// SPDX-License-Identifier: MIT
package rules

import (
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// PivotBoundaryRule lets a pivotable spider that touches a boundary
// take part in a pivot anyway: a fresh phase-zero spider is spliced in
// between it and the boundary (preserving the boundary's edge, adding
// a Hadamard wire on the interior side), after which the ordinary
// pivot rewrite runs between it and its partner. The splice keeps the
// boundary's degree at one throughout, so the result stays directly
// extractable.
type PivotBoundaryRule struct{}

func (PivotBoundaryRule) Name() string { return PivotBoundary.String() }

// sole BOundary neighbor of v, or -1 if v has none or more than one.
func soleBoundaryNeighbor(g *zxgraph.ZXGraph, v *zxgraph.ZXVertex) int {
	found := -1
	for _, n := range v.Neighbors() {
		interior, ok := roleInterior(g, n)
		if !ok {
			continue
		}
		if !interior {
			if found >= 0 {
				return -1
			}
			found = n
		}
	}
	return found
}

// restIsGraphLike reports whether every neighbor of v other than
// exclude is interior and joined by a Hadamard edge.
func restIsGraphLike(g *zxgraph.ZXGraph, v *zxgraph.ZXVertex, exclude int) bool {
	for _, n := range v.Neighbors() {
		if n == exclude {
			continue
		}
		if v.EdgeCount(n, zxgraph.Simple) > 0 {
			return false
		}
		interior, ok := roleInterior(g, n)
		if !ok || !interior {
			return false
		}
	}
	return true
}

// FindMatches keeps a Hadamard edge (u,v) where v is an ordinary
// pivot-eligible graph-like spider and u is pivotable but touches
// exactly one boundary (otherwise identical to PivotRule's shape).
func (PivotBoundaryRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, u := range g.Interior() {
		vu := g.Vertex(u)
		if vu.Type != zxgraph.ZSpider && vu.Type != zxgraph.XSpider {
			continue
		}
		if !isPivotable(vu) {
			continue
		}
		b := soleBoundaryNeighbor(g, vu)
		if b < 0 || !restIsGraphLike(g, vu, b) {
			continue
		}
		for _, v := range vu.Neighbors() {
			if v == b || vu.EdgeCount(v, zxgraph.Hadamard) == 0 {
				continue
			}
			vv := g.Vertex(v)
			if vv.Type != zxgraph.ZSpider && vv.Type != zxgraph.XSpider {
				continue
			}
			if !isPivotable(vv) || !isGraphLikeHub(g, vv) {
				continue
			}
			out = append(out, Match{Kind: PivotBoundary, Support: []int{u, v}, U: u, V: v, Extra: []int{b}})
		}
	}
	return filterDisjoint(out)
}

func (PivotBoundaryRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		vu := g.Vertex(m.U)
		if vu == nil || g.Vertex(m.V) == nil {
			continue
		}
		b := m.Extra[0]
		if g.Vertex(b) == nil {
			continue
		}
		et := soleEdgeType(vu, b)
		g.RemoveEdge(m.U, b, et)
		shield := g.AddVertexAt(vu.Qubit, vu.Column, vu.Type, phase.Zero)
		_ = g.AddEdge(shield, b, et)
		_ = g.AddEdge(m.U, shield, zxgraph.Hadamard)

		pivotCore(g, m.U, m.V)
		g.LogProcedure(PivotBoundary.String())
	}
}
