// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// HadamardFusionRule cancels two HBox vertices wired in series: H*H is
// the identity, so a pair of degree-two HBoxes joined directly by a
// Simple edge annihilates, and their two outer neighbors are wired
// together with a plain Simple edge.
type HadamardFusionRule struct{}

func (HadamardFusionRule) Name() string { return HadamardFusion.String() }

// FindMatches keeps every Simple edge joining two interior HBox
// vertices that each have exactly one other neighbor (degree two
// overall), one u < v pair per match.
func (HadamardFusionRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, u := range g.Interior() {
		vu := g.Vertex(u)
		if vu.Type != zxgraph.HBox || vu.Degree() != 2 {
			continue
		}
		for _, v := range vu.Neighbors() {
			if v <= u || vu.EdgeCount(v, zxgraph.Simple) == 0 {
				continue
			}
			vv := g.Vertex(v)
			if vv.Type != zxgraph.HBox || vv.Degree() != 2 {
				continue
			}
			outerU := otherNeighbor(vu, v)
			outerV := otherNeighbor(vv, u)
			if outerU < 0 || outerV < 0 {
				continue
			}
			out = append(out, Match{Kind: HadamardFusion, Support: []int{u, v}, U: outerU, V: outerV})
		}
	}
	return filterDisjoint(out)
}

// Apply removes both HBoxes of each match and joins their outer
// neighbors with a Simple edge.
func (HadamardFusionRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		// Support[0], Support[1] are the two HBox ids; U, V are the
		// outer neighbors recorded at find time.
		a, b := m.Support[0], m.Support[1]
		if g.Vertex(a) == nil || g.Vertex(b) == nil {
			continue
		}
		g.RemoveVertex(a)
		g.RemoveVertex(b)
		_ = g.AddEdge(m.U, m.V, zxgraph.Simple)
		g.LogProcedure(HadamardFusion.String())
	}
}

// otherNeighbor returns v's neighbor other than exclude, or -1 if v
// does not have exactly one such neighbor.
func otherNeighbor(v *zxgraph.ZXVertex, exclude int) int {
	found := -1
	for _, n := range v.Neighbors() {
		if n == exclude {
			continue
		}
		if found >= 0 {
			return -1
		}
		found = n
	}
	return found
}
