// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// SpiderFusionRule fuses two same-coloured spiders joined by a Simple
// edge into one: phases add, and the surviving spider inherits the
// union of the other's edges (re-canonicalized through AddEdge, which
// also absorbs any resulting self-loop as a phase contribution, per
// the data model's self-loop rule).
type SpiderFusionRule struct{}

func (SpiderFusionRule) Name() string { return SpiderFusion.String() }

// FindMatches scans every Simple edge once (u < v) and keeps it when
// both endpoints are the same spider colour.
//
// Complexity: O(|V|+|E|).
func (SpiderFusionRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, u := range g.Interior() {
		vu := g.Vertex(u)
		if vu.Type != zxgraph.ZSpider && vu.Type != zxgraph.XSpider {
			continue
		}
		for _, v := range vu.Neighbors() {
			if v <= u {
				continue
			}
			vv := g.Vertex(v)
			if vv.Type != vu.Type {
				continue
			}
			if vu.EdgeCount(v, zxgraph.Simple) == 0 {
				continue
			}
			out = append(out, Match{Kind: SpiderFusion, Support: []int{u, v}, U: u, V: v})
		}
	}
	return filterDisjoint(out)
}

// Apply fuses each match in order, skipping any whose endpoints were
// already consumed by an earlier match in the batch.
func (SpiderFusionRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		vu, vv := g.Vertex(m.U), g.Vertex(m.V)
		if vu == nil || vv == nil {
			continue
		}
		vu.Phase = vu.Phase.Add(vv.Phase)
		for _, other := range vv.Neighbors() {
			if other == m.U {
				if vv.EdgeCount(other, zxgraph.Hadamard) > 0 {
					_ = g.AddEdge(m.U, m.U, zxgraph.Hadamard)
				}
				continue
			}
			for _, et := range [2]zxgraph.EdgeType{zxgraph.Simple, zxgraph.Hadamard} {
				for i := 0; i < vv.EdgeCount(other, et); i++ {
					_ = g.AddEdge(m.U, other, et)
				}
			}
		}
		g.RemoveVertex(m.V)
		g.LogProcedure(SpiderFusion.String())
	}
}
