// SPDX-License-Identifier: MIT
package rules

import (
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// PivotGadgetRule extends PivotRule to a neighbor whose phase is not a
// multiple of pi: that vertex is first turned into a phase gadget (a
// fresh phase-zero hub takes over its former neighborhood, and the
// original vertex becomes the hub's lone Hadamard-connected leaf,
// keeping its original phase), and the hub is pivoted against u using
// the same rewrite PivotRule uses. This is how a non-Clifford phase
// survives simplification instead of blocking it.
type PivotGadgetRule struct{}

func (PivotGadgetRule) Name() string { return PivotGadget.String() }

// FindMatches keeps a Hadamard edge between a pivotable, graph-like
// interior spider u and a graph-like interior spider v whose phase is
// neither 0 nor pi (so plain PivotRule cannot take it).
func (PivotGadgetRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, u := range g.Interior() {
		vu := g.Vertex(u)
		if vu.Type != zxgraph.ZSpider && vu.Type != zxgraph.XSpider {
			continue
		}
		if !isPivotable(vu) || !isGraphLikeHub(g, vu) {
			continue
		}
		for _, v := range vu.Neighbors() {
			if vu.EdgeCount(v, zxgraph.Hadamard) == 0 || v == u {
				continue
			}
			vv := g.Vertex(v)
			if vv.Type != zxgraph.ZSpider && vv.Type != zxgraph.XSpider {
				continue
			}
			if isPivotable(vv) || vv.Degree() < 2 || !isGraphLikeHub(g, vv) {
				continue
			}
			out = append(out, Match{Kind: PivotGadget, Support: []int{u, v}, U: u, V: v})
		}
	}
	return filterDisjoint(out)
}

func (PivotGadgetRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		if g.Vertex(m.U) == nil || g.Vertex(m.V) == nil {
			continue
		}
		hub := gadgetize(g, m.V)
		pivotCore(g, m.U, hub)
		g.LogProcedure(PivotGadget.String())
	}
}

// gadgetize detaches v's current Hadamard neighbors onto a fresh
// phase-zero hub of the same colour, then reconnects v to the hub
// alone, turning v into a degree-one phase-gadget leaf. Returns the
// new hub's id.
func gadgetize(g *zxgraph.ZXGraph, v int) int {
	vv := g.Vertex(v)
	nbs := vv.Neighbors()
	hub := g.AddVertex(vv.Qubit, vv.Type, phase.Zero)
	for _, n := range nbs {
		g.RemoveEdge(v, n, zxgraph.Hadamard)
		_ = g.AddEdge(hub, n, zxgraph.Hadamard)
	}
	_ = g.AddEdge(v, hub, zxgraph.Hadamard)
	return hub
}
