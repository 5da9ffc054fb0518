// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// PivotRule removes a Hadamard-connected pair of interior spiders whose
// phases are each a multiple of pi (0 or pi): it partitions the rest
// of the graph into "only u's neighbor", "only v's neighbor", and
// "both's neighbor" groups, complements the Hadamard-edge relation
// between every pair of groups, and adds u's phase to every vertex that
// was connected to v (and v's phase to every vertex that was connected
// to u) before deleting u and v themselves.
type PivotRule struct{}

func (PivotRule) Name() string { return Pivot.String() }

func isPivotable(v *zxgraph.ZXVertex) bool {
	return v.Phase.IsZero() || v.Phase.IsPi()
}

// FindMatches keeps every Hadamard edge between two interior Z/X
// spiders that are each graph-like and pivotable (phase 0 or pi).
func (PivotRule) FindMatches(g *zxgraph.ZXGraph) []Match {
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
			if v <= u || vu.EdgeCount(v, zxgraph.Hadamard) == 0 {
				continue
			}
			vv := g.Vertex(v)
			if vv.Type != zxgraph.ZSpider && vv.Type != zxgraph.XSpider {
				continue
			}
			if !isPivotable(vv) || !isGraphLikeHub(g, vv) {
				continue
			}
			out = append(out, Match{Kind: Pivot, Support: []int{u, v}, U: u, V: v})
		}
	}
	return filterDisjoint(out)
}

func (PivotRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		if g.Vertex(m.U) == nil || g.Vertex(m.V) == nil {
			continue
		}
		pivotCore(g, m.U, m.V)
		g.LogProcedure(Pivot.String())
	}
}

// pivotCore implements the shared rewrite: partition N(u), N(v) into
// the three exclusive/common groups, complement Hadamard edges between
// every pair of groups, add phase corrections, then delete u and v.
// Shared by PivotRule and PivotGadgetRule once the latter has
// materialized its non-Clifford endpoint into a gadget hub with phase
// zero.
func pivotCore(g *zxgraph.ZXGraph, u, v int) {
	vu, vv := g.Vertex(u), g.Vertex(v)
	nu, nv := vu.Neighbors(), vv.Neighbors()

	inV := make(map[int]bool, len(nv))
	for _, w := range nv {
		inV[w] = true
	}
	inU := make(map[int]bool, len(nu))
	for _, w := range nu {
		inU[w] = true
	}

	var a, b, c []int // a: only u, b: only v, c: both
	for _, w := range nu {
		if w == v {
			continue
		}
		if inV[w] {
			c = append(c, w)
		} else {
			a = append(a, w)
		}
	}
	for _, w := range nv {
		if w == u || inU[w] {
			continue
		}
		b = append(b, w)
	}

	phaseU, phaseV := vu.Phase, vv.Phase
	for _, w := range b {
		g.Vertex(w).Phase = g.Vertex(w).Phase.Add(phaseU)
	}
	for _, w := range c {
		g.Vertex(w).Phase = g.Vertex(w).Phase.Add(phaseU).Add(phaseV)
	}
	for _, w := range a {
		g.Vertex(w).Phase = g.Vertex(w).Phase.Add(phaseV)
	}

	complementBetween(g, a, b)
	complementBetween(g, a, c)
	complementBetween(g, b, c)

	g.RemoveVertex(u)
	g.RemoveVertex(v)
}

func complementBetween(g *zxgraph.ZXGraph, xs, ys []int) {
	for _, x := range xs {
		for _, y := range ys {
			if x == y {
				continue
			}
			_ = g.AddEdge(x, y, zxgraph.Hadamard)
		}
	}
}
