// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// LocalComplementationRule removes an interior, graph-like spider
// whose phase is plus or minus a quarter turn (pi/2): it complements
// the Hadamard-edge relation among its neighbors (toggles a Hadamard
// edge between every pair that doesn't already have one, and removes
// one from every pair that does) and adds the opposite sign of its own
// phase to each neighbor.
//
// Scope: only vertices whose entire neighborhood is interior and
// joined purely by Hadamard edges match (the graph-like fragment this
// rule operates on); a vertex touching a boundary is left for the
// extractor to handle directly instead.
type LocalComplementationRule struct{}

func (LocalComplementationRule) Name() string { return LocalComplementation.String() }

func isGraphLikeHub(g *zxgraph.ZXGraph, v *zxgraph.ZXVertex) bool {
	for _, n := range v.Neighbors() {
		if v.EdgeCount(n, zxgraph.Simple) > 0 {
			return false
		}
		if !g.HasVertex(n) {
			return false
		}
		role, ok := roleInterior(g, n)
		if !ok || !role {
			return false
		}
	}
	return true
}

// roleInterior reports whether id is an interior vertex (vs. a
// boundary input/output), and whether the lookup itself succeeded.
func roleInterior(g *zxgraph.ZXGraph, id int) (interior bool, ok bool) {
	for _, iid := range g.Interior() {
		if iid == id {
			return true, true
		}
	}
	for _, iid := range g.Inputs() {
		if iid == id {
			return false, true
		}
	}
	for _, iid := range g.Outputs() {
		if iid == id {
			return false, true
		}
	}
	return false, false
}

// FindMatches keeps interior Z/X spiders with phase +-1/2 whose
// neighborhood is entirely interior and Hadamard-connected.
func (LocalComplementationRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, id := range g.Interior() {
		v := g.Vertex(id)
		if v.Type != zxgraph.ZSpider && v.Type != zxgraph.XSpider {
			continue
		}
		if !v.Phase.IsCliffordHalf() || v.Phase.IsZero() || v.Phase.IsPi() {
			continue
		}
		if v.Degree() == 0 || !isGraphLikeHub(g, v) {
			continue
		}
		out = append(out, Match{Kind: LocalComplementation, Support: []int{id}, U: id})
	}
	return out
}

// Apply performs the complementation and phase correction, then
// deletes the matched vertex.
func (LocalComplementationRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		v := g.Vertex(m.U)
		if v == nil {
			continue
		}
		nbs := v.Neighbors()
		correction := v.Phase.Neg()
		for i := range nbs {
			w := g.Vertex(nbs[i])
			w.Phase = w.Phase.Add(correction)
			for j := i + 1; j < len(nbs); j++ {
				_ = g.AddEdge(nbs[i], nbs[j], zxgraph.Hadamard)
			}
		}
		g.RemoveVertex(m.U)
		g.LogProcedure(LocalComplementation.String())
	}
}
