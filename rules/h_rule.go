// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// HRuleRule dissolves a trivial binary HBox vertex (one with exactly
// two neighbors) into a single Hadamard edge joining them: an HBox of
// arity two is, by definition, nothing but the Hadamard gate, so
// carrying it as a separate vertex adds no information once it is no
// longer needed to anchor a third or later wire.
type HRuleRule struct{}

func (HRuleRule) Name() string { return HRule.String() }

// FindMatches keeps every interior HBox of degree exactly two, each
// edge to it a Simple edge (the HBox convention: its own edges carry
// no Hadamard marking, the box itself is the Hadamard).
func (HRuleRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	for _, id := range g.Interior() {
		v := g.Vertex(id)
		if v.Type != zxgraph.HBox {
			continue
		}
		nbs := v.Neighbors()
		if len(nbs) != 2 || v.Degree() != 2 {
			continue
		}
		if v.EdgeCount(nbs[0], zxgraph.Hadamard) > 0 || v.EdgeCount(nbs[1], zxgraph.Hadamard) > 0 {
			continue
		}
		out = append(out, Match{Kind: HRule, Support: []int{id}, U: nbs[0], V: nbs[1], Extra: []int{id}})
	}
	return out
}

// Apply removes each matched HBox and joins its two neighbors with a
// Hadamard edge.
func (HRuleRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		id := m.Extra[0]
		if g.Vertex(id) == nil {
			continue
		}
		g.RemoveVertex(id)
		_ = g.AddEdge(m.U, m.V, zxgraph.Hadamard)
		g.LogProcedure(HRule.String())
	}
}
