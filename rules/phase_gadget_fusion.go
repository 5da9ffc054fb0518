// SPDX-License-Identifier: MIT
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// PhaseGadgetFusionRule merges two phase gadgets that share the same
// support (the same set of non-leaf neighbors) into one: their leaf
// phases add, one hub and one leaf survive, the other hub and leaf are
// deleted. Two gadgets on the same support represent the same
// diagonal operator split across two spiders for no reason once they
// can be recognized as such.
type PhaseGadgetFusionRule struct{}

func (PhaseGadgetFusionRule) Name() string { return PhaseGadgetFusion.String() }

// gadgetLeafOf returns the degree-one Hadamard-connected leaf of hub
// h, or -1 if h is not shaped like a phase-gadget hub (phase zero,
// exactly one degree-one neighbor, every edge Hadamard).
func gadgetLeafOf(g *zxgraph.ZXGraph, h *zxgraph.ZXVertex) int {
	if !h.Phase.IsZero() || h.Degree() < 2 {
		return -1
	}
	leaf := -1
	for _, n := range h.Neighbors() {
		if h.EdgeCount(n, zxgraph.Simple) > 0 {
			return -1
		}
		nv := g.Vertex(n)
		if nv.Degree() == 1 {
			if leaf >= 0 {
				return -1
			}
			leaf = n
		}
	}
	return leaf
}

func supportSet(h *zxgraph.ZXVertex, leaf int) map[int]bool {
	out := make(map[int]bool, h.Degree())
	for _, n := range h.Neighbors() {
		if n != leaf {
			out[n] = true
		}
	}
	return out
}

func sameSupport(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// FindMatches pairs up gadget hubs (h1 < h2) sharing identical support.
func (PhaseGadgetFusionRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	type gadget struct {
		hub, leaf int
		support   map[int]bool
	}
	var gadgets []gadget
	for _, id := range g.Interior() {
		v := g.Vertex(id)
		if v.Type != zxgraph.ZSpider && v.Type != zxgraph.XSpider {
			continue
		}
		leaf := gadgetLeafOf(g, v)
		if leaf < 0 {
			continue
		}
		gadgets = append(gadgets, gadget{hub: id, leaf: leaf, support: supportSet(v, leaf)})
	}

	var out []Match
	for i := 0; i < len(gadgets); i++ {
		for j := i + 1; j < len(gadgets); j++ {
			a, b := gadgets[i], gadgets[j]
			if !sameSupport(a.support, b.support) {
				continue
			}
			out = append(out, Match{
				Kind:    PhaseGadgetFusion,
				Support: []int{a.hub, a.leaf, b.hub, b.leaf},
				U:       a.leaf,
				V:       b.leaf,
				Extra:   []int{b.hub},
			})
		}
	}
	return filterDisjoint(out)
}

// Apply adds the losing gadget's leaf phase onto the surviving leaf,
// then deletes the losing hub and leaf.
func (PhaseGadgetFusionRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		survivingLeaf := g.Vertex(m.U)
		losingLeaf := g.Vertex(m.V)
		losingHub := m.Extra[0]
		if survivingLeaf == nil || losingLeaf == nil || g.Vertex(losingHub) == nil {
			continue
		}
		survivingLeaf.Phase = survivingLeaf.Phase.Add(losingLeaf.Phase)
		g.RemoveVertex(losingHub)
		g.RemoveVertex(m.V)
		g.LogProcedure(PhaseGadgetFusion.String())
	}
}
