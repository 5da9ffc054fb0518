// SPDX-License-Identifier: MIT
package rules

import (
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// BialgebraRule rewrites the minimal complete-bipartite fragment the
// bialgebra law governs: two phase-zero Z-spiders, each wired by a
// Simple edge to each of two phase-zero X-spiders (and to exactly one
// further vertex of its own outside that block), collapse to a single
// new X-spider carrying the two Z-spiders' outside legs and a single
// new Z-spider carrying the two X-spiders' outside legs, joined to
// each other by one Simple edge.
//
// Scope: only the 2x2 block matches; larger complete-bipartite
// fragments reduce to a sequence of 2x2 instances via repeated spider
// fusion and identity removal elsewhere in the catalog.
type BialgebraRule struct{}

func (BialgebraRule) Name() string { return Bialgebra.String() }

func zeroSpider(v *zxgraph.ZXVertex, want zxgraph.VertexType) bool {
	return v.Type == want && v.Phase.IsZero()
}

// FindMatches looks for z1,z2 (Z-spiders) and x1,x2 (X-spiders), each
// degree three, wired as a complete K2,2 plus one outside leg apiece,
// with no edge directly between z1-z2 or x1-x2.
func (BialgebraRule) FindMatches(g *zxgraph.ZXGraph) []Match {
	var out []Match
	interior := g.Interior()
	for i, z1 := range interior {
		vz1 := g.Vertex(z1)
		if !zeroSpider(vz1, zxgraph.ZSpider) || vz1.Degree() != 3 {
			continue
		}
		for _, z2 := range interior[i+1:] {
			vz2 := g.Vertex(z2)
			if !zeroSpider(vz2, zxgraph.ZSpider) || vz2.Degree() != 3 || vz1.HasNeighbor(z2) {
				continue
			}
			xs := commonXNeighbors(g, vz1, vz2)
			if len(xs) != 2 {
				continue
			}
			x1, x2 := xs[0], xs[1]
			vx1, vx2 := g.Vertex(x1), g.Vertex(x2)
			if vx1.Degree() != 3 || vx2.Degree() != 3 || vx1.HasNeighbor(x2) {
				continue
			}
			extZ1 := theOtherNeighbor(vz1, x1, x2)
			extZ2 := theOtherNeighbor(vz2, x1, x2)
			extX1 := theOtherNeighbor(vx1, z1, z2)
			extX2 := theOtherNeighbor(vx2, z1, z2)
			if extZ1 < 0 || extZ2 < 0 || extX1 < 0 || extX2 < 0 {
				continue
			}
			out = append(out, Match{
				Kind:    Bialgebra,
				Support: []int{z1, z2, x1, x2},
				Extra:   []int{extZ1, extZ2, extX1, extX2},
			})
		}
	}
	return filterDisjoint(out)
}

func commonXNeighbors(g *zxgraph.ZXGraph, a, b *zxgraph.ZXVertex) []int {
	var out []int
	for _, n := range a.Neighbors() {
		v := g.Vertex(n)
		if v.Type == zxgraph.XSpider && v.Phase.IsZero() && b.HasNeighbor(n) &&
			a.EdgeCount(n, zxgraph.Simple) == 1 && b.EdgeCount(n, zxgraph.Simple) == 1 {
			out = append(out, n)
		}
	}
	return out
}

// theOtherNeighbor returns v's neighbor that is neither skip1 nor
// skip2, provided there is exactly one such neighbor.
func theOtherNeighbor(v *zxgraph.ZXVertex, skip1, skip2 int) int {
	found := -1
	for _, n := range v.Neighbors() {
		if n == skip1 || n == skip2 {
			continue
		}
		if found >= 0 {
			return -1
		}
		found = n
	}
	return found
}

// Apply replaces each matched K2,2 block with the two new spiders.
func (BialgebraRule) Apply(g *zxgraph.ZXGraph, matches []Match) {
	for _, m := range filterDisjoint(matches) {
		ok := true
		for _, id := range m.Support {
			if g.Vertex(id) == nil {
				ok = false
			}
		}
		if !ok {
			continue
		}
		extZ1, extZ2, extX1, extX2 := m.Extra[0], m.Extra[1], m.Extra[2], m.Extra[3]
		col := g.Vertex(m.Support[0]).Column

		newX := g.AddVertexAt(g.Vertex(extZ1).Qubit, col, zxgraph.XSpider, phase.Zero)
		newZ := g.AddVertexAt(g.Vertex(extX1).Qubit, col, zxgraph.ZSpider, phase.Zero)

		_ = g.AddEdge(newX, extZ1, zxgraph.Simple)
		_ = g.AddEdge(newX, extZ2, zxgraph.Simple)
		_ = g.AddEdge(newZ, extX1, zxgraph.Simple)
		_ = g.AddEdge(newZ, extX2, zxgraph.Simple)
		_ = g.AddEdge(newX, newZ, zxgraph.Simple)

		for _, id := range m.Support {
			g.RemoveVertex(id)
		}
		g.LogProcedure(Bialgebra.String())
	}
}
