// SPDX-License-Identifier: MIT
package zxgraph

import "github.com/katalvlaran/zxgo/phase"

// AddEdge adds one edge of the given type between u and v. After
// insertion the pair (u,v) is canonicalized per the rules in the
// module's data model: a self-loop is absorbed into the host vertex's
// phase (Simple contributes 0, Hadamard contributes pi) rather than
// ever being stored as an edge; otherwise parallel edges between the
// same pair reduce according to (type(u), type(v), et):
//
//   - same-colour spiders (Z,Z) or (X,X): Hadamard multiplicity folds
//     modulo 2 (pairs cancel), Simple multiplicity collapses to at
//     most one (duplicate Simple wires between the same pair carry no
//     extra information).
//   - opposite-colour spiders (Z,X): a Simple/Hadamard pair annihilates
//     per the Hopf law, repeated until one side is exhausted.
//   - any pairing involving a Boundary or HBox vertex is left as-is
//     beyond the self-loop rule; HBox arity-2/phase-pi and boundary
//     degree-1 are enforced by the rules that create and consume them,
//     not by generic canonicalization.
//
// Returns ErrVertexNotFound if either endpoint is absent, or
// ErrBoundaryDegree if the edge would leave a Boundary vertex at degree
// other than 1.
//
// Complexity: O(1).
func (g *ZXGraph) AddEdge(u, v int, et EdgeType) error {
	vu, ok := g.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vv, ok := g.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}

	if u == v {
		g.absorbLoop(vu, et)
		return nil
	}

	if vu.Type == Boundary && vu.Degree() >= 1 {
		return ErrBoundaryDegree
	}
	if vv.Type == Boundary && vv.Degree() >= 1 {
		return ErrBoundaryDegree
	}

	g.addRaw(u, v, et)
	g.canonicalizePair(u, v)
	g.invalidateTopo()
	return nil
}

// absorbLoop folds a self-loop into the vertex's phase per the data
// model: a Simple loop contributes 0 (no-op), a Hadamard loop
// contributes pi.
func (g *ZXGraph) absorbLoop(v *ZXVertex, et EdgeType) {
	if et == Hadamard {
		v.Phase = v.Phase.Add(phase.Pi)
	}
	// Simple self-loop: phase contribution is 0, nothing to do.
}

// addRaw increments the symmetric multiplicity of a (u,v,et) edge by
// one without any canonicalization.
func (g *ZXGraph) addRaw(u, v int, et EdgeType) {
	addOneDirection(g.vertices[u], v, et)
	addOneDirection(g.vertices[v], u, et)
}

func addOneDirection(v *ZXVertex, other int, et EdgeType) {
	byType, ok := v.neighbors[other]
	if !ok {
		byType = make(map[EdgeType]int)
		v.neighbors[other] = byType
	}
	byType[et]++
}

// setEdgeCount sets the symmetric multiplicity of (u,v,et) to count,
// pruning empty map entries so degree/neighbor iteration never sees
// stale zero counts.
func (g *ZXGraph) setEdgeCount(u, v int, et EdgeType, count int) {
	setOneDirection(g.vertices[u], v, et, count)
	setOneDirection(g.vertices[v], u, et, count)
}

func setOneDirection(v *ZXVertex, other int, et EdgeType, count int) {
	byType, ok := v.neighbors[other]
	if !ok {
		if count == 0 {
			return
		}
		byType = make(map[EdgeType]int)
		v.neighbors[other] = byType
	}
	if count <= 0 {
		delete(byType, et)
	} else {
		byType[et] = count
	}
	if len(byType) == 0 {
		delete(v.neighbors, other)
	}
}

// canonicalizePair re-derives a normal form for every edge between u
// and v, per AddEdge's doc comment. Exported as CanonicalizePair so
// rules that union neighbor sets directly (e.g. Spider Fusion) can
// re-run canonicalization after a bulk neighbor merge instead of going
// through AddEdge one wire at a time.
func (g *ZXGraph) CanonicalizePair(u, v int) {
	if u == v {
		return
	}
	g.canonicalizePair(u, v)
}

func (g *ZXGraph) canonicalizePair(u, v int) {
	vu, vv := g.vertices[u], g.vertices[v]
	if vu == nil || vv == nil {
		return
	}
	simpleCount := vu.EdgeCount(v, Simple)
	hCount := vu.EdgeCount(v, Hadamard)

	sameColour := (vu.Type == ZSpider && vv.Type == ZSpider) || (vu.Type == XSpider && vv.Type == XSpider)
	diffColour := (vu.Type == ZSpider && vv.Type == XSpider) || (vu.Type == XSpider && vv.Type == ZSpider)

	switch {
	case sameColour:
		if hCount >= 2 {
			g.setEdgeCount(u, v, Hadamard, hCount%2)
		}
		if simpleCount >= 2 {
			g.setEdgeCount(u, v, Simple, 1)
		}
	case diffColour:
		if pairs := minInt(simpleCount, hCount); pairs > 0 {
			g.setEdgeCount(u, v, Simple, simpleCount-pairs)
			g.setEdgeCount(u, v, Hadamard, hCount-pairs)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RemoveEdge removes one edge of type et between u and v (decrementing
// multiplicity by one). No-op if no such edge exists.
//
// Complexity: O(1).
func (g *ZXGraph) RemoveEdge(u, v int, et EdgeType) {
	vu, ok := g.vertices[u]
	if !ok {
		return
	}
	count := vu.EdgeCount(v, et)
	if count == 0 {
		return
	}
	g.setEdgeCount(u, v, et, count-1)
	g.invalidateTopo()
}

// RemoveAllEdges removes every edge (of either type) between u and v.
//
// Complexity: O(1).
func (g *ZXGraph) RemoveAllEdges(u, v int) {
	g.setEdgeCount(u, v, Simple, 0)
	g.setEdgeCount(u, v, Hadamard, 0)
	g.invalidateTopo()
}
