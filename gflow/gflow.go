// SPDX-License-Identifier: MIT
// Package gflow computes generalized flow (gflow), the correctness
// witness the extractor and the verifier both rely on: a correction
// function that tells each interior vertex which later vertices must
// be corrected when it is measured, plus a layering that proves the
// corrections never reach backward in time.
//
// Purpose:
//   - A graph-like ZX diagram extracts to a circuit (component 8,
//     Extractor) only if it has a gflow; Compute is the witness this
//     property rests on.
//   - The definition implemented here is the standard maximally
//     delayed gflow of Mhalla & Perdrix, generalized to the graph-like
//     ZX setting the way Backens et al.'s circuit-extraction account
//     uses it: g(v) subset of already-corrected non-input vertices, a
//     layering l with l(w) < l(v) for w in g(v)\{v}, and Odd(g(v))
//     agrees with {v} on the current correction frontier.
//
// Determinism: the layer-by-layer sweep always considers candidate
// vertices in increasing id order and solves the GF(2) system with
// internal/gf2's deterministic row reduction, so Compute is a pure
// function of the diagram.
package gflow

import (
	"sort"

	"github.com/katalvlaran/zxgo/internal/gf2"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// GFlow is the computed correction function and layering for a
// graph-like diagram.
type GFlow struct {
	// Correction maps each non-output vertex to its correction set.
	Correction map[int][]int
	// Layer maps every vertex (outputs included, at layer 0) to its
	// depth: the number of correction rounds away from the outputs.
	Layer map[int]int
	// Valid reports whether a complete gflow was found. It is false
	// exactly when Compute returns ErrNoGFlow; Correction and Layer
	// still hold whatever partial layering was reached before the
	// search got stuck.
	Valid bool
	// Failing lists, in increasing id order, the vertices that blocked
	// the search when Valid is false: either the remaining vertices
	// with no path back to an already-processed one, or the candidates
	// whose GF(2) system had no solution this round.
	Failing []int
}

// Compute finds the maximally delayed gflow of g, or ErrNotGraphLike /
// ErrNoGFlow. On ErrNoGFlow the returned *GFlow is non-nil, with Valid
// false and Failing naming the vertices that blocked the search; on
// ErrNotGraphLike the returned *GFlow is nil, since no layering was
// ever attempted.
//
// Complexity: O(d * n^3) where d is the number of layers and n is
// |V|, via repeated GF(2) linear solves per layer.
func Compute(g *zxgraph.ZXGraph) (*GFlow, error) {
	if !g.IsGraphLike() {
		return nil, ErrNotGraphLike
	}

	inputs := asSet(g.Inputs())
	outputs := g.Outputs()
	allVertices := append(append([]int{}, g.Interior()...), append(g.Inputs(), outputs...)...)

	processed := asSet(outputs)
	layer := make(map[int]int, len(allVertices))
	for _, o := range outputs {
		layer[o] = 0
	}
	correction := make(map[int][]int)

	remaining := make(map[int]bool, len(allVertices))
	for _, v := range allVertices {
		if !processed[v] {
			remaining[v] = true
		}
	}

	k := 1
	for len(remaining) > 0 {
		out := setMinus(processed, inputs) // correction-set universe this round
		candidates := adjacentTo(g, remaining, processed)
		if len(candidates) == 0 {
			return &GFlow{Correction: correction, Layer: layer, Valid: false, Failing: sortedKeys(remaining)}, ErrNoGFlow
		}

		outList := sortedKeys(out)
		rowIdx := make(map[int]int, len(outList))
		for i, u := range outList {
			rowIdx[u] = i
		}

		m, err := gf2.NewMatrix(len(candidates), len(outList))
		if err != nil {
			return &GFlow{Correction: correction, Layer: layer, Valid: false, Failing: append([]int{}, candidates...)}, ErrNoGFlow
		}
		for i, v := range candidates {
			vv := g.Vertex(v)
			for _, n := range vv.Neighbors() {
				if j, ok := rowIdx[n]; ok {
					m.Set(i, j, true)
				}
			}
		}

		solvedAny := false
		var unsolved []int
		for i, v := range candidates {
			rhs := make([]bool, len(candidates))
			rhs[i] = true
			x, err := m.Solve(rhs)
			if err != nil {
				unsolved = append(unsolved, v)
				continue
			}
			var cs []int
			for j, u := range outList {
				if x[j] {
					cs = append(cs, u)
				}
			}
			correction[v] = cs
			layer[v] = k
			solvedAny = true
		}
		if !solvedAny {
			sort.Ints(unsolved)
			return &GFlow{Correction: correction, Layer: layer, Valid: false, Failing: unsolved}, ErrNoGFlow
		}
		for _, v := range candidates {
			if _, ok := correction[v]; ok {
				delete(remaining, v)
				processed[v] = true
			}
		}
		k++
	}
	return &GFlow{Correction: correction, Layer: layer, Valid: true}, nil
}

func asSet(ids []int) map[int]bool {
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func setMinus(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k := range a {
		if !b[k] {
			out[k] = true
		}
	}
	return out
}

// adjacentTo returns, in increasing id order, every vertex in from
// that has at least one neighbor in to.
func adjacentTo(g *zxgraph.ZXGraph, from map[int]bool, to map[int]bool) []int {
	var out []int
	for v := range from {
		vv := g.Vertex(v)
		for _, n := range vv.Neighbors() {
			if to[n] {
				out = append(out, v)
				break
			}
		}
	}
	sort.Ints(out)
	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
