// SPDX-License-Identifier: MIT
package extractor

import (
	"sort"

	"github.com/katalvlaran/zxgo/internal/gf2"
	"github.com/katalvlaran/zxgo/qcir"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// cxPlan is the result of one CNOT-synthesis pass: the CNOTs to emit,
// and the matched back-neighbor each active qubit's frontier
// advances to next.
type cxPlan struct {
	gates   []qcir.Gate
	advance map[int]int // qubit -> new frontier vertex id
}

// ExtractCXs builds the biadjacency matrix between the active
// frontier and its Hadamard-connected back-neighbors and reduces it
// with Gaussian elimination over GF(2); each row operation needed to
// reduce a row to a single remaining 1 is emitted as a CNOT between
// the two qubits involved. Returns the number of CNOTs emitted.
//
// This only plans the round — ExtractHadamards applies emitted
// Hadamards and actually advances the frontier, since a Hadamard edge
// on the matched column decides whether an H is also needed.
func (e *Extractor) ExtractCXs() (int, error) {
	active := e.sortedActive()
	if len(active) == 0 {
		return 0, nil
	}
	back := e.collectBackNeighbors(active)
	if len(back) == 0 {
		e.pendingPlan = &cxPlan{advance: map[int]int{}}
		return 0, nil
	}

	m, err := gf2.NewMatrix(len(active), len(back))
	if err != nil {
		return 0, err
	}
	for i, q := range active {
		v := e.zx.Vertex(e.frontier[q])
		for j, w := range back {
			if v.EdgeCount(w, zxgraph.Hadamard) > 0 {
				m.Set(i, j, true)
			}
		}
	}

	plan, err := e.reduceToPermutation(m, active, back)
	if err != nil {
		return 0, err
	}
	e.currentRound = append(e.currentRound, plan.gates...)
	e.pendingPlan = plan
	return len(plan.gates), nil
}

// reduceToPermutation repeatedly picks a row with exactly one
// remaining candidate column and eliminates that column from every
// other row, emitting the eliminating row's qubit as the CNOT control
// and the eliminated row's qubit as the target. Requires the matrix
// to admit such a reduction to a permutation (guaranteed when the
// source diagram is graph-like with a valid gflow); returns ErrStuck
// otherwise.
//
// Every abstract row-XOR is mirrored onto the real graph as the
// matching Hadamard-edge toggle between the two qubits' frontier
// vertices and every back-neighbor the pivot row still reaches — the
// standard graph-state identity for a CNOT (target's neighborhood XORs
// in the control's). This keeps the live diagram in lockstep with the
// matrix, so each row's frontier vertex ends up connected to exactly
// its matched back-neighbor and nothing else by the time it settles.
func (e *Extractor) reduceToPermutation(m *gf2.Matrix, active, back []int) (*cxPlan, error) {
	rows := m.Rows()
	settled := make([]bool, rows)
	matchedCol := make([]int, rows)
	for i := range matchedCol {
		matchedCol[i] = -1
	}

	var gates []qcir.Gate
	lastCX := map[[2]int]bool{}
	remaining := rows
	for remaining > 0 {
		progressed := false
		for _, i := range e.pivotOrder(m, rows, settled) {
			ones := setColumns(m, i)
			if len(ones) == 0 {
				return nil, ErrStuck
			}
			if len(ones) != 1 {
				continue
			}
			col := ones[0]
			matchedCol[i] = col
			settled[i] = true
			remaining--
			progressed = true
			for k := 0; k < rows; k++ {
				if k == i || settled[k] {
					continue
				}
				if m.Get(k, col) {
					xorRowInto(m, k, i)
					for _, c := range ones {
						if err := toggleEdge(e.zx, e.frontier[active[k]], back[c]); err != nil {
							return nil, err
						}
					}
					pair := [2]int{active[i], active[k]}
					if e.opts.filterCX && lastCX[pair] {
						delete(lastCX, pair)
						continue
					}
					gates = append(gates, qcir.Gate{Kind: qcir.CX, Qubits: []int{active[i], active[k]}})
					lastCX[pair] = true
				}
			}
		}
		if !progressed {
			return nil, ErrStuck
		}
	}

	advance := make(map[int]int, rows)
	for i, col := range matchedCol {
		advance[active[i]] = back[col]
	}
	return &cxPlan{gates: gates, advance: advance}, nil
}

// toggleEdge adds a Hadamard edge between u and v, which the graph's
// own canonicalization cancels away if one is already there — exactly
// the GF(2)-XOR semantics a mirrored row operation needs.
func toggleEdge(g *zxgraph.ZXGraph, u, v int) error {
	return g.AddEdge(u, v, zxgraph.Hadamard)
}

// pivotOrder returns every not-yet-settled row, in the order
// reduceToPermutation should examine them this pass, per the
// configured optimize level. Every unsettled row is always included —
// the heuristic only changes which already-ready row (exactly one
// remaining column) gets settled first when more than one is, and
// that never affects whether a reduction exists, only the resulting
// CNOT pattern.
func (e *Extractor) pivotOrder(m *gf2.Matrix, rows int, settled []bool) []int {
	order := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		if !settled[i] {
			order = append(order, i)
		}
	}
	switch e.opts.optimizeLevel {
	case 0:
		// Block Gaussian elimination: drive the lowest-index block of
		// blockSize rows to completion before touching the next block.
		bs := e.opts.blockSize
		if bs <= 0 {
			bs = 1
		}
		sort.SliceStable(order, func(a, b int) bool {
			return order[a]/bs < order[b]/bs
		})
	case 2:
		// Sparsest-row-first: settle the most constrained rows first.
		sort.SliceStable(order, func(a, b int) bool {
			return len(setColumns(m, order[a])) < len(setColumns(m, order[b]))
		})
	case 3:
		// Densest-row-first, an ancilla-friendly heuristic that clears
		// heavily-connected rows before sparse ones.
		sort.SliceStable(order, func(a, b int) bool {
			return len(setColumns(m, order[a])) > len(setColumns(m, order[b]))
		})
	}
	return order
}

func setColumns(m *gf2.Matrix, row int) []int {
	var out []int
	for c := 0; c < m.Cols(); c++ {
		if m.Get(row, c) {
			out = append(out, c)
		}
	}
	return out
}

func xorRowInto(m *gf2.Matrix, dst, src int) {
	for c := 0; c < m.Cols(); c++ {
		if m.Get(src, c) {
			m.Set(dst, c, !m.Get(dst, c))
		}
	}
}

// collectBackNeighbors returns, in ascending vertex-id order (or
// unordered if SortNeighbors is off), every interior vertex Hadamard-
// adjacent to an active frontier vertex.
func (e *Extractor) collectBackNeighbors(active []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, q := range active {
		v := e.zx.Vertex(e.frontier[q])
		for _, n := range v.Neighbors() {
			if v.EdgeCount(n, zxgraph.Hadamard) == 0 || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	if e.opts.sortNeighbors {
		sort.Ints(out)
	}
	return out
}

// ExtractHadamards applies the plan ExtractCXs produced: for each
// active qubit, emits an H when the matched back-neighbor is joined
// by a Hadamard edge (always true here, since collectBackNeighbors
// only ever gathers Hadamard neighbors), advances that qubit's
// frontier to the matched vertex, and discards the old frontier vertex
// — by the time a row settles, reduceToPermutation has already
// mirrored every elimination onto the real graph, so the old vertex's
// only remaining edge is the one to its replacement. Finally marks
// qubits that have reached a graph input (not necessarily the one of
// their own index) as done. Returns the
// number of H gates emitted.
func (e *Extractor) ExtractHadamards() (int, error) {
	plan := e.pendingPlan
	if plan == nil {
		return 0, nil
	}
	e.pendingPlan = nil

	qubits := make([]int, 0, len(plan.advance))
	for q := range plan.advance {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)

	count := 0
	for _, q := range qubits {
		old := e.frontier[q]
		e.currentRound = append(e.currentRound, qcir.Gate{Kind: qcir.H, Qubits: []int{q}})
		count++
		e.zx.RemoveVertex(old)
		e.frontier[q] = plan.advance[q]
	}
	e.settleFinishedQubits()

	e.rounds = append(e.rounds, e.currentRound)
	e.currentRound = nil
	return count, nil
}
