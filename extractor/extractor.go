// SPDX-License-Identifier: MIT

// Package extractor turns a graph-like ZX-graph with a valid gflow
// back into a gate sequence (component 8). It peels vertices from the
// frontier — the interior vertices currently touching the outputs —
// back toward the inputs, one "row" per iteration, converting ZX
// structure (phases, Hadamard edges) into circuit structure (rotation
// gates, CNOTs, Hadamards) as it goes.
//
// Determinism: SortFrontier/SortNeighbors (on by default) make every
// round process qubits and back-neighbors in a fixed order, so two
// calls on an equal diagram produce bit-identical circuits.
package extractor

import (
	"sort"

	"github.com/katalvlaran/zxgo/gflow"
	"github.com/katalvlaran/zxgo/internal/gf2"
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/qcir"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// doneMarker is stored in Extractor.frontier for a qubit whose wire
// has already reached its true graph input.
const doneMarker = -1

// Extractor holds the mutable extraction state for one run: the
// ZX-graph being consumed (vertices are removed from it as rows are
// peeled), the QCir being built, and per-qubit frontier tracking.
type Extractor struct {
	zx   *zxgraph.ZXGraph
	opts *Options

	// flow is computed once by New as the extractability witness
	// (construction fails outright when none exists); the frontier-
	// peeling loop below does not consult its Layer/Correction maps
	// directly, since the per-round GF(2) reduction reconstructs an
	// equivalent causal order on its own.
	flow *gflow.GFlow

	inputOf  []int // qubit -> graph input vertex id
	frontier []int // qubit -> current frontier vertex id, or doneMarker
	landedAt []int // qubit -> qubit index of the input it actually reached, once done

	rounds       [][]qcir.Gate // completed rows, output-side first
	currentRound []qcir.Gate   // gates accumulated by the row in progress
	pendingPlan  *cxPlan       // set by ExtractCXs, consumed by ExtractHadamards
}

// New builds an Extractor over g. g must be graph-like and must have
// a valid gflow; New computes the gflow once up front as the
// extractability witness and fails when there is none.
func New(g *zxgraph.ZXGraph, opts ...Option) (*Extractor, error) {
	if !g.IsGraphLike() {
		return nil, ErrNotGraphLike
	}
	flow, err := gflow.Compute(g)
	if err != nil {
		if flow != nil {
			return nil, &NoGFlowError{Failing: flow.Failing}
		}
		return nil, ErrNoGFlow
	}

	outputs := g.Outputs()
	n := len(outputs)
	e := &Extractor{
		zx:       g,
		opts:     newOptions(opts),
		flow:     flow,
		inputOf:  make([]int, n),
		frontier: make([]int, n),
		landedAt: make([]int, n),
	}
	for i := range e.landedAt {
		e.landedAt[i] = -1
	}
	for q, inID := range g.Inputs() {
		e.inputOf[q] = inID
	}
	for q, outID := range outputs {
		nbs := g.Vertex(outID).Neighbors()
		if len(nbs) != 1 {
			return nil, ErrNotGraphLike
		}
		e.frontier[q] = nbs[0]
	}
	e.settleFinishedQubits()
	return e, nil
}

// GFlow returns the gflow witness this run was built from.
func (e *Extractor) GFlow() *gflow.GFlow { return e.flow }

// Done reports whether every qubit's frontier has reached its graph
// input, i.e. extraction is complete.
func (e *Extractor) Done() bool {
	for _, f := range e.frontier {
		if f != doneMarker {
			return false
		}
	}
	return true
}

func (e *Extractor) activeQubits() []int {
	var out []int
	for q, f := range e.frontier {
		if f != doneMarker {
			out = append(out, q)
		}
	}
	return out
}

// settleFinishedQubits marks as done every active qubit whose
// frontier vertex has no remaining Hadamard (interior) neighbor and
// sits directly on a Simple edge to some graph input — not
// necessarily the input of the same qubit index, since a diagram can
// permute wires internally; PermuteQubits reconciles that afterward.
func (e *Extractor) settleFinishedQubits() {
	for q, f := range e.frontier {
		if f == doneMarker {
			continue
		}
		v := e.zx.Vertex(f)
		if hadamardDegree(v) != 0 {
			continue
		}
		for _, n := range v.Neighbors() {
			if e.zx.RoleOf(n) == zxgraph.RoleInput {
				e.landedAt[q] = e.zx.Vertex(n).Qubit
				e.frontier[q] = doneMarker
				break
			}
		}
	}
}

func hadamardDegree(v *zxgraph.ZXVertex) int {
	d := 0
	for _, n := range v.Neighbors() {
		d += v.EdgeCount(n, zxgraph.Hadamard)
	}
	return d
}

// CleanFrontier emits a Z-axis rotation for every active frontier
// vertex with a non-zero phase (zeroing the phase in the graph once
// extracted) and a CZ for every Hadamard edge directly between two
// active frontier vertices (removing that edge once extracted).
// Returns the number of gates emitted.
func (e *Extractor) CleanFrontier() (int, error) {
	active := e.sortedActive()
	before := len(e.currentRound)

	for _, q := range active {
		v := e.zx.Vertex(e.frontier[q])
		if v.Phase.IsZero() {
			continue
		}
		kind, ph := rotationFor(v.Phase)
		e.currentRound = append(e.currentRound, qcir.Gate{Kind: kind, Qubits: []int{q}, Phase: ph})
		v.Phase = phase.Zero
	}

	for i, qa := range active {
		for _, qb := range active[i+1:] {
			va, vb := e.zx.Vertex(e.frontier[qa]), e.zx.Vertex(e.frontier[qb])
			if va.EdgeCount(e.frontier[qb], zxgraph.Hadamard) == 0 {
				continue
			}
			lo, hi := qa, qb
			if lo > hi {
				lo, hi = hi, lo
			}
			e.currentRound = append(e.currentRound, qcir.Gate{Kind: qcir.CZ, Qubits: []int{lo, hi}})
			e.zx.RemoveEdge(va.ID, vb.ID, zxgraph.Hadamard)
		}
	}
	return len(e.currentRound) - before, nil
}

// rotationFor picks the named Clifford+T gate matching ph exactly, or
// falls back to a general RZ.
func rotationFor(ph phase.Phase) (qcir.Kind, phase.Phase) {
	for _, k := range []qcir.Kind{qcir.Z, qcir.S, qcir.Sdg, qcir.T, qcir.Tdg} {
		fixed, zAxis, _ := k.FixedPhase()
		if zAxis && ph.Equal(fixed) {
			return k, phase.Zero
		}
	}
	return qcir.RZ, ph
}

// RemoveGadget finds every phase-gadget hub (phase zero, every edge
// Hadamard, exactly one degree-one leaf carrying the gadget's phase)
// whose support sits entirely on the current frontier, and folds each
// one into a CNOT-ladder + single-qubit rotation + CNOT-ladder: the
// textbook circuit for a multi-qubit Z-parity rotation. Gadgets whose
// support is not yet entirely on the frontier are left for a later
// round. Returns the number of gadgets removed.
func (e *Extractor) RemoveGadget() (int, error) {
	frontierQubit := e.frontierIndex()
	removed := 0
	for {
		hub, leaf, ok := e.findFrontierGadget(frontierQubit)
		if !ok {
			return removed, nil
		}
		// findFrontierGadget already guaranteed a non-empty support
		// entirely on the frontier, so support is never empty here.
		support := supportQubitsOf(e.zx, hub, leaf, frontierQubit)
		sort.Ints(support)
		target := support[len(support)-1]
		for _, q := range support[:len(support)-1] {
			e.currentRound = append(e.currentRound, qcir.Gate{Kind: qcir.CX, Qubits: []int{q, target}})
		}
		ph := e.zx.Vertex(leaf).Phase
		kind, rotPh := rotationFor(ph)
		e.currentRound = append(e.currentRound, qcir.Gate{Kind: kind, Qubits: []int{target}, Phase: rotPh})
		for i := len(support) - 2; i >= 0; i-- {
			e.currentRound = append(e.currentRound, qcir.Gate{Kind: qcir.CX, Qubits: []int{support[i], target}})
		}
		e.zx.RemoveVertex(leaf)
		e.zx.RemoveVertex(hub)
		removed++
	}
}

func (e *Extractor) frontierIndex() map[int]int {
	idx := make(map[int]int, len(e.frontier))
	for q, f := range e.frontier {
		if f != doneMarker {
			idx[f] = q
		}
	}
	return idx
}

// findFrontierGadget scans interior vertices for a phase-gadget hub
// whose support (neighbors minus the leaf) is a non-empty subset of
// the current frontier.
func (e *Extractor) findFrontierGadget(frontierQubit map[int]int) (hub, leaf int, ok bool) {
	for _, id := range e.zx.Interior() {
		v := e.zx.Vertex(id)
		l, isHub := gadgetLeafOf(e.zx, v)
		if !isHub {
			continue
		}
		allOnFrontier := true
		any := false
		for _, n := range v.Neighbors() {
			if n == l {
				continue
			}
			if _, on := frontierQubit[n]; !on {
				allOnFrontier = false
				break
			}
			any = true
		}
		if allOnFrontier && any {
			return id, l, true
		}
	}
	return 0, 0, false
}

// gadgetLeafOf mirrors rules.gadgetLeafOf's shape (phase-zero hub,
// every incident edge Hadamard, exactly one degree-one neighbor): the
// predicate is small enough, and private enough in its home package,
// that duplicating it here reads clearer than exporting it solely for
// this one caller.
func gadgetLeafOf(g *zxgraph.ZXGraph, h *zxgraph.ZXVertex) (leaf int, ok bool) {
	if h.Type != zxgraph.ZSpider || !h.Phase.IsZero() || h.Degree() < 2 {
		return 0, false
	}
	found := -1
	for _, n := range h.Neighbors() {
		if h.EdgeCount(n, zxgraph.Simple) > 0 {
			return 0, false
		}
		if g.Vertex(n).Degree() == 1 {
			if found >= 0 {
				return 0, false
			}
			found = n
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}

func supportQubitsOf(g *zxgraph.ZXGraph, hub, leaf int, frontierQubit map[int]int) []int {
	var out []int
	for _, n := range g.Vertex(hub).Neighbors() {
		if n == leaf {
			continue
		}
		out = append(out, frontierQubit[n])
	}
	return out
}

func (e *Extractor) sortedActive() []int {
	active := e.activeQubits()
	if e.opts.sortFrontier {
		sort.Ints(active)
	}
	return active
}
