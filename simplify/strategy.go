// SPDX-License-Identifier: MIT
package simplify

import "github.com/katalvlaran/zxgo/zxgraph"

// InteriorClifford runs spider_fusion once, normalizes every X-spider
// to Z via to_graph, then loops {identity_removal, spider_fusion,
// pivot, local_complementation} until a full round makes no rewrites.
func (s *Simplifier) InteriorClifford(g *zxgraph.ZXGraph, opts ...Option) Result {
	o := newOptions(opts)
	return s.interiorClifford(g, o)
}

func (s *Simplifier) interiorClifford(g *zxgraph.ZXGraph, o *Options) Result {
	var res Result
	res.add(simp(g, s.byName["spider_fusion"], o))
	toGraph(g)

	loop := []string{"identity_removal", "spider_fusion", "pivot", "local_complementation"}
	for {
		if o.cancelled() {
			return res
		}
		round := Result{}
		for _, name := range loop {
			round.add(simp(g, s.byName[name], o))
		}
		res.add(round)
		if round.Rewrites == 0 {
			return res
		}
	}
}

// Clifford loops {InteriorClifford, pivot_boundary} until no change.
func (s *Simplifier) Clifford(g *zxgraph.ZXGraph, opts ...Option) Result {
	o := newOptions(opts)
	return s.clifford(g, o)
}

func (s *Simplifier) clifford(g *zxgraph.ZXGraph, o *Options) Result {
	var res Result
	for {
		if o.cancelled() {
			return res
		}
		round := s.interiorClifford(g, o)
		round.add(simp(g, s.byName["pivot_boundary"], o))
		res.add(round)
		if round.Rewrites == 0 {
			return res
		}
	}
}

// gadgetLikeNames are the rules full_reduce's inner loop runs beyond
// Clifford/InteriorClifford/PivotGadget: the two rewrites that create
// or consume phase gadgets, letting non-Clifford phases keep
// participating in pivoting instead of stalling the reduction.
var gadgetLikeNames = []string{"phase_gadget_fusion", "state_copy"}

// FullReduce runs InteriorClifford then pivot_gadget once, then loops
// {Clifford, gadget-like rules, InteriorClifford, pivot_gadget} until
// a round makes no rewrites.
func (s *Simplifier) FullReduce(g *zxgraph.ZXGraph, opts ...Option) Result {
	o := newOptions(opts)
	return s.fullReduce(g, o)
}

func (s *Simplifier) fullReduce(g *zxgraph.ZXGraph, o *Options) Result {
	var res Result
	res.add(s.interiorClifford(g, o))
	res.add(simp(g, s.byName["pivot_gadget"], o))

	for {
		if o.cancelled() {
			return res
		}
		round := Result{}
		round.add(s.clifford(g, o))
		for _, name := range gadgetLikeNames {
			round.add(simp(g, s.byName[name], o))
		}
		round.add(s.interiorClifford(g, o))
		round.add(simp(g, s.byName["pivot_gadget"], o))
		res.add(round)
		if round.Rewrites == 0 {
			return res
		}
	}
}

// DynamicReduce behaves like FullReduce but checkpoints the graph
// after every round and stops as soon as a round fails to lower the
// T-count below the best seen so far, rolling back to that best
// checkpoint (rather than keeping a round that regressed or plateaued
// T-count while still churning other rewrites). Iteration also stops
// immediately once tTarget is reached or undercut.
func (s *Simplifier) DynamicReduce(g *zxgraph.ZXGraph, tTarget int, opts ...Option) Result {
	o := newOptions(opts)
	var res Result
	best := g.Clone()
	bestT := g.TCount()

	for {
		if o.cancelled() || bestT <= tTarget {
			break
		}
		round := Result{}
		round.add(s.interiorClifford(g, o))
		round.add(simp(g, s.byName["pivot_gadget"], o))
		for _, name := range gadgetLikeNames {
			round.add(simp(g, s.byName[name], o))
		}
		res.add(round)
		if round.Rewrites == 0 {
			break
		}
		if t := g.TCount(); t < bestT {
			bestT = t
			best = g.Clone()
		} else {
			break
		}
	}

	*g = *best
	return res
}

// SymbolicReduce interleaves state_copy with FullReduce's own loop so
// that boundary-adjacent Clifford states get copied through before
// each reduction round, rather than only as one of the gadget-like
// rules inside full_reduce's inner loop.
func (s *Simplifier) SymbolicReduce(g *zxgraph.ZXGraph, opts ...Option) Result {
	o := newOptions(opts)
	var res Result
	for {
		if o.cancelled() {
			return res
		}
		round := simp(g, s.byName["state_copy"], o)
		round.add(s.fullReduce(g, o))
		res.add(round)
		if round.Rewrites == 0 {
			return res
		}
	}
}
