// SPDX-License-Identifier: MIT

// Package simplify drives the rewrite rule catalog to a fixed point
// under named strategies, each a fixed composition of rule loops. No
// strategy ever leaves the graph outside invariants 1-6: every rule's
// Apply already guarantees that, and a strategy is nothing more than
// a disciplined sequence of Apply calls.
package simplify

import (
	"github.com/katalvlaran/zxgo/rules"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// Simplifier holds one instance of every catalog rule, addressable by
// name, so strategies can look a rule up once and reuse it across
// rounds instead of reconstructing rules.All() repeatedly.
type Simplifier struct {
	byName map[string]rules.Rule
}

// New builds a Simplifier over the full rule catalog.
func New() *Simplifier {
	s := &Simplifier{byName: make(map[string]rules.Rule)}
	for _, r := range rules.All() {
		s.byName[r.Name()] = r
	}
	return s
}

// Rule looks a rule up by its Kind.String() name (e.g. "spider_fusion").
func (s *Simplifier) Rule(name string) (rules.Rule, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Result reports how much work a strategy or a single rule loop did.
type Result struct {
	// Rewrites is the total number of matches applied across every
	// round of every rule loop the strategy ran.
	Rewrites int
	// Rounds is the number of find_matches/apply cycles run, summed
	// across every rule loop in the strategy.
	Rounds int
}

func (r *Result) add(other Result) {
	r.Rewrites += other.Rewrites
	r.Rounds += other.Rounds
}

// Simp runs one rule to a fixed point, by name, exposing the simp(rule)
// primitive directly for callers that want a single rule loop instead
// of one of the named composite strategies.
func (s *Simplifier) Simp(g *zxgraph.ZXGraph, ruleName string, opts ...Option) (Result, error) {
	r, ok := s.byName[ruleName]
	if !ok {
		return Result{}, ErrUnknownRule
	}
	return simp(g, r, newOptions(opts)), nil
}

// HadamardSimp runs h_rule's vertex-count-aware loop directly, the
// hadamard_simp() primitive on its own.
func (s *Simplifier) HadamardSimp(g *zxgraph.ZXGraph, opts ...Option) Result {
	return hadamardSimp(g, s.byName[rules.HRule.String()], newOptions(opts))
}

// simp repeatedly calls FindMatches/Apply on rule until a round finds
// no matches, or the run is cancelled. Mirrors the module's simp(rule)
// primitive: one fixed-point loop over a single rule.
func simp(g *zxgraph.ZXGraph, r rules.Rule, opts *Options) Result {
	var res Result
	for {
		if opts.cancelled() {
			return res
		}
		matches := r.FindMatches(g)
		if len(matches) == 0 {
			return res
		}
		r.Apply(g, matches)
		res.Rewrites += len(matches)
		res.Rounds++
		opts.logf("simp(%s): round %d applied %d", r.Name(), res.Rounds, len(matches))
	}
}

// hadamardSimp runs the H-rule loop, terminating when a round fails
// to decrease the vertex count even though matches remain (the rule
// can keep finding the same non-progressing shape otherwise).
func hadamardSimp(g *zxgraph.ZXGraph, r rules.Rule, opts *Options) Result {
	var res Result
	for {
		if opts.cancelled() {
			return res
		}
		before := g.NumVertices()
		matches := r.FindMatches(g)
		if len(matches) == 0 {
			return res
		}
		r.Apply(g, matches)
		res.Rewrites += len(matches)
		res.Rounds++
		after := g.NumVertices()
		opts.logf("hadamard_simp: round %d applied %d (vertices %d -> %d)", res.Rounds, len(matches), before, after)
		if after >= before {
			return res
		}
	}
}
