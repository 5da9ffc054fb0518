// SPDX-License-Identifier: MIT
// Package rules implements the ZX-calculus rewrite rule catalog: pure
// find_matches(graph) functions paired with mutating apply(graph,
// matches) functions, one pair per rule.
//
// Every rule implements the Rule interface below. Matches are a single
// tagged struct (Match) rather than one type per rule plus an
// interface hierarchy, per the module's design note on rule
// polymorphism ("represent this as a single interface with a sum type
// over match payloads, not inheritance"): Go has no sum types, so Match
// is the idiomatic approximation, a struct with a Kind discriminant
// and the union of fields any rule's payload needs.
//
// find_matches is pure: it never mutates graph. Two matches returned
// by the same call are "mutually compatible" (their Support lists are
// pairwise disjoint) except where a rule's doc comment says otherwise;
// apply processes Matches in slice order and skips any whose Support
// has already been consumed by an earlier Match in the same batch, so
// a caller can always apply an entire find_matches result in one pass
// without re-checking for conflicts itself.
package rules

import "github.com/katalvlaran/zxgo/zxgraph"

// Kind discriminates the payload carried by a Match.
type Kind uint8

const (
	SpiderFusion Kind = iota
	HadamardFusion
	IdentityRemoval
	HRule
	StateCopy
	Bialgebra
	LocalComplementation
	Pivot
	PivotGadget
	PivotBoundary
	PhaseGadgetFusion
)

// String names the Kind the way the simplifier's telemetry and the
// CLI's `zx rule <name>` verb refer to it.
func (k Kind) String() string {
	switch k {
	case SpiderFusion:
		return "spider_fusion"
	case HadamardFusion:
		return "hadamard_fusion"
	case IdentityRemoval:
		return "identity_removal"
	case HRule:
		return "h_rule"
	case StateCopy:
		return "state_copy"
	case Bialgebra:
		return "bialgebra"
	case LocalComplementation:
		return "local_complementation"
	case Pivot:
		return "pivot"
	case PivotGadget:
		return "pivot_gadget"
	case PivotBoundary:
		return "pivot_boundary"
	case PhaseGadgetFusion:
		return "phase_gadget_fusion"
	default:
		return "unknown"
	}
}

// Match is the sum-typed payload every rule's find_matches emits.
// Support is the set of vertex ids this match will consume (delete or
// fuse away) or otherwise requires exclusive access to; it is what
// Apply's default conflict resolution checks for overlap against
// matches already committed earlier in the same batch.
//
// U and V are the rule's primary matched vertices (the spider pair for
// an edge-matching rule, or U alone for a unary rule). Extra carries
// rule-specific auxiliary vertex ids (e.g. a pivot's partitioned
// neighbor sets, flattened) that do not fit the common U/V shape;
// each rule's own file documents how it packs and unpacks Extra.
type Match struct {
	Kind    Kind
	Support []int
	U, V    int
	Extra   []int
}

// Rule is the interface every rewrite rule implements.
type Rule interface {
	// Name identifies the rule for telemetry and the CLI.
	Name() string
	// FindMatches returns a batch of mutually-disjoint-support matches.
	// Pure: never mutates g.
	FindMatches(g *zxgraph.ZXGraph) []Match
	// Apply commits the given matches against g in slice order,
	// skipping any match whose Support overlaps one already consumed
	// earlier in the batch. Leaves g satisfying every ZXGraph
	// invariant.
	Apply(g *zxgraph.ZXGraph, matches []Match)
}
