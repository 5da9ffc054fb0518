// SPDX-License-Identifier: MIT
// Package zxgraph implements the labeled multigraph at the heart of the
// ZX-calculus engine: spider and boundary vertices joined by simple and
// Hadamard edges, with the canonicalization invariants that every
// public mutation must restore before returning.
//
// Unlike lvlath/core, ZXGraph is not built for concurrent access: the
// whole engine is single-threaded and synchronous (rewrite rules, the
// simplifier, the tensor evaluator, and the extractor all run on one
// thread of control, per the module's concurrency notes), so no
// internal locking is needed here. What is kept from lvlath/core is
// everything else about its shape: a monotone id counter, map-backed
// O(1)-amortized primitives, sentinel errors, and "remove detaches
// first, then deletes" vertex lifecycle discipline.
//
// Complexity: unless documented otherwise, vertex/edge primitives are
// O(1) amortized and queries that must visit the whole graph are
// O(|V|+|E|).
package zxgraph

// VertexType tags the four kinds of ZXGraph vertex.
type VertexType uint8

const (
	// Boundary marks an input or output vertex; always degree 1.
	Boundary VertexType = iota
	// ZSpider is a green spider, diagonal in the computational basis.
	ZSpider
	// XSpider is a red spider, diagonal in the Hadamard-rotated basis.
	XSpider
	// HBox is a Hadamard box; interior HBoxes have arity 2 and phase pi.
	HBox
)

// String renders the VertexType using the one-letter tags the .zx file
// format and the rule tables use (I/O for boundary is decided by role,
// not type, so Boundary prints as "B" here).
func (t VertexType) String() string {
	switch t {
	case Boundary:
		return "B"
	case ZSpider:
		return "Z"
	case XSpider:
		return "X"
	case HBox:
		return "H"
	default:
		return "?"
	}
}

// EdgeType tags the two kinds of ZXGraph edge.
type EdgeType uint8

const (
	// Simple is an ordinary ZX wire.
	Simple EdgeType = iota
	// Hadamard is a wire with a Hadamard gate in the middle; dually an
	// HBox on a Simple edge.
	Hadamard
)

// String renders the EdgeType as used by the .zx format's neighbor tags.
func (e EdgeType) String() string {
	if e == Hadamard {
		return "H"
	}
	return "S"
}

// Toggled returns the other EdgeType (Simple<->Hadamard).
func (e EdgeType) Toggled() EdgeType {
	if e == Hadamard {
		return Simple
	}
	return Hadamard
}

// Role distinguishes how a vertex participates in the graph's public
// topology: as an input boundary, an output boundary, or an interior
// vertex. A Role is derived from which of the graph's three sets a
// vertex lives in, not stored redundantly on ZXVertex.
type Role uint8

const (
	// RoleInterior marks a non-boundary vertex.
	RoleInterior Role = iota
	// RoleInput marks an input boundary vertex.
	RoleInput
	// RoleOutput marks an output boundary vertex.
	RoleOutput
)
