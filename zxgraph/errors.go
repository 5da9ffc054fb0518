// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the zxgraph package.
//
// Error policy (mirrors lvlath/builder):
//   - Only sentinel variables (package-level) are exposed for validation
//     classes; callers branch with errors.Is.
//   - Sentinels are never stringified with caller-supplied values at
//     definition site; call sites wrap with %w for context.
//   - Internal invariant violations (a rewrite rule corrupting the
//     graph) panic rather than return an error: those are programmer
//     bugs, not user-facing failures, per the module's error-handling
//     design.
package zxgraph

import (
	"errors"
	"strconv"
)

var (
	// ErrNilGraph indicates a nil *ZXGraph was passed where one is required.
	ErrNilGraph = errors.New("zxgraph: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex id.
	ErrVertexNotFound = errors.New("zxgraph: vertex not found")

	// ErrQubitTaken indicates add_input/add_output was called for a qubit
	// that already has an input/output respectively.
	ErrQubitTaken = errors.New("zxgraph: qubit already has a boundary of this role")

	// ErrBoundaryDegree indicates an edge operation would leave a boundary
	// vertex at a degree other than 1.
	ErrBoundaryDegree = errors.New("zxgraph: boundary vertex must have degree 1")

	// ErrNotBoundary indicates an operation expected a Boundary-typed vertex.
	ErrNotBoundary = errors.New("zxgraph: vertex is not a boundary")

	// ErrQubitMismatch indicates compose was called on graphs whose
	// output/input qubit sets disagree.
	ErrQubitMismatch = errors.New("zxgraph: mismatched qubit counts for compose")

	// ErrNotGraphLike indicates an operation (e.g. extraction) requires a
	// graph-like ZXGraph (see IsGraphLike) and the graph is not one.
	ErrNotGraphLike = errors.New("zxgraph: graph is not graph-like")

	// ErrDuplicateID indicates AddVertexWithID/AddInputWithID/
	// AddOutputWithID was given an id already present in the graph (the
	// .zx format's keep_id read path hitting a corrupt or hand-edited file).
	ErrDuplicateID = errors.New("zxgraph: vertex id already in use")
)

// InvariantError reports a violated ZXGraph invariant; returned only by
// IsValid/Validate, never panicked from public mutators (those are
// expected to never produce an invalid graph in the first place).
type InvariantError struct {
	Vertex int    // offending vertex id, or -1 if not vertex-specific
	Reason string // human-readable description of the violated invariant
}

func (e *InvariantError) Error() string {
	if e.Vertex < 0 {
		return "zxgraph: invariant violated: " + e.Reason
	}
	return "zxgraph: invariant violated at vertex " + strconv.Itoa(e.Vertex) + ": " + e.Reason
}
