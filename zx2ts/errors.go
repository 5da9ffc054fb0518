// SPDX-License-Identifier: MIT
package zx2ts

import "errors"

var (
	// ErrCancelled is returned when a cancellation token is observed as
	// requested mid-evaluation; the graph is left untouched (the
	// evaluator only ever reads g).
	ErrCancelled = errors.New("zx2ts: evaluation cancelled")

	// ErrDanglingBoundary names a boundary vertex that is not wired to
	// exactly one interior neighbor via exactly one Simple edge. No
	// function in this package returns it: Evaluate also reads Hadamard
	// boundary legs and direct input-to-output wires.
	ErrDanglingBoundary = errors.New("zx2ts: boundary vertex is not a single simple leg")
)
