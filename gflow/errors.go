// SPDX-License-Identifier: MIT
package gflow

import "errors"

var (
	// ErrNotGraphLike is returned when Compute is given a diagram that
	// does not satisfy the graph-like invariant gflow is defined over.
	ErrNotGraphLike = errors.New("gflow: graph is not graph-like")

	// ErrNoGFlow is returned when the diagram has no gflow: some
	// interior vertex could never be assigned a correction set no
	// matter how many layers are tried.
	ErrNoGFlow = errors.New("gflow: no generalized flow exists for this diagram")
)
