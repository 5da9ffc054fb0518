// SPDX-License-Identifier: MIT
package extractor

import (
	"errors"
	"fmt"
)

var (
	// ErrNotGraphLike is returned when New is given a diagram that does
	// not satisfy the graph-like invariant extraction requires.
	ErrNotGraphLike = errors.New("extractor: graph is not graph-like")

	// ErrNoGFlow is returned when the diagram has no gflow, so there is
	// no causal order to extract a circuit in. New returns a
	// *NoGFlowError wrapping this sentinel, naming the vertices that
	// blocked the search.
	ErrNoGFlow = errors.New("extractor: graph has no gflow")

	// ErrStuck is returned when a round of the main loop makes no
	// progress at all: the frontier neither shrinks nor advances. This
	// signals a bug in the gflow witness or an unsupported diagram
	// shape, not a user error in the usual sense.
	ErrStuck = errors.New("extractor: frontier made no progress this round")
)

// NoGFlowError reports ErrNoGFlow together with the vertices gflow.Compute
// found blocking the search, so a caller (the CLI's `zx gflow`/`extract`
// verbs among them) can point at the offending part of the diagram instead
// of just learning that extraction is impossible.
type NoGFlowError struct {
	Failing []int
}

func (e *NoGFlowError) Error() string {
	return fmt.Sprintf("%v: failing vertices %v", ErrNoGFlow, e.Failing)
}

func (e *NoGFlowError) Unwrap() error { return ErrNoGFlow }
