// Package cancel provides the process-wide cooperative cancellation
// predicate shared by the simplifier, the tensor evaluator, and the
// extractor.
//
// The engine is single-threaded and synchronous (see the module's
// concurrency notes): there is no goroutine pool to tear down and no
// context tree to cancel. What every long-running loop needs instead
// is a single externally-set flag it can poll between atomic steps of
// work, so that a caller (the CLI shell, a test, a UI) can ask a
// simplification or extraction in progress to stop and hand back
// whatever valid, partially-transformed state it has reached.
//
// Complexity: every operation is O(1).
package cancel

import "sync/atomic"

// Token is a cooperative stop flag. The zero value is ready to use and
// never requests cancellation until Request is called.
type Token struct {
	requested atomic.Bool
}

// Request flips the token to the cancelled state. Idempotent.
func (t *Token) Request() {
	if t == nil {
		return
	}
	t.requested.Store(true)
}

// Requested reports whether Request has been called. A nil Token never
// requests cancellation, so callers may pass a nil *Token to mean
// "never cancel" without a separate branch.
func (t *Token) Requested() bool {
	if t == nil {
		return false
	}
	return t.requested.Load()
}

// Reset clears the cancellation flag so the token can be reused.
func (t *Token) Reset() {
	if t == nil {
		return
	}
	t.requested.Store(false)
}
