// SPDX-License-Identifier: MIT
package qcir

// Option customizes a QCir at construction time, matching the
// functional-options shape this module's other constructors use
// (zxgraph's AddVertexAt-style variants, simplify.Option).
type Option func(*QCir)

// WithLabel attaches a human-readable name to the circuit, surfaced
// only by String() and the .qasm writer's header comment.
func WithLabel(name string) Option {
	return func(c *QCir) { c.label = name }
}
