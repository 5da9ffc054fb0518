// SPDX-License-Identifier: MIT
package simplify

import "github.com/katalvlaran/zxgo/zxgraph"

// Named runs one of the five built-in named strategies by string name
// (the same names the CLI's `zx optimize <strategy>` verb accepts).
// DynamicReduce additionally needs a T-count target; pass it via
// WithDynamicTarget, defaulting to 0 (reduce as far as possible).
func (s *Simplifier) Named(g *zxgraph.ZXGraph, name string, opts ...Option) (Result, error) {
	o := newOptions(opts)
	switch name {
	case "interior_clifford":
		return s.interiorClifford(g, o), nil
	case "clifford":
		return s.clifford(g, o), nil
	case "full_reduce":
		return s.fullReduce(g, o), nil
	case "dynamic_reduce":
		return s.DynamicReduce(g, o.dynamicTarget, opts...), nil
	case "symbolic_reduce":
		return s.SymbolicReduce(g, opts...), nil
	default:
		return Result{}, ErrUnknownStrategy
	}
}

// WithDynamicTarget sets the T-count target Named's "dynamic_reduce"
// case stops at; unused by every other strategy name.
func WithDynamicTarget(t int) Option {
	return func(o *Options) { o.dynamicTarget = t }
}
