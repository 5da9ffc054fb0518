// SPDX-License-Identifier: MIT
package simplify

import "github.com/katalvlaran/zxgo/internal/cancel"

// Options tunes a simplification run. Built with functional options
// over a package-local struct, matching builder.BuilderOption and
// matrix.Option rather than bare positional arguments.
type Options struct {
	cancel        *cancel.Token
	verbose       bool
	trace         func(format string, args ...any)
	dynamicTarget int
}

// Option customizes an Options instance before a run starts.
type Option func(*Options)

// DefaultOptions returns an Options with no cancellation, no tracing.
func DefaultOptions() *Options {
	return &Options{trace: func(string, ...any) {}}
}

// WithCancel attaches a cooperative cancellation token; every
// strategy loop polls it between rounds.
func WithCancel(tok *cancel.Token) Option {
	return func(o *Options) { o.cancel = tok }
}

// WithVerbose enables the trace sink (the default no-op sink if none
// was set via WithTrace) for callers that just want progress lines
// without installing a custom callback.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}

// WithTrace installs a callback invoked once per rule application
// round with a human-readable progress line (round count, rule name,
// rewrites applied this round), and implies WithVerbose(true). A nil
// fn is treated as a no-op sink.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(o *Options) {
		if fn == nil {
			fn = func(string, ...any) {}
		}
		o.trace = fn
		o.verbose = true
	}
}

func newOptions(opts []Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Options) cancelled() bool {
	return o.cancel.Requested()
}

func (o *Options) logf(format string, args ...any) {
	if o.verbose {
		o.trace(format, args...)
	}
}
