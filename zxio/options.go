// SPDX-License-Identifier: MIT
package zxio

// options holds the tunables Read accepts.
type options struct {
	keepID bool
}

// Option configures Read.
type Option func(*options)

// WithKeepID makes Read preserve the file's own vertex ids rather than
// compacting them into a fresh dense range.
func WithKeepID(keep bool) Option {
	return func(o *options) { o.keepID = keep }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
