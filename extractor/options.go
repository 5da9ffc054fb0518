// SPDX-License-Identifier: MIT
package extractor

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zxgo/internal/cancel"
)

// Options tunes one extraction run. Built with functional options over
// a package-local struct, matching simplify.Options and
// builder.BuilderOption rather than bare positional arguments.
type Options struct {
	optimizeLevel int
	blockSize     int
	filterCX      bool
	sortFrontier  bool
	sortNeighbors bool
	permuteQubits bool
	cancel        *cancel.Token
	trace         func(format string, args ...any)
	verbose       bool
}

// Option customizes an Options instance before a run starts.
type Option func(*Options)

// DefaultOptions returns the extractor's defaults: level 1 (sorted
// frontier and neighbors, no ancilla tricks, CX cancellation filtered),
// qubit permutation resolved with SWAPs at the start of the circuit
// rather than left as residual metadata.
func DefaultOptions() *Options {
	return &Options{
		optimizeLevel: 1,
		blockSize:     1,
		filterCX:      true,
		sortFrontier:  true,
		sortNeighbors: true,
		permuteQubits: true,
		trace:         func(string, ...any) {},
	}
}

// WithOptimizeLevel selects the pivot-row heuristic reduceToPermutation
// uses while synthesizing CNOTs: 1 (the default) settles rows in
// ascending qubit order; 2 settles the sparsest (most constrained) row
// first; 3 settles the densest row first; 0 switches to block Gaussian
// elimination, driving one blockSize-wide group of rows to completion
// before starting the next. Every level still visits every row each
// pass — only the order in which simultaneously-ready rows are settled
// changes, which affects the resulting CNOT pattern but never whether
// a reduction is found.
func WithOptimizeLevel(level int) Option {
	return func(o *Options) { o.optimizeLevel = level }
}

// WithBlockSize sets the block width used by level-0 block Gaussian
// elimination. Ignored at other optimize levels.
func WithBlockSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.blockSize = n
		}
	}
}

// WithFilterCX enables or disables suppression of CNOTs that would
// immediately cancel with the previously emitted one on the same
// qubit pair.
func WithFilterCX(v bool) Option {
	return func(o *Options) { o.filterCX = v }
}

// WithSortFrontier stabilizes frontier iteration order (by qubit
// index) so CNOT synthesis is deterministic across runs.
func WithSortFrontier(v bool) Option {
	return func(o *Options) { o.sortFrontier = v }
}

// WithSortNeighbors stabilizes back-neighbor iteration order (by
// vertex id) for the same reason as WithSortFrontier.
func WithSortNeighbors(v bool) Option {
	return func(o *Options) { o.sortNeighbors = v }
}

// WithPermuteQubits controls whether Extract resolves a residual
// input/output qubit permutation with SWAP gates at the start of the
// circuit (true) or leaves it to the caller to interpret (false).
func WithPermuteQubits(v bool) Option {
	return func(o *Options) { o.permuteQubits = v }
}

// WithCancel attaches a cooperative cancellation token; the main loop
// polls it once per round.
func WithCancel(tok *cancel.Token) Option {
	return func(o *Options) { o.cancel = tok }
}

// WithTrace installs a progress callback invoked once per round.
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

func (o *Options) cancelled() bool { return o.cancel.Requested() }

func (o *Options) logf(format string, args ...any) {
	if o.verbose {
		o.trace(format, args...)
	}
}

// yamlOptions is Options' plain-data mirror for YAML marshalling:
// Options itself carries unexported fields and callback/token handles
// that have no business in a config file.
type yamlOptions struct {
	OptimizeLevel int  `yaml:"optimize_level"`
	BlockSize     int  `yaml:"block_size"`
	FilterCX      bool `yaml:"filter_cx"`
	SortFrontier  bool `yaml:"sort_frontier"`
	SortNeighbors bool `yaml:"sort_neighbors"`
	PermuteQubits bool `yaml:"permute_qubits"`
}

// LoadYAML parses a YAML document into an Options, so extraction
// tuning can be read from a config file instead of only code literals.
func LoadYAML(data []byte) (*Options, error) {
	var y yamlOptions
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	o.optimizeLevel = y.OptimizeLevel
	if y.BlockSize > 0 {
		o.blockSize = y.BlockSize
	}
	o.filterCX = y.FilterCX
	o.sortFrontier = y.SortFrontier
	o.sortNeighbors = y.SortNeighbors
	o.permuteQubits = y.PermuteQubits
	return o, nil
}
