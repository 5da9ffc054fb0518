// SPDX-License-Identifier: MIT
package simplify

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zxgo/zxgraph"
)

// StrategyStep is one declarative step of a StrategyConfig: apply the
// named rule to a fixed point (simp), or, when Rule is "h_rule",
// optionally run the vertex-count-aware hadamard_simp loop instead by
// setting HadamardAware.
type StrategyStep struct {
	Rule          string `yaml:"rule"`
	HadamardAware bool   `yaml:"hadamard_aware,omitempty"`
}

// StrategyConfig is a named strategy described as data instead of
// Go code, so a recipe can be loaded from a config file and run with
// Simplifier.Run rather than only choosing among the built-in named
// strategies. The shell's `optimize` verb takes only a built-in name.
type StrategyConfig struct {
	Name  string         `yaml:"name"`
	Steps []StrategyStep `yaml:"steps"`
}

// LoadStrategyConfig parses a YAML document into a StrategyConfig.
func LoadStrategyConfig(data []byte) (*StrategyConfig, error) {
	var cfg StrategyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Run executes every step of cfg in order against g, looping each
// step's rule to its own fixed point (or to hadamard_simp's
// vertex-count fixed point when HadamardAware is set) before moving
// to the next step. Unlike the named Go strategies, a StrategyConfig
// never repeats its whole step list; callers wanting an outer loop
// call Run repeatedly and stop once a call returns Result.Rewrites==0.
func (s *Simplifier) Run(g *zxgraph.ZXGraph, cfg *StrategyConfig, opts ...Option) (Result, error) {
	o := newOptions(opts)
	var res Result
	for _, step := range cfg.Steps {
		if o.cancelled() {
			return res, nil
		}
		r, ok := s.byName[step.Rule]
		if !ok {
			return res, ErrUnknownRule
		}
		if step.HadamardAware {
			res.add(hadamardSimp(g, r, o))
		} else {
			res.add(simp(g, r, o))
		}
	}
	return res, nil
}
