// SPDX-License-Identifier: MIT
package simplify

import "errors"

var (
	// ErrUnknownStrategy is returned when a named or yaml-loaded
	// strategy does not match any entry in the registry.
	ErrUnknownStrategy = errors.New("simplify: unknown strategy name")

	// ErrUnknownRule is returned when a StrategyConfig step names a
	// rule not present in the catalog.
	ErrUnknownRule = errors.New("simplify: unknown rule name")
)
