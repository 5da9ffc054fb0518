// SPDX-License-Identifier: MIT
// Package phase implements exact rational phase arithmetic modulo 2,
// interpreted as multiples of pi. Every spider in a ZXGraph carries a
// Phase; this package is the one place phase normalization and
// arithmetic live, so that no rewrite rule can hand back an
// un-normalized value.
//
// Error policy: only sentinel variables are exposed; callers branch
// with errors.Is. Sentinels are never wrapped with formatted strings
// at definition site.
package phase

import "errors"

// ErrZeroDenominator indicates a Phase was constructed with a zero
// denominator, which has no rational interpretation.
var ErrZeroDenominator = errors.New("phase: zero denominator")

// ErrNoRationalApproximation indicates FromFloat could not find a
// p/q within tolerance under the configured search bound.
var ErrNoRationalApproximation = errors.New("phase: no rational approximation within tolerance")
