// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
package gf2

import "errors"

var (
	// ErrBadShape is returned when a requested matrix shape is invalid.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates incompatible row/column counts between
	// two matrices or a matrix and a vector.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrInconsistent is returned by Solve when the linear system has no
	// solution over GF(2).
	ErrInconsistent = errors.New("gf2: inconsistent system")
)
