// SPDX-License-Identifier: MIT
package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested tensor shape is invalid
	// (a non-positive dimension, or mismatched axes/dims lengths).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates an index tuple outside the tensor's shape.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrUnknownAxis indicates a named axis that does not exist on the
	// tensor it was requested against.
	ErrUnknownAxis = errors.New("tensor: unknown axis")

	// ErrAxisDimMismatch indicates two tensors share an axis name but
	// disagree on its dimension, so they cannot be contracted over it.
	ErrAxisDimMismatch = errors.New("tensor: axis dimension mismatch")

	// ErrDuplicateAxis indicates the same axis name was used twice in
	// a single tensor's axis list.
	ErrDuplicateAxis = errors.New("tensor: duplicate axis name")
)
