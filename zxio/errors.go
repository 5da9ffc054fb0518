// SPDX-License-Identifier: MIT
package zxio

import "errors"

var (
	// ErrMalformedLine is returned when a non-blank, non-comment line of
	// a .zx file does not have the minimum tag/id/qubit fields.
	ErrMalformedLine = errors.New("zxio: malformed vertex line")

	// ErrUnknownVertexTag is returned for a leading tag other than one
	// of I, O, Z, X, H.
	ErrUnknownVertexTag = errors.New("zxio: unknown vertex tag")

	// ErrUnknownEdgeTag is returned for a neighbor token whose edge tag
	// is neither S nor H.
	ErrUnknownEdgeTag = errors.New("zxio: unknown edge tag in neighbor list")

	// ErrNeighborNotYetSeen is returned when a neighbor token names a
	// file id that no line in the file declares at all.
	ErrNeighborNotYetSeen = errors.New("zxio: neighbor references an id not declared in the file")

	// ErrDuplicateVertexID is returned when two lines declare the same
	// vertex id.
	ErrDuplicateVertexID = errors.New("zxio: duplicate vertex id in file")
)
