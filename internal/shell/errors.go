// SPDX-License-Identifier: MIT
package shell

import "errors"

var (
	// ErrNoCommand is returned for an empty input line.
	ErrNoCommand = errors.New("shell: no command given")

	// ErrUnknownCommand is returned for a verb Dispatch does not
	// recognize.
	ErrUnknownCommand = errors.New("shell: unknown command")

	// ErrNoFocus is returned by any command needing a focused graph
	// when the manager has none (a fresh shell, or the focused graph
	// was deleted and never re-checked-out).
	ErrNoFocus = errors.New("shell: no graph checked out")

	// ErrWrongArgCount is returned when a command receives too few or
	// too many arguments.
	ErrWrongArgCount = errors.New("shell: wrong number of arguments")

	// ErrUnknownVertexType is returned by "vertex add" for a type tag
	// other than I, O, Z, X, or H.
	ErrUnknownVertexType = errors.New("shell: unknown vertex type, want I, O, Z, X, or H")

	// ErrUnknownEdgeType is returned by "edge add"/"edge remove" for
	// an edge tag other than S or H.
	ErrUnknownEdgeType = errors.New("shell: unknown edge type, want S or H")

	// ErrUnknownTestFlag is returned by "test" for a flag other than
	// -valid, -empty, -graph-like, -identity.
	ErrUnknownTestFlag = errors.New("shell: unknown test flag")

	// ErrNoExtraction is returned by "extract step"/"extract print"
	// when no extraction is in progress on the focused graph.
	ErrNoExtraction = errors.New("shell: no extraction in progress, run extract to start one")
)
