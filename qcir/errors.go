// SPDX-License-Identifier: MIT
package qcir

import "errors"

var (
	// ErrBadQubit indicates a gate referenced a qubit index outside [0, n).
	ErrBadQubit = errors.New("qcir: qubit index out of range")

	// ErrDuplicateQubit indicates a gate's qubit list repeats an index.
	ErrDuplicateQubit = errors.New("qcir: duplicate qubit in gate")

	// ErrArity indicates the qubit count passed to AddGate does not match
	// the gate kind's fixed arity.
	ErrArity = errors.New("qcir: wrong number of qubits for gate")

	// ErrNotCircuitLike indicates FromZX was given a ZXGraph this
	// package's scoped inverse cannot recognize as the output of ToZX;
	// general ZXGraphs need the extractor package instead.
	ErrNotCircuitLike = errors.New("qcir: graph is not recognizable as a gate circuit")

	// ErrUnsupportedGate indicates a .qasm line named a gate outside the
	// minimal subset this package's reader understands.
	ErrUnsupportedGate = errors.New("qcir: unsupported gate in qasm subset")
)
