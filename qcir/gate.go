// SPDX-License-Identifier: MIT
package qcir

import "github.com/katalvlaran/zxgo/phase"

// Kind names one gate in the minimal gate set this package round-trips
// through ZX-calculus: the Clifford+T generators plus the two
// continuous-phase rotations ZX itself is built on.
type Kind uint8

const (
	H Kind = iota
	X
	Z
	S
	Sdg
	T
	Tdg
	RZ
	RX
	CX
	CZ
	SWAP
)

// String names the Kind the way the qasm subset and the DAG's debug
// output print it.
func (k Kind) String() string {
	switch k {
	case H:
		return "h"
	case X:
		return "x"
	case Z:
		return "z"
	case S:
		return "s"
	case Sdg:
		return "sdg"
	case T:
		return "t"
	case Tdg:
		return "tdg"
	case RZ:
		return "rz"
	case RX:
		return "rx"
	case CX:
		return "cx"
	case CZ:
		return "cz"
	case SWAP:
		return "swap"
	default:
		return "?"
	}
}

// arity is the fixed number of qubits a Kind's gate acts on.
func (k Kind) arity() int {
	switch k {
	case CX, CZ, SWAP:
		return 2
	default:
		return 1
	}
}

// isPhaseGate reports whether the Kind carries a continuous phase
// parameter (RZ/RX) rather than a fixed one baked into the Kind itself.
func (k Kind) isPhaseGate() bool {
	return k == RZ || k == RX
}

// fixedPhase returns the phase a non-parametric single-qubit Kind
// corresponds to when read as a Z- or X-spider, and whether it is
// Z-axis (true) or X-axis (false) rotation. Only meaningful for
// X, Z, S, Sdg, T, Tdg; every other Kind returns ok=false.
func (k Kind) fixedPhase() (ph phase.Phase, zAxis bool, ok bool) {
	switch k {
	case X:
		return phase.NewInt(1), false, true
	case Z:
		return phase.NewInt(1), true, true
	case S:
		p, _ := phase.New(1, 2)
		return p, true, true
	case Sdg:
		p, _ := phase.New(-1, 2)
		return p, true, true
	case T:
		p, _ := phase.New(1, 4)
		return p, true, true
	case Tdg:
		p, _ := phase.New(-1, 4)
		return p, true, true
	default:
		return phase.Zero, true, false
	}
}

// FixedPhase exports fixedPhase for callers outside this package (the
// extractor needs it to recognize a Clifford+T phase as one of the
// named gates rather than falling back to a general RZ/RX).
func (k Kind) FixedPhase() (ph phase.Phase, zAxis bool, ok bool) { return k.fixedPhase() }

// Gate is one operation applied to one or two qubits, with a phase
// argument meaningful only for RZ/RX.
type Gate struct {
	Kind   Kind
	Qubits []int
	Phase  phase.Phase
}

// Control returns the first qubit of a two-qubit gate (the control for
// CX, either endpoint for CZ/SWAP).
func (g Gate) Control() int { return g.Qubits[0] }

// Target returns the second qubit of a two-qubit gate.
func (g Gate) Target() int { return g.Qubits[1] }
