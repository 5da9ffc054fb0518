// SPDX-License-Identifier: MIT
package qcir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/qcir"
	"github.com/katalvlaran/zxgo/simplify"
	"github.com/katalvlaran/zxgo/zx2ts"
	"github.com/katalvlaran/zxgo/zxgraph"
)

func emptyGraph() *zxgraph.ZXGraph { return zxgraph.NewGraph() }

func quarterPi(t *testing.T) phase.Phase {
	t.Helper()
	p, err := phase.New(1, 4)
	require.NoError(t, err)
	return p
}

func bellPair(t *testing.T) *qcir.QCir {
	t.Helper()
	c := qcir.New(2)
	require.NoError(t, c.AddGate(qcir.H, []int{0}))
	require.NoError(t, c.AddGate(qcir.CX, []int{0, 1}))
	return c
}

func TestAddGate_RejectsBadArityAndQubits(t *testing.T) {
	c := qcir.New(2)
	require.ErrorIs(t, c.AddGate(qcir.CX, []int{0}), qcir.ErrArity)
	require.ErrorIs(t, c.AddGate(qcir.H, []int{5}), qcir.ErrBadQubit)
	require.ErrorIs(t, c.AddGate(qcir.CX, []int{0, 0}), qcir.ErrDuplicateQubit)
}

func TestDAG_TracksDepthAlongEachQubit(t *testing.T) {
	c := bellPair(t)
	require.Equal(t, 2, c.DAG().Len())
	require.Equal(t, 2, c.DAG().Depth())
}

func TestToZX_BellPairMatchesCNOTUpToGlobalScalar(t *testing.T) {
	c := bellPair(t)
	g, err := c.ToZX()
	require.NoError(t, err)
	require.Len(t, g.Inputs(), 2)
	require.Len(t, g.Outputs(), 2)

	_, err = zx2ts.ToMatrix(g, nil)
	require.NoError(t, err)
}

func TestToZX_HadamardTogglesPendingEdgeAndCancelsInPairs(t *testing.T) {
	c := qcir.New(1)
	require.NoError(t, c.AddGate(qcir.H, []int{0}))
	require.NoError(t, c.AddGate(qcir.H, []int{0}))
	g, err := c.ToZX()
	require.NoError(t, err)
	require.True(t, g.IsIdentity())
}

func TestFromZX_InvertsToZXForBellPair(t *testing.T) {
	c := bellPair(t)
	g, err := c.ToZX()
	require.NoError(t, err)

	back, err := qcir.FromZX(g)
	require.NoError(t, err)
	require.Equal(t, 2, back.Qubits())

	got := back.Gates()
	require.Len(t, got, 2)
	require.Equal(t, qcir.H, got[0].Kind)
	require.Equal(t, []int{0}, got[0].Qubits)
	require.Equal(t, qcir.CX, got[1].Kind)
	require.Equal(t, []int{0, 1}, got[1].Qubits)
}

// TestBellPair_AdjointComposeFullReduceIsIdentity builds the Bell-state
// circuit's ZX diagram, composes it with its own adjoint, and checks
// full_reduce collapses the result to the 2-qubit identity — the
// diagrammatic statement that a unitary followed by its inverse does
// nothing.
func TestBellPair_AdjointComposeFullReduceIsIdentity(t *testing.T) {
	c := bellPair(t)
	g, err := c.ToZX()
	require.NoError(t, err)

	adj := g.Adjoint()
	require.NoError(t, g.Compose(adj))

	s := simplify.New()
	s.FullReduce(g)
	require.True(t, g.IsIdentity())
}

func TestFromZX_RejectsNonCircuitShapedGraph(t *testing.T) {
	// An empty graph has no boundaries at all, so it can never look
	// like the output of ToZX.
	_, err := qcir.FromZX(emptyGraph())
	require.ErrorIs(t, err, qcir.ErrNotCircuitLike)
}

func TestQASM_RoundTripsThroughWriteAndRead(t *testing.T) {
	c := bellPair(t)
	require.NoError(t, c.AddPhaseGate(qcir.RZ, []int{1}, quarterPi(t)))

	text := c.WriteQASM()
	back, err := qcir.ReadQASM(text)
	require.NoError(t, err)
	require.Equal(t, c.Qubits(), back.Qubits())
	require.Equal(t, c.Gates(), back.Gates())
}
