package zx2ts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/internal/cancel"
	"github.com/katalvlaran/zxgo/zx2ts"
	"github.com/katalvlaran/zxgo/zxgraph"
)

func TestEvaluate_IdentityCircuitIsIdentityMatrix(t *testing.T) {
	g := zxgraph.NewIdentity(2)
	m, err := zx2ts.ToMatrix(g, nil)
	require.NoError(t, err)
	require.Len(t, m, 4)
	for r := range m {
		for c := range m[r] {
			want := complex128(0)
			if r == c {
				want = 1
			}
			require.InDelta(t, real(want), real(m[r][c]), 1e-9, "r=%d c=%d", r, c)
			require.InDelta(t, imag(want), imag(m[r][c]), 1e-9, "r=%d c=%d", r, c)
		}
	}
}

// TestEvaluate_CNOTMatchesTruthTableUpToGlobalScalar checks the
// single-CNOT fixture's tensor evaluation against the gate's truth
// table |c,t> -> |c, t XOR c>, row/col order (qubit0 major, qubit1
// minor). The ZX-calculus CNOT diagram's naive evaluation carries a
// global scalar factor the graph's own Scalar() field is not updated
// to reflect (only rewrite rules that change normalization touch it),
// so entries are compared for nonzero-pattern and mutual magnitude
// rather than an absolute expected value.
func TestEvaluate_CNOTMatchesTruthTableUpToGlobalScalar(t *testing.T) {
	g := zxgraph.NewCNOT()
	m, err := zx2ts.ToMatrix(g, nil)
	require.NoError(t, err)
	require.Len(t, m, 4)

	var magnitude float64
	for c := 0; c < 2; c++ {
		for tb := 0; tb < 2; tb++ {
			col := c*2 + tb
			for cp := 0; cp < 2; cp++ {
				for tp := 0; tp < 2; tp++ {
					row := cp*2 + tp
					v := m[row][col]
					expectNonzero := cp == c && tp == (tb^c)
					mag := real(v)*real(v) + imag(v)*imag(v)
					if expectNonzero {
						require.Greater(t, mag, 1e-12, "row=%d col=%d should be nonzero", row, col)
						if magnitude == 0 {
							magnitude = mag
						} else {
							require.InDelta(t, magnitude, mag, 1e-9, "row=%d col=%d", row, col)
						}
					} else {
						require.InDelta(t, 0, mag, 1e-9, "row=%d col=%d should be zero", row, col)
					}
				}
			}
		}
	}
}

func TestEvaluate_CancellationIsObserved(t *testing.T) {
	g := zxgraph.NewCNOT()
	var tok cancel.Token
	tok.Request()
	_, err := zx2ts.Evaluate(g, &tok)
	require.ErrorIs(t, err, zx2ts.ErrCancelled)
}
