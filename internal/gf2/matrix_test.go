package gf2_test

import (
	"testing"

	"github.com/katalvlaran/zxgo/internal/gf2"
)

func TestRowReduce_RankOfIdentityIsFull(t *testing.T) {
	m, err := gf2.NewMatrixFromRows([][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}
	if rank := m.Rank(); rank != 3 {
		t.Fatalf("expected rank 3, got %d", rank)
	}
}

func TestRowReduce_DependentRowsReduceRank(t *testing.T) {
	m, err := gf2.NewMatrixFromRows([][]bool{
		{true, true, false},
		{false, true, true},
		{true, false, true}, // row0 XOR row1
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}
	if rank := m.Rank(); rank != 2 {
		t.Fatalf("expected rank 2, got %d", rank)
	}
}

func TestSolve_FindsConsistentSolution(t *testing.T) {
	// x0 xor x1 = 1, x1 xor x2 = 0
	m, err := gf2.NewMatrixFromRows([][]bool{
		{true, true, false},
		{false, true, true},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}
	x, err := m.Solve([]bool{true, false})
	if err != nil {
		t.Fatalf("Solve: unexpected error %v", err)
	}
	if (x[0] != x[1]) != true || (x[1] != x[2]) != false {
		t.Fatalf("solution %v does not satisfy the system", x)
	}
}

func TestSolve_InconsistentSystemErrors(t *testing.T) {
	m, err := gf2.NewMatrixFromRows([][]bool{
		{true, true},
		{true, true},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}
	if _, err := m.Solve([]bool{true, false}); err != gf2.ErrInconsistent {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestNullSpaceBasis_MatchesRankNullityTheorem(t *testing.T) {
	m, err := gf2.NewMatrixFromRows([][]bool{
		{true, true, false, false},
		{false, true, true, false},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}
	basis := m.NullSpaceBasis()
	if got, want := len(basis), m.Cols()-m.Rank(); got != want {
		t.Fatalf("expected %d null-space basis vectors, got %d", want, got)
	}
	for _, vec := range basis {
		for i := 0; i < m.Rows(); i++ {
			var acc bool
			for j := 0; j < m.Cols(); j++ {
				if m.Get(i, j) && vec[j] {
					acc = !acc
				}
			}
			if acc {
				t.Fatalf("basis vector %v is not in the null space (row %d)", vec, i)
			}
		}
	}
}
