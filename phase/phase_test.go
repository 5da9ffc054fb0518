package phase_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/zxgo/phase"
)

// TestNew_Normalizes verifies construction reduces and normalizes into
// (-1, 1].
func TestNew_Normalizes(t *testing.T) {
	cases := []struct {
		num, den  int64
		wantNum   int64
		wantDen   int64
	}{
		{0, 1, 0, 1},
		{1, 1, 1, 1},   // pi stays pi (boundary +1)
		{2, 1, 0, 1},   // 2pi -> 0
		{3, 1, 1, 1},   // 3pi -> pi
		{-1, 1, 1, 1},  // -pi -> +pi (boundary)
		{1, 4, 1, 4},   // T phase unchanged
		{5, 4, -3, 4},  // 5/4 pi -> -3/4 pi
		{2, 4, 1, 2},   // reduces 2/4 -> 1/2
	}
	for _, c := range cases {
		p, err := phase.New(c.num, c.den)
		if err != nil {
			t.Fatalf("New(%d,%d): unexpected error %v", c.num, c.den, err)
		}
		if p.Numerator() != c.wantNum || p.Denominator() != c.wantDen {
			t.Errorf("New(%d,%d) = %d/%d, want %d/%d", c.num, c.den, p.Numerator(), p.Denominator(), c.wantNum, c.wantDen)
		}
	}
}

// TestNew_ZeroDenominator verifies the sentinel error contract.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := phase.New(1, 0)
	if !errors.Is(err, phase.ErrZeroDenominator) {
		t.Fatalf("New(1,0) error = %v, want ErrZeroDenominator", err)
	}
}

// TestAddSubNeg verifies arithmetic stays normalized and exact.
func TestAddSubNeg(t *testing.T) {
	a, _ := phase.New(3, 4) // 3/4 pi
	b, _ := phase.New(3, 4) // 3/4 pi
	sum := a.Add(b)         // 3/2 pi -> normalizes to -1/2 pi
	want, _ := phase.New(-1, 2)
	if !sum.Equal(want) {
		t.Errorf("Add = %v, want %v", sum, want)
	}

	diff := a.Sub(b)
	if !diff.Equal(phase.Zero) {
		t.Errorf("Sub of equal phases = %v, want Zero", diff)
	}

	neg := a.Neg()
	wantNeg, _ := phase.New(-3, 4)
	if !neg.Equal(wantNeg) {
		t.Errorf("Neg = %v, want %v", neg, wantNeg)
	}
}

// TestClassification verifies Clifford/T classification helpers.
func TestClassification(t *testing.T) {
	zero := phase.Zero
	pi := phase.Pi
	halfPi, _ := phase.New(1, 2)
	tPhase, _ := phase.New(1, 4)

	if !zero.IsClifford() || !pi.IsClifford() || !halfPi.IsClifford() {
		t.Error("expected 0, pi, pi/2 to be Clifford")
	}
	if tPhase.IsClifford() {
		t.Error("pi/4 must not classify as Clifford")
	}
	if !tPhase.IsT() {
		t.Error("pi/4 must classify as a T phase")
	}
	if !halfPi.IsCliffordHalf() {
		t.Error("pi/2 must classify as IsCliffordHalf")
	}
}

// TestFromFloat_RecoversSimpleFractions verifies the Stern-Brocot search
// recovers exact small-denominator phases from their float approximations.
func TestFromFloat_RecoversSimpleFractions(t *testing.T) {
	cases := []struct {
		theta   float64
		wantNum int64
		wantDen int64
	}{
		{0.25, 1, 4},
		{0.5, 1, 2},
		{1.0, 1, 1},
		{0.0, 0, 1},
	}
	for _, c := range cases {
		p, err := phase.FromFloat(c.theta, 1e-6)
		if err != nil {
			t.Fatalf("FromFloat(%v): unexpected error %v", c.theta, err)
		}
		if p.Numerator() != c.wantNum || p.Denominator() != c.wantDen {
			t.Errorf("FromFloat(%v) = %d/%d, want %d/%d", c.theta, p.Numerator(), p.Denominator(), c.wantNum, c.wantDen)
		}
	}
}
