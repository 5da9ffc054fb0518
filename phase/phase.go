// Package phase: Phase type and its normalized rational arithmetic.
//
// Purpose:
//   - Represent a rational multiple of pi, p/q*pi, exactly.
//   - Normalize every value to the half-open interval (-1, 1] (i.e. modulo
//     2), so that equality after construction or arithmetic is always a
//     plain struct comparison on reduced numerator/denominator.
//
// Complexity: every operation below is O(log(max(|p|,|q|))), dominated by
// big.Rat's GCD reduction.
//
// AI-Hints:
//   - Never construct a Phase struct literal directly outside this file;
//     always go through New/NewInt/Zero/FromFloat so normalization is
//     guaranteed.
//   - Denominator() is always a positive power-of-two-free-of-that-
//     constraint rational; for the Clifford/T classification use
//     IsClifford/IsT, not a hand-rolled Denominator() == 4 check, since
//     normalization keeps the fraction reduced.
package phase

import (
	"fmt"
	"math/big"
)

// Phase is a rational number p/q, always stored in lowest terms with a
// positive denominator, interpreted as p/q * pi and normalized modulo 2
// into (-1, 1].
type Phase struct {
	num, den int64
}

// Zero is the identity phase (0 * pi).
var Zero = Phase{num: 0, den: 1}

// Pi is the phase pi (i.e. numerator 1, denominator 1).
var Pi = Phase{num: 1, den: 1}

// New constructs a normalized Phase representing (num/den) * pi.
// Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Phase, error) {
	if den == 0 {
		return Phase{}, ErrZeroDenominator
	}
	r := big.NewRat(num, den)
	return fromRat(r), nil
}

// NewInt constructs the Phase k*pi for an integer k (e.g. NewInt(1) is pi,
// NewInt(0) is the identity).
func NewInt(k int64) Phase {
	return fromRat(big.NewRat(k, 1))
}

// fromRat normalizes an arbitrary rational into (-1, 1] and reduces it.
//
// The canonical representative of r's class modulo 2 is r - 2k where
// k = ceil((r-1)/2); this is the unique integer shift landing r in the
// half-open interval (-1, 1], closed on the +1 end so that pi itself
// (and every odd multiple of pi) normalizes to +1 rather than -1.
func fromRat(r *big.Rat) Phase {
	t := new(big.Rat).Sub(r, big.NewRat(1, 1))
	denom2 := new(big.Int).Mul(t.Denom(), big.NewInt(2))
	q, rem := new(big.Int).DivMod(t.Num(), denom2, new(big.Int))
	if rem.Sign() != 0 {
		q.Add(q, big.NewInt(1)) // ceil
	}
	shifted := new(big.Rat).Sub(r, new(big.Rat).Mul(big.NewRat(2, 1), new(big.Rat).SetInt(q)))
	return Phase{num: shifted.Num().Int64(), den: shifted.Denom().Int64()}
}

// rat returns the value as a *big.Rat for internal arithmetic.
func (p Phase) rat() *big.Rat { return big.NewRat(p.num, p.den) }

// Numerator returns the reduced numerator (may be negative).
func (p Phase) Numerator() int64 { return p.num }

// Denominator returns the reduced, always-positive denominator.
func (p Phase) Denominator() int64 { return p.den }

// IsZero reports whether the phase is the identity 0*pi.
func (p Phase) IsZero() bool { return p.num == 0 }

// IsPi reports whether the phase is exactly pi.
func (p Phase) IsPi() bool { return p.num == 1 && p.den == 1 }

// IsZeroOrPi reports membership in {0, pi}, the Pauli phases.
func (p Phase) IsZeroOrPi() bool { return p.IsZero() || p.IsPi() }

// IsCliffordHalf reports whether the phase is +-pi/2, the local
// complementation / pivot-eligible phases beyond {0, pi}.
func (p Phase) IsCliffordHalf() bool { return p.den == 2 && (p.num == 1 || p.num == -1) }

// IsClifford reports whether the denominator is 1 or 2 (phase in
// {0, pi/2, pi, -pi/2} after normalization).
func (p Phase) IsClifford() bool { return p.den == 1 || p.den == 2 }

// IsT reports whether the phase has denominator 4, i.e. contributes to
// T-count.
func (p Phase) IsT() bool { return p.den == 4 }

// Add returns p + q, normalized.
func (p Phase) Add(q Phase) Phase { return fromRat(new(big.Rat).Add(p.rat(), q.rat())) }

// Sub returns p - q, normalized.
func (p Phase) Sub(q Phase) Phase { return fromRat(new(big.Rat).Sub(p.rat(), q.rat())) }

// Neg returns -p, normalized.
func (p Phase) Neg() Phase { return fromRat(new(big.Rat).Neg(p.rat())) }

// Mul returns p scaled by the integer k, normalized.
func (p Phase) Mul(k int64) Phase {
	return fromRat(new(big.Rat).Mul(p.rat(), big.NewRat(k, 1)))
}

// Div returns p scaled by 1/k, normalized. Returns ErrZeroDenominator if
// k == 0.
func (p Phase) Div(k int64) (Phase, error) {
	if k == 0 {
		return Phase{}, ErrZeroDenominator
	}
	return fromRat(new(big.Rat).Mul(p.rat(), big.NewRat(1, k))), nil
}

// Equal reports exact equality after normalization (no floating
// tolerance: two Phases are equal iff their reduced p/q agree).
func (p Phase) Equal(q Phase) bool { return p.num == q.num && p.den == q.den }

// String renders the phase as "0", "π" or "-π" for those values, "kπ"
// for any other integer k, and "p/qπ" otherwise.
func (p Phase) String() string {
	if p.den == 1 {
		if p.num == 0 {
			return "0"
		}
		if p.num == 1 {
			return "π"
		}
		if p.num == -1 {
			return "-π"
		}
		return fmt.Sprintf("%dπ", p.num)
	}
	return fmt.Sprintf("%d/%dπ", p.num, p.den)
}

// ToFloat64 returns the phase as a float64 multiple of pi (not
// multiplied by math.Pi itself; callers wanting radians should
// multiply the result by math.Pi).
func (p Phase) ToFloat64() float64 {
	f, _ := p.rat().Float64()
	return f
}
