// SPDX-License-Identifier: MIT
package phase

import "math"

// sternBrocotBound caps the mediant search depth so a pathological
// (irrational-looking) theta cannot spin FromFloat forever; chosen high
// enough to resolve any phase a real circuit compiler would hand it
// (denominators up into the low thousands) while staying O(bound).
const sternBrocotBound = 4096

// FromFloat approximates theta (in units of pi; i.e. the angle is
// theta*pi radians) by the rational p/q closest to it within tolerance
// eps, found via a Stern-Brocot mediant search bounded to
// sternBrocotBound steps. Returns ErrNoRationalApproximation if no
// mediant within the search bound lands within eps of theta.
//
// Complexity: O(sternBrocotBound) per call, each step O(1).
func FromFloat(theta, eps float64) (Phase, error) {
	if eps <= 0 {
		eps = 1e-9
	}
	// Reduce theta into [0, 2) up front; fromRat will re-normalize the
	// final rational into (-1, 1] regardless, but searching over a
	// bounded range keeps the mediant search well-posed.
	whole := math.Floor(theta / 2)
	x := theta - 2*whole

	// Stern-Brocot mediant search for the fraction nearest x within [0,2).
	// The search runs over [0, 2] rather than the unit interval;
	// loA/loB and hiA/hiB bracket x from below/above.
	loA, loB := int64(0), int64(1)
	hiA, hiB := int64(2), int64(1)
	// No mediant ever equals a starting bracket, so 0/1 and 2/1 are
	// scored as candidates up front.
	bestNum, bestDen := loA, loB
	bestErr := x
	if hiErr := float64(hiA) - x; hiErr < bestErr {
		bestNum, bestDen, bestErr = hiA, hiB, hiErr
	}

	for i := 0; i < sternBrocotBound && bestErr > eps; i++ {
		medA, medB := loA+hiA, loB+hiB
		val := float64(medA) / float64(medB)
		diff := math.Abs(val - x)
		if diff < bestErr {
			bestErr = diff
			bestNum, bestDen = medA, medB
		}
		if diff <= eps {
			break
		}
		if val < x {
			loA, loB = medA, medB
		} else {
			hiA, hiB = medA, medB
		}
	}
	if bestErr > eps {
		return Phase{}, ErrNoRationalApproximation
	}
	num := bestNum + int64(whole)*2*bestDen
	return New(num, bestDen)
}
