// SPDX-License-Identifier: MIT

package gcircle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kleinian/plane"
)

// FromThreePoints returns the circle through a, b and c using DefaultTolerance.
func FromThreePoints(a, b, c complex128) (Shape, error) {
	return DefaultTolerance().FromThreePoints(a, b, c)
}

// FromThreePoints returns the circle through a, b and c.
//
// The centre is the barycentric circumcentre: with side lengths
// lA = |b−c|, lB = |a−c|, lC = |a−b| the weights are
//
//	wA = lA²(lB² + lC² − lA²)
//	wB = lB²(lA² + lC² − lB²)
//	wC = lC²(lA² + lB² − lC²)
//
// and the centre is (wA·a + wB·b + wC·c) / (wA + wB + wC).
//
// Errors:
//   - ErrNonFinite: an input point is ∞ or NaN.
//   - ErrCollinear: the weight sum vanishes (collinear or repeated points).
func (t Tolerance) FromThreePoints(a, b, c complex128) (Shape, error) {
	if !plane.IsFinite(a) || !plane.IsFinite(b) || !plane.IsFinite(c) {
		return Shape{}, fmt.Errorf("FromThreePoints: %w", ErrNonFinite)
	}

	sqA := plane.AbsSq(b - c)
	sqB := plane.AbsSq(a - c)
	sqC := plane.AbsSq(a - b)
	wA := sqA * (sqB + sqC - sqA)
	wB := sqB * (sqA + sqC - sqB)
	wC := sqC * (sqA + sqB - sqC)
	denom := wA + wB + wC

	scale := (sqA + sqB + sqC) * (sqA + sqB + sqC)
	if scale == 0 || math.Abs(denom) <= t.Degenerate*scale {
		return Shape{}, fmt.Errorf("FromThreePoints: %w", ErrCollinear)
	}

	center := complex(
		(wA*real(a)+wB*real(b)+wC*real(c))/denom,
		(wA*imag(a)+wB*imag(b)+wC*imag(c))/denom,
	)

	return NewCircle(center, plane.Distance(center, a))
}
