// SPDX-License-Identifier: MIT

package sl2c

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/plane"
)

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFinite ensures every entry of m is finite.
// Returns a wrapped ErrNaNInf otherwise.
func ValidateFinite(m Matrix) error {
	for _, z := range [4]complex128{m.A, m.B, m.C, m.D} {
		if !plane.IsFinite(z) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateUnimodular ensures |det(m) − 1| ≤ eps.
// Assumes m is finite (run ValidateFinite first).
func ValidateUnimodular(m Matrix, eps float64) error {
	if cmplx.Abs(m.Determinant()-1) > eps {
		return validatorErrorf("ValidateUnimodular", ErrNotUnimodular)
	}

	return nil
}

// ValidateInvertible ensures det(m) ≠ 0.
func ValidateInvertible(m Matrix) error {
	if plane.IsZero(m.Determinant()) {
		return validatorErrorf("ValidateInvertible", ErrSingular)
	}

	return nil
}
