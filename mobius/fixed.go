// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/plane"
	"github.com/katalvlaran/kleinian/sl2c"
)

// FixPlus returns (a − d + √(tr² − 4)) / 2c, one root of cz² + (d−a)z − b = 0.
// Returns ErrNoFiniteFixedPoint when c = 0.
func FixPlus(m sl2c.Matrix) (complex128, error) {
	if plane.IsZero(m.C) {
		return 0, fmt.Errorf("FixPlus: %w", ErrNoFiniteFixedPoint)
	}

	return (m.A - m.D + rootTerm(m)) / (2 * m.C), nil
}

// FixMinus returns (a − d − √(tr² − 4)) / 2c, the other root.
// Returns ErrNoFiniteFixedPoint when c = 0.
func FixMinus(m sl2c.Matrix) (complex128, error) {
	if plane.IsZero(m.C) {
		return 0, fmt.Errorf("FixMinus: %w", ErrNoFiniteFixedPoint)
	}

	return (m.A - m.D - rootTerm(m)) / (2 * m.C), nil
}

// rootTerm is the principal √(tr² − 4).
func rootTerm(m sl2c.Matrix) complex128 {
	tr := m.Trace()
	return cmplx.Sqrt(tr*tr - 4)
}

// Discriminant returns (d − a)² + 4bc. For det = 1 this equals tr² − 4.
func Discriminant(m sl2c.Matrix) complex128 {
	da := m.D - m.A
	return da*da + m.B*m.C*4
}

// MultiplierInvariant returns k = tr²/2 − 1.
func MultiplierInvariant(m sl2c.Matrix) complex128 {
	tr := m.Trace()
	return tr*tr*0.5 - 1
}

// InfinityConjugator returns [[0, 1], [1, −p]], which sends p to ∞.
func InfinityConjugator(p complex128) sl2c.Matrix {
	return sl2c.FromEntries(0, 1, 1, -p)
}

// ZeroInfConjugator returns [[1, −zero], [1, −inf]], which sends zero to 0
// and inf to ∞.
func ZeroInfConjugator(zero, inf complex128) sl2c.Matrix {
	return sl2c.FromEntries(1, -zero, 1, -inf)
}
