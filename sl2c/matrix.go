// SPDX-License-Identifier: MIT

package sl2c

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/plane"
)

// DefaultEpsilon is the tolerance New allows on ad − bc = 1.
const DefaultEpsilon = 1e-9

// LinearLength is the number of reals produced by LinearArray.
const LinearLength = 8

// Matrix is the Möbius transformation z ↦ (A·z + B) / (C·z + D).
type Matrix struct {
	A, B, C, D complex128
}

// Identity is the identity transformation.
var Identity = Matrix{A: 1, B: 0, C: 0, D: 1}

// New returns the SL(2,ℂ) matrix [[a, b], [c, d]].
//
// Errors:
//   - ErrNaNInf: any entry is NaN or infinite.
//   - ErrNotUnimodular: |ad − bc − 1| > DefaultEpsilon.
func New(a, b, c, d complex128) (Matrix, error) {
	m := Matrix{A: a, B: b, C: c, D: d}
	if err := ValidateFinite(m); err != nil {
		return Matrix{}, fmt.Errorf("New: %w", err)
	}
	if err := ValidateUnimodular(m, DefaultEpsilon); err != nil {
		return Matrix{}, fmt.Errorf("New: %w", err)
	}

	return m, nil
}

// FromEntries returns [[a, b], [c, d]] without checking the determinant.
func FromEntries(a, b, c, d complex128) Matrix {
	return Matrix{A: a, B: b, C: c, D: d}
}

// Apply evaluates the transformation at z.
// The pole −D/C maps to ∞; ∞ maps to A/C, or to ∞ when C = 0.
func (m Matrix) Apply(z complex128) complex128 {
	if plane.IsInf(z) {
		if plane.IsZero(m.C) {
			return plane.Infinity()
		}
		return m.A / m.C
	}
	den := m.C*z + m.D
	if plane.IsZero(den) {
		return plane.Infinity()
	}

	return (m.A*z + m.B) / den
}

// Trace returns A + D.
func (m Matrix) Trace() complex128 {
	return m.A + m.D
}

// Determinant returns A·D − B·C.
func (m Matrix) Determinant() complex128 {
	return m.A*m.D - m.B*m.C
}

// Mul returns the product m·n, i.e. the transformation "apply n, then m".
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Scale multiplies every entry by k. The Möbius map is unchanged for k ≠ 0.
func (m Matrix) Scale(k complex128) Matrix {
	return Matrix{A: m.A * k, B: m.B * k, C: m.C * k, D: m.D * k}
}

// Inverse returns the matrix inverse adj(m)/det(m).
// Returns ErrSingular when det(m) = 0.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if plane.IsZero(det) {
		return Matrix{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}
	inv := 1 / det

	return Matrix{A: m.D * inv, B: -m.B * inv, C: -m.C * inv, D: m.A * inv}, nil
}

// Normalize rescales m by 1/√det(m) (principal root) so that the result has
// unit determinant. Returns ErrSingular when det(m) = 0.
func (m Matrix) Normalize() (Matrix, error) {
	det := m.Determinant()
	if plane.IsZero(det) {
		return Matrix{}, fmt.Errorf("Normalize: %w", ErrSingular)
	}

	return m.Scale(1 / cmplx.Sqrt(det)), nil
}

// Conjugate returns s·m·s⁻¹, the transformation m viewed in the coordinates
// given by s. Returns ErrSingular when s is not invertible.
func (m Matrix) Conjugate(s Matrix) (Matrix, error) {
	sInv, err := s.Inverse()
	if err != nil {
		return Matrix{}, fmt.Errorf("Conjugate: %w", err)
	}

	return s.Mul(m).Mul(sInv), nil
}

// LinearArray flattens m as [re A, im A, re B, im B, re C, im C, re D, im D].
func (m Matrix) LinearArray() [LinearLength]float64 {
	return [LinearLength]float64{
		real(m.A), imag(m.A),
		real(m.B), imag(m.B),
		real(m.C), imag(m.C),
		real(m.D), imag(m.D),
	}
}

// String renders m as [[a, b], [c, d]].
func (m Matrix) String() string {
	return fmt.Sprintf("[[%v, %v], [%v, %v]]", m.A, m.B, m.C, m.D)
}
