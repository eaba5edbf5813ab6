// SPDX-License-Identifier: MIT

package plane

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultRealEpsilon is the tolerance IsReal callers use unless configured.
const DefaultRealEpsilon = 1e-6

// Infinity returns the point at infinity.
// Any value with an infinite component is treated as ∞ by IsInf, so there is
// exactly one point at infinity in the extended plane.
func Infinity() complex128 {
	return cmplx.Inf()
}

// IsInf reports whether z is the point at infinity.
func IsInf(z complex128) bool {
	return cmplx.IsInf(z)
}

// IsFinite reports whether z is neither ∞ nor NaN.
func IsFinite(z complex128) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}

// IsZero reports whether z is exactly 0. No tolerance is applied.
func IsZero(z complex128) bool {
	return real(z) == 0 && imag(z) == 0
}

// IsReal reports whether the imaginary part of z is within tol of zero.
func IsReal(z complex128, tol float64) bool {
	return scalar.EqualWithinAbs(imag(z), 0, tol)
}

// AbsSq returns |z|².
func AbsSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Distance returns |a − b|.
func Distance(a, b complex128) float64 {
	return cmplx.Abs(a - b)
}

// Scale multiplies z by the real factor k.
func Scale(z complex128, k float64) complex128 {
	return complex(real(z)*k, imag(z)*k)
}

// Dot returns the dot product of a and b viewed as 2D vectors.
func Dot(a, b complex128) float64 {
	return real(a)*real(b) + imag(a)*imag(b)
}

// Cross returns the z-component of the 2D cross product a × b.
func Cross(a, b complex128) float64 {
	return real(a)*imag(b) - imag(a)*real(b)
}

// Rotate90 rotates z by +90° (counter-clockwise).
func Rotate90(z complex128) complex128 {
	return complex(-imag(z), real(z))
}

// Normalize returns z / |z|.
// Returns ErrZeroLength if z is zero, infinite or NaN.
func Normalize(z complex128) (complex128, error) {
	if !IsFinite(z) {
		return 0, ErrZeroLength
	}
	l := cmplx.Abs(z)
	if l == 0 {
		return 0, ErrZeroLength
	}

	return Scale(z, 1/l), nil
}

// ApproxEqual reports whether a and b agree component-wise within tol.
// Two infinities are equal to each other and to nothing else.
func ApproxEqual(a, b complex128, tol float64) bool {
	ai, bi := IsInf(a), IsInf(b)
	if ai || bi {
		return ai && bi
	}

	return scalar.EqualWithinAbs(real(a), real(b), tol) &&
		scalar.EqualWithinAbs(imag(a), imag(b), tol)
}
