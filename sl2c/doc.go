// Package sl2c implements 2×2 complex matrices acting as Möbius
// transformations z ↦ (az+b)/(cz+d) on the extended complex plane.
//
// The primary type is Matrix, a small immutable value: every operation
// returns a new Matrix. New enforces the SL(2,ℂ) invariant ad − bc = 1
// (within DefaultEpsilon); FromEntries builds an arbitrary invertible
// Möbius matrix without that check, for conjugators such as
// [[0, 1], [1, −p]] whose determinant is −1.
//
// ✨ Operations:
//   - Apply: Möbius evaluation, including the pole and ∞.
//   - Trace, Determinant
//   - Mul, Inverse, Scale
//   - Normalize: divide by √det to restore unit determinant after drift.
//   - LinearArray: [re a, im a, re b, im b, re c, im c, re d, im d].
//
// Usage:
//
//	m, err := sl2c.New(1, 0, complex(0, -2), 1)
//	if err != nil {
//	    // ErrNotUnimodular or ErrNaNInf
//	}
//	w := m.Apply(complex(0.5, 0))
package sl2c
