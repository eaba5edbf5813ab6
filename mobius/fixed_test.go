package mobius_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/kleinian/mobius"
	"github.com/katalvlaran/kleinian/plane"
	"github.com/katalvlaran/kleinian/sl2c"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixedPoints_AreFixed: m(FixPlus) = FixPlus and m(FixMinus) = FixMinus.
func TestFixedPoints_AreFixed(t *testing.T) {
	a, b, c := complex(3, 2), complex(1, -1), complex128(2)
	generic := mustNew(t, a, b, c, (1+b*c)/a)

	for name, m := range map[string]sl2c.Matrix{
		"elliptic": ell, "hyperbolic": hyp, "loxodromic": lox,
		"parabolic-m1": m1, "parabolic-m2": m2, "generic": generic,
	} {
		t.Run(name, func(t *testing.T) {
			plus, err := mobius.FixPlus(m)
			require.NoError(t, err)
			minus, err := mobius.FixMinus(m)
			require.NoError(t, err)

			assert.True(t, plane.ApproxEqual(plus, m.Apply(plus), tol), "m(%v) = %v", plus, m.Apply(plus))
			assert.True(t, plane.ApproxEqual(minus, m.Apply(minus), tol), "m(%v) = %v", minus, m.Apply(minus))
		})
	}
}

// TestFixedPoints_Closed checks the closed form on the elliptic fixture.
func TestFixedPoints_Closed(t *testing.T) {
	plus, err := mobius.FixPlus(ell)
	require.NoError(t, err)
	minus, err := mobius.FixMinus(ell)
	require.NoError(t, err)

	root3 := cmplx.Sqrt(-3)
	assert.True(t, plane.ApproxEqual((-1+root3)/2, plus, 1e-15))
	assert.True(t, plane.ApproxEqual((-1-root3)/2, minus, 1e-15))
}

// TestFixedPoints_ZeroC must fail loudly instead of dividing by zero.
func TestFixedPoints_ZeroC(t *testing.T) {
	tr := mustNew(t, 1, 5, 0, 1)

	_, err := mobius.FixPlus(tr)
	assert.ErrorIs(t, err, mobius.ErrNoFiniteFixedPoint)
	_, err = mobius.FixMinus(tr)
	assert.ErrorIs(t, err, mobius.ErrNoFiniteFixedPoint)
}

// TestDiscriminant_EqualsTraceForm: for det = 1, D = tr² − 4.
func TestDiscriminant_EqualsTraceForm(t *testing.T) {
	for _, m := range []sl2c.Matrix{ell, hyp, lox, m1, m2} {
		tr := m.Trace()
		assert.True(t, plane.ApproxEqual(tr*tr-4, mobius.Discriminant(m), 1e-12), "matrix %v", m)
	}
	assert.Equal(t, complex128(0), mobius.Discriminant(m1), "m1 discriminant is exactly zero")
	assert.Equal(t, complex128(0), mobius.Discriminant(m2), "m2 discriminant is exactly zero")
}

// TestMultiplierInvariant checks k = tr²/2 − 1.
func TestMultiplierInvariant(t *testing.T) {
	assert.Equal(t, complex(-0.5, 0), mobius.MultiplierInvariant(ell))
	assert.Equal(t, complex(3.5, 0), mobius.MultiplierInvariant(hyp))
	assert.True(t, plane.ApproxEqual(complex(0.5, 2), mobius.MultiplierInvariant(lox), 1e-15))
}

// TestZeroInfConjugator_Diagonalizes sends Minus to 0 and Plus to ∞, so the
// conjugated hyperbolic matrix is diagonal.
func TestZeroInfConjugator_Diagonalizes(t *testing.T) {
	plus, err := mobius.FixPlus(hyp)
	require.NoError(t, err)
	minus, err := mobius.FixMinus(hyp)
	require.NoError(t, err)

	s := mobius.ZeroInfConjugator(minus, plus)
	assert.True(t, plane.ApproxEqual(0, s.Apply(minus), tol))
	assert.True(t, plane.IsInf(s.Apply(plus)))

	d, err := hyp.Conjugate(s)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(d.B), tol)
	assert.InDelta(t, 0, cmplx.Abs(d.C), tol)
}

// TestInfinityConjugator sends the point to ∞.
func TestInfinityConjugator(t *testing.T) {
	p := complex(0.25, -3)
	s := mobius.InfinityConjugator(p)
	assert.True(t, plane.IsInf(s.Apply(p)))
	assert.Equal(t, complex(-1, 0), s.Determinant())
}
