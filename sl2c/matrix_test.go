package sl2c_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kleinian/plane"
	"github.com/katalvlaran/kleinian/sl2c"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// mustNew builds an SL(2,ℂ) matrix or fails the test.
func mustNew(t *testing.T, a, b, c, d complex128) sl2c.Matrix {
	t.Helper()
	m, err := sl2c.New(a, b, c, d)
	require.NoError(t, err, "fixture must be unimodular")

	return m
}

// TestNew_Validation checks the unit-determinant and finiteness guards.
func TestNew_Validation(t *testing.T) {
	_, err := sl2c.New(1, 0, complex(0, -2), 1)
	assert.NoError(t, err, "det = 1 is accepted")

	_, err = sl2c.New(complex(1, -1), 1, 1, complex(1, 1))
	assert.NoError(t, err, "(1−i)(1+i) − 1 = 1 is accepted")

	_, err = sl2c.New(2, 0, 0, 2)
	assert.ErrorIs(t, err, sl2c.ErrNotUnimodular, "det = 4 is rejected")

	_, err = sl2c.New(complex(math.NaN(), 0), 0, 0, 1)
	assert.ErrorIs(t, err, sl2c.ErrNaNInf, "NaN entries are rejected")

	_, err = sl2c.New(plane.Infinity(), 0, 0, 1)
	assert.ErrorIs(t, err, sl2c.ErrNaNInf, "∞ entries are rejected")
}

// TestApply_PoleAndInfinity verifies the extended-plane evaluation rules.
func TestApply_PoleAndInfinity(t *testing.T) {
	m := mustNew(t, 2, 1, 1, 1) // (2z+1)/(z+1)

	assert.True(t, plane.IsInf(m.Apply(-1)), "pole −d/c maps to ∞")
	assert.Equal(t, complex(2, 0), m.Apply(plane.Infinity()), "∞ maps to a/c")
	assert.Equal(t, complex(1.5, 0), m.Apply(1))

	translation := mustNew(t, 1, 3i, 0, 1)
	assert.True(t, plane.IsInf(translation.Apply(plane.Infinity())), "c = 0 fixes ∞")
	assert.Equal(t, complex(1, 3), translation.Apply(1))
}

// TestTraceDeterminant checks the basic invariants.
func TestTraceDeterminant(t *testing.T) {
	m := sl2c.FromEntries(complex(1, -1), 1, 1, complex(1, 1))
	assert.Equal(t, complex(2, 0), m.Trace())
	assert.Equal(t, complex(1, 0), m.Determinant())
}

// TestMul_Composition checks that Mul composes the maps right-to-left.
func TestMul_Composition(t *testing.T) {
	m := mustNew(t, 2, 1, 1, 1)
	n := mustNew(t, 1, 2i, 0, 1)
	z := complex(0.3, -0.7)

	got := m.Mul(n).Apply(z)
	want := m.Apply(n.Apply(z))
	assert.True(t, plane.ApproxEqual(got, want, tol), "(m·n)(z) = m(n(z))")

	assert.Equal(t, m, m.Mul(sl2c.Identity), "identity is neutral")
}

// TestInverse verifies m·m⁻¹ = I and the singular guard.
func TestInverse(t *testing.T) {
	m := mustNew(t, complex(1, 1), complex(0, 1), 1, 1)
	inv, err := m.Inverse()
	require.NoError(t, err)

	p := m.Mul(inv)
	assert.True(t, plane.ApproxEqual(p.A, 1, tol))
	assert.True(t, plane.ApproxEqual(p.B, 0, tol))
	assert.True(t, plane.ApproxEqual(p.C, 0, tol))
	assert.True(t, plane.ApproxEqual(p.D, 1, tol))

	// det = −1 conjugator: inverse still divides by the determinant.
	s := sl2c.FromEntries(0, 1, 1, complex(0, 1))
	sInv, err := s.Inverse()
	require.NoError(t, err)
	assert.Equal(t, sl2c.FromEntries(complex(0, -1), 1, 1, 0), sInv)

	_, err = sl2c.FromEntries(1, 2, 2, 4).Inverse()
	assert.ErrorIs(t, err, sl2c.ErrSingular)
}

// TestNormalize restores unit determinant after scaling drift.
func TestNormalize(t *testing.T) {
	m := mustNew(t, 2, 1, 1, 1).Scale(complex(1.5, 0.5))
	n, err := m.Normalize()
	require.NoError(t, err)
	assert.True(t, plane.ApproxEqual(n.Determinant(), 1, tol), "normalized det must be 1")

	z := complex(0.25, 2)
	assert.True(t, plane.ApproxEqual(m.Apply(z), n.Apply(z), tol), "scaling does not change the map")

	_, err = sl2c.FromEntries(0, 0, 0, 0).Normalize()
	assert.ErrorIs(t, err, sl2c.ErrSingular)
}

// TestConjugate checks that s·m·s⁻¹ moves fixed points along with s.
func TestConjugate(t *testing.T) {
	m := mustNew(t, complex(1, -1), 1, 1, complex(1, 1)) // fixes −i
	s := sl2c.FromEntries(0, 1, 1, complex(0, 1))        // sends −i to ∞

	c, err := m.Conjugate(s)
	require.NoError(t, err)
	assert.Equal(t, sl2c.FromEntries(1, 1, 0, 1), c, "conjugate is the unit translation")
}

// TestLinearArray checks the flattening order.
func TestLinearArray(t *testing.T) {
	m := sl2c.FromEntries(complex(1, 2), complex(3, 4), complex(5, 6), complex(7, 8))
	assert.Equal(t, [sl2c.LinearLength]float64{1, 2, 3, 4, 5, 6, 7, 8}, m.LinearArray())
}
