package mobius_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kleinian/sl2c"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// mustNew builds an SL(2,ℂ) fixture or fails the test.
func mustNew(t testing.TB, a, b, c, d complex128) sl2c.Matrix {
	t.Helper()
	m, err := sl2c.New(a, b, c, d)
	require.NoError(t, err, "fixture must be unimodular")

	return m
}

// withTrace returns [[tr, −1], [1, 0]], a unimodular matrix with trace tr
// and c ≠ 0, convenient for walking the classification thresholds.
func withTrace(t testing.TB, tr complex128) sl2c.Matrix {
	t.Helper()

	return mustNew(t, tr, -1, 1, 0)
}

// Reference fixtures.
var (
	// m1 and m2 are both parabolic with c ≠ 0.
	m1 = sl2c.FromEntries(1, 0, complex(0, -2), 1)
	m2 = sl2c.FromEntries(complex(1, -1), 1, 1, complex(1, 1))

	// elliptic: trace 1, order 3.
	ell = sl2c.FromEntries(0, -1, 1, 1)
	// hyperbolic: trace 3.
	hyp = sl2c.FromEntries(2, 1, 1, 1)
	// loxodromic: trace 2 + i.
	lox = sl2c.FromEntries(complex(1, 1), 1i, 1, 1)
)

// sqrt is a shorthand for building traces at a given tr².
func sqrt(x float64) complex128 { return complex(math.Sqrt(x), 0) }
