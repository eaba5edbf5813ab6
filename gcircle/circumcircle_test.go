package gcircle_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/kleinian/gcircle"
	"github.com/katalvlaran/kleinian/plane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromThreePoints_OnCircle recovers a known circle from three of its points.
func TestFromThreePoints_OnCircle(t *testing.T) {
	center, r := complex(1, 2), 3.0
	pts := [3]complex128{}
	for i, theta := range []float64{0.3, 2.0, 4.1} {
		pts[i] = center + cmplx.Rect(r, theta)
	}

	c, err := gcircle.FromThreePoints(pts[0], pts[1], pts[2])
	require.NoError(t, err)
	assert.Equal(t, gcircle.KindCircle, c.Kind)
	assert.InDelta(t, r, c.Radius, tol)
	assert.True(t, plane.ApproxEqual(center, c.Center, tol))
}

// TestFromThreePoints_RightTriangle: the hypotenuse is a diameter.
func TestFromThreePoints_RightTriangle(t *testing.T) {
	c, err := gcircle.FromThreePoints(0, 4, 3i)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, c.Radius, tol)
	assert.True(t, plane.ApproxEqual(complex(2, 1.5), c.Center, tol))
}

// TestFromThreePoints_Collinear must signal a domain error, not NaN.
func TestFromThreePoints_Collinear(t *testing.T) {
	_, err := gcircle.FromThreePoints(0, 1, 2)
	assert.ErrorIs(t, err, gcircle.ErrCollinear, "points on the real axis")

	_, err = gcircle.FromThreePoints(complex(1, 1), complex(2, 3), complex(3, 5))
	assert.ErrorIs(t, err, gcircle.ErrCollinear, "points on a slanted line")

	_, err = gcircle.FromThreePoints(1i, 1i, 1i)
	assert.ErrorIs(t, err, gcircle.ErrCollinear, "coincident points")

	_, err = gcircle.FromThreePoints(0, 1, complex(math.NaN(), 0))
	assert.ErrorIs(t, err, gcircle.ErrNonFinite)
}

// TestFromThreePoints_Tolerance shows the degenerate threshold is configurable.
func TestFromThreePoints_Tolerance(t *testing.T) {
	// weight ratio h²/9 ≈ 4.4e-15 sits just below DefaultDegenerateEpsilon.
	a, b, c := complex128(0), complex128(1), complex(2, 2e-7)

	_, err := gcircle.FromThreePoints(a, b, c)
	assert.ErrorIs(t, err, gcircle.ErrCollinear, "nearly flat triangle is degenerate by default")

	loose := gcircle.DefaultTolerance()
	loose.Degenerate = 1e-20
	circle, err := loose.FromThreePoints(a, b, c)
	require.NoError(t, err)
	assert.InDelta(t, 5e6, circle.Radius, 5e5, "R = abc/4K ≈ 2/(4·1e-7)")
}
