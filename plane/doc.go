// Package plane provides helpers for complex128 values treated as points of
// the extended complex plane ℂ ∪ {∞}.
//
// Go already gives us complex arithmetic, the principal square root
// (cmplx.Sqrt) and magnitudes (cmplx.Abs). What it lacks is a single,
// agreed-upon point at infinity and a handful of 2-vector operations used
// by the geometry code:
//
//   - Infinity / IsInf: the ∞ sentinel and its detection.
//   - IsZero: exact zero test (no tolerance).
//   - IsReal: imaginary part within a tolerance of zero.
//   - Normalize: unit-length direction, error on zero.
//   - Dot, Rotate90: a complex number viewed as a 2D vector.
//   - Distance, AbsSq: metric helpers.
//
// Usage:
//
//	import "github.com/katalvlaran/kleinian/plane"
//
//	n, err := plane.Normalize(complex(3, 4)) // 0.6+0.8i
//	side := plane.Dot(p-ref, n)              // signed distance to a line
package plane
