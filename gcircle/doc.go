// Package gcircle models generalized circles of the extended complex plane
// and the maps that send generalized circles to generalized circles.
//
// 🚀 What is a generalized circle?
//
//	A circle or a straight line; a line is a circle through ∞.  Here a line
//	always carries a side: a HalfPlane stores a boundary point, a unit
//	normal pointing to the *excluded* side, and the boundary direction
//	(normal rotated by +90°) used for sampling.
//
//	       ^ Normal (excluded side)
//	       |
//	-------+------->  BoundaryDir
//	///////////////   kept side
//
// ✨ Operations:
//   - InvertPoint: circle inversion / mirror reflection of a point.
//   - InvertShape: inversion of a whole shape across another one.
//   - ApplyMobius: image of a shape under a Möbius matrix.
//   - FromThreePoints: circumcircle of three points.
//
// Images are computed by sampling three boundary points, mapping them, and
// rebuilding the shape from the images: three non-collinear images give a
// Circle, collinear or infinite images give a HalfPlane whose excluded side
// follows the image of an interior probe point.
//
// Tolerances live in a Tolerance value; the package-level functions use
// DefaultTolerance.
package gcircle
