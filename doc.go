// Package kleinian is a small kernel for SL(2,ℂ) matrices acting on the
// extended complex plane as Möbius transformations: it classifies a matrix
// and produces the geometry a renderer needs to draw it.
//
// 🚀 What is kleinian?
//
//	A pure-Go, allocation-light library that brings together:
//		• Extended plane helpers: ∞ sentinel, tolerance predicates, 2D vector ops
//		• SL(2,ℂ) matrices: apply, trace, inverse, normalize, conjugate
//		• Generalized circles: circles and half-planes, inversion, Möbius images
//		• Classification: parabolic, elliptic, hyperbolic, loxodromic
//		• Parabolic geometry: tangent bounding circles + a flat uniform block
//
// ✨ Why choose kleinian?
//
//   - Explicit numerics – every tolerance is a named Default* constant
//   - Total classifier – exactly one variant per successful call
//   - Pluggable diagnostics – an Observer or a *slog.Logger, silent by default
//   - Pure Go – no cgo, no GPU dependency
//
// Under the hood, everything is organized under four subpackages:
//
//	plane/   — complex128 as a point of the extended plane
//	sl2c/    — 2×2 complex matrices with unit determinant
//	gcircle/ — generalized circles, inversion, circumcircles
//	mobius/  — fixed points, Classify, BuildParabolic, UniformArray
//
// Quick example:
//
//	m, _ := sl2c.New(1, 0, -2i, 1)
//	c, _ := mobius.Classify(m)
//	fmt.Println(c.Kind) // parabolic
//
// Runnable demos live in examples/.
//
//	go get github.com/katalvlaran/kleinian
package kleinian
