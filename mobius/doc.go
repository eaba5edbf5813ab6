// Package mobius classifies SL(2,ℂ) matrices acting as Möbius
// transformations and derives the geometry needed to draw them.
//
// 🚀 What does it compute?
//
//	For a matrix m = [[a, b], [c, d]] with ad − bc = 1 the transformation
//	z ↦ (az+b)/(cz+d) is exactly one of:
//	  • Parabolic: one fixed point; conjugate to a translation.
//	  • Elliptic: two fixed points; conjugate to a rotation.
//	  • Hyperbolic: two fixed points; conjugate to a real dilation.
//	  • Loxodromic: two fixed points; conjugate to a spiral dilation.
//
// ⚙️ Decision procedure (Classify):
//
//  1. D = (d − a)² + 4bc.
//  2. c = 0 or D = 0 (exactly)          → Parabolic.
//  3. k = tr²/2 − 1, tr = a + d.
//  4. |k| − 1 < EllipticEpsilon         → Elliptic.
//  5. Im k within RealEpsilon of zero   → Hyperbolic.
//  6. otherwise                         → Loxodromic.
//
// Step 4 compares the signed value |k| − 1, so every k with |k| < 1 is
// Elliptic, including non-real k. Step 2 uses exact equality while every
// other branch is tolerance based. Both are kept as-is and pinned by tests.
//
// For a parabolic matrix with c ≠ 0, BuildParabolic conjugates m to a pure
// translation t = s·m·s⁻¹ (s sends the fixed point to ∞), places two
// half-planes perpendicular to the translation in that frame, maps them back
// with s⁻¹, and reports the two tangent bounding circles plus the image of
// the inner one reflected across the outer one. UniformArray flattens that
// geometry into the fixed 33-float layout consumed by shaders.
//
// Usage:
//
//	m, _ := sl2c.New(1, 0, complex(0, -2), 1)
//	c, err := mobius.Classify(m, mobius.WithLogger(slog.Default()))
//	if err != nil {
//	    // malformed input (NaN entries, singular matrix) or degenerate geometry
//	}
//	switch c.Kind {
//	case mobius.KindParabolic:
//	    if g := c.Parabolic.Geometry; g != nil {
//	        draw(g.Inner, g.Outer, g.MutualInversionImage)
//	    }
//	case mobius.KindElliptic, mobius.KindHyperbolic, mobius.KindLoxodromic:
//	    mark(c.Fixed.Plus, c.Fixed.Minus)
//	}
//
// A Classifier is immutable; one value may classify matrices from many
// goroutines.
package mobius
