package mobius

import (
	"fmt"

	"github.com/katalvlaran/kleinian/sl2c"
)

// Kind tags the variant of a Classification.
type Kind uint8

const (
	// KindParabolic: one fixed point, conjugate to a translation.
	KindParabolic Kind = iota
	// KindElliptic: conjugate to a rotation.
	KindElliptic
	// KindHyperbolic: conjugate to a real dilation.
	KindHyperbolic
	// KindLoxodromic: conjugate to a complex (spiral) dilation.
	KindLoxodromic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindParabolic:
		return "parabolic"
	case KindElliptic:
		return "elliptic"
	case KindHyperbolic:
		return "hyperbolic"
	case KindLoxodromic:
		return "loxodromic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Classification is the result of Classify. Kind selects which of
// Parabolic or Fixed is populated; the other is the zero value.
type Classification struct {
	Kind   Kind
	Source sl2c.Matrix

	Parabolic Parabolic   // KindParabolic
	Fixed     FixedPoints // KindElliptic, KindHyperbolic, KindLoxodromic
}

// Parabolic holds the parabolic variant.
//
// When Source.C = 0 the matrix is already a translation: Translation = b and
// Geometry is nil. Degenerate is set when the translation is zero (the
// identity up to sign); Geometry is nil then as well.
type Parabolic struct {
	Translation complex128
	Degenerate  bool
	Geometry    *ParabolicGeometry
}

// FixedPoints holds the two-fixed-point variants.
type FixedPoints struct {
	Plus, Minus complex128
	Multiplier  complex128 // k = tr²/2 − 1
}

// Conjugator returns the matrix sending Minus to 0 and Plus to ∞; in those
// coordinates the transformation is z ↦ λz.
func (f FixedPoints) Conjugator() sl2c.Matrix {
	return ZeroInfConjugator(f.Minus, f.Plus)
}

// Visitor receives exactly one call from Classification.Match.
type Visitor interface {
	VisitParabolic(p Parabolic)
	VisitElliptic(f FixedPoints)
	VisitHyperbolic(f FixedPoints)
	VisitLoxodromic(f FixedPoints)
}

// Match dispatches c to the method of v for its Kind.
// Returns ErrUnknownKind for an invalid tag.
func (c Classification) Match(v Visitor) error {
	switch c.Kind {
	case KindParabolic:
		v.VisitParabolic(c.Parabolic)
	case KindElliptic:
		v.VisitElliptic(c.Fixed)
	case KindHyperbolic:
		v.VisitHyperbolic(c.Fixed)
	case KindLoxodromic:
		v.VisitLoxodromic(c.Fixed)
	default:
		return fmt.Errorf("Match: %w", ErrUnknownKind)
	}

	return nil
}
