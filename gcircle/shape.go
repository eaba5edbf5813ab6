// SPDX-License-Identifier: MIT

package gcircle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kleinian/plane"
)

// Kind tags the variant held by a Shape.
type Kind uint8

const (
	// KindCircle is an ordinary circle: Center and Radius are valid.
	KindCircle Kind = iota

	// KindHalfPlane is a line through ∞ with a side: Point, Normal and
	// BoundaryDir are valid.
	KindHalfPlane
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindHalfPlane:
		return "HalfPlane"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape is a generalized circle.
//
// Only the fields of the active Kind are meaningful; construct values with
// NewCircle or NewHalfPlane so that the HalfPlane invariants hold
// (|Normal| = 1, BoundaryDir ⟂ Normal).
type Shape struct {
	Kind Kind

	// KindCircle
	Center complex128
	Radius float64

	// KindHalfPlane
	Point       complex128 // a point on the boundary line
	Normal      complex128 // unit normal, points to the excluded side
	BoundaryDir complex128 // Normal rotated by +90°
}

// NewCircle returns the circle |z − center| = r.
func NewCircle(center complex128, r float64) (Shape, error) {
	if !plane.IsFinite(center) {
		return Shape{}, fmt.Errorf("NewCircle: %w", ErrNonFinite)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return Shape{}, fmt.Errorf("NewCircle: %w", ErrInvalidRadius)
	}

	return Shape{Kind: KindCircle, Center: center, Radius: r}, nil
}

// NewHalfPlane returns the half-plane bounded by the line through p
// perpendicular to normal; normal (any non-zero length) points to the
// excluded side.
func NewHalfPlane(p, normal complex128) (Shape, error) {
	if !plane.IsFinite(p) {
		return Shape{}, fmt.Errorf("NewHalfPlane: %w", ErrNonFinite)
	}
	n, err := plane.Normalize(normal)
	if err != nil {
		return Shape{}, fmt.Errorf("NewHalfPlane: %w", ErrZeroNormal)
	}

	return Shape{
		Kind:        KindHalfPlane,
		Point:       p,
		Normal:      n,
		BoundaryDir: plane.Rotate90(n),
	}, nil
}

// IsHalfPlane reports whether s is a HalfPlane.
func (s Shape) IsHalfPlane() bool { return s.Kind == KindHalfPlane }

// EffectiveRadius returns Radius for a circle and +Inf for a half-plane.
func (s Shape) EffectiveRadius() float64 {
	if s.Kind == KindHalfPlane {
		return math.Inf(1)
	}

	return s.Radius
}

// String renders the active variant.
func (s Shape) String() string {
	switch s.Kind {
	case KindCircle:
		return fmt.Sprintf("Circle{center: %v, r: %g}", s.Center, s.Radius)
	case KindHalfPlane:
		return fmt.Sprintf("HalfPlane{p: %v, normal: %v}", s.Point, s.Normal)
	default:
		return s.Kind.String()
	}
}

// ApproxEqual reports whether a and b describe the same shape within tol.
// Half-planes are equal when their normals agree and each reference point
// lies on the other's boundary line.
func ApproxEqual(a, b Shape, tol float64) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindCircle:
		return plane.ApproxEqual(a.Center, b.Center, tol) &&
			math.Abs(a.Radius-b.Radius) <= tol
	case KindHalfPlane:
		return plane.ApproxEqual(a.Normal, b.Normal, tol) &&
			math.Abs(plane.Dot(b.Point-a.Point, a.Normal)) <= tol
	default:
		return false
	}
}
