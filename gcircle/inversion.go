// SPDX-License-Identifier: MIT

package gcircle

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/plane"
)

// InvertPoint reflects p across s.
//
//   - Circle:    center + r²·(p − center)/|p − center|²; ∞ maps to the centre.
//   - HalfPlane: p − 2·((p − Point)·Normal)·Normal; ∞ stays ∞.
//
// Errors:
//   - ErrInversionCenter: p is the centre of the circle s.
//   - ErrUnknownKind: s carries an unknown tag.
func InvertPoint(s Shape, p complex128) (complex128, error) {
	switch s.Kind {
	case KindCircle:
		if p == s.Center {
			return 0, fmt.Errorf("InvertPoint: %w", ErrInversionCenter)
		}
		return invertOnCircle(s, p), nil
	case KindHalfPlane:
		return reflectOnLine(s, p), nil
	default:
		return 0, fmt.Errorf("InvertPoint: %w", ErrUnknownKind)
	}
}

// invertOnCircle is circle inversion on the extended plane: centre ↔ ∞.
func invertOnCircle(s Shape, p complex128) complex128 {
	if plane.IsInf(p) {
		return s.Center
	}
	d := p - s.Center
	lenSq := plane.AbsSq(d)
	if lenSq == 0 {
		return plane.Infinity()
	}

	return s.Center + plane.Scale(d, s.Radius*s.Radius/lenSq)
}

// reflectOnLine mirrors p across the boundary of the half-plane s.
func reflectOnLine(s Shape, p complex128) complex128 {
	if plane.IsInf(p) {
		return p
	}
	d := p - s.Point
	dp := plane.Dot(d, s.Normal)

	return s.Point + d - plane.Scale(s.Normal, 2*dp)
}

// InvertShape reflects other across s using DefaultTolerance.
func InvertShape(s, other Shape) (Shape, error) {
	return DefaultTolerance().InvertShape(s, other)
}

// InvertShape reflects other across s.
//
// Across a Circle the image follows the closed forms of inversion: a shape
// whose boundary passes through the centre of s (within Collinear, relative
// to the shape's scale) becomes a HalfPlane excluding the side that holds
// the centre, every other shape becomes a Circle.
//
// Across a HalfPlane three boundary points of other are mirrored and the
// image is rebuilt from them: a HalfPlane is sampled at its reference point
// and at −20 and +10 along BoundaryDir, a Circle at three points 45° apart
// from its centre's diagonals.
func (t Tolerance) InvertShape(s, other Shape) (Shape, error) {
	var (
		out Shape
		err error
	)
	switch s.Kind {
	case KindCircle:
		out, err = t.invertAcrossCircle(s, other)
	case KindHalfPlane:
		out, err = t.mirrorAcrossLine(s, other)
	default:
		err = ErrUnknownKind
	}
	if err != nil {
		return Shape{}, fmt.Errorf("InvertShape: %w", err)
	}

	return out, nil
}

// invertAcrossCircle is inversion in the circle s with centre o and radius R.
//
//	line at signed distance h from o → circle, centre o − n·R²/2h, radius R²/2|h|
//	line through o                   → itself
//	circle (c, ρ), |c − o| = d ≠ ρ   → circle, centre o + R²(c − o)/(d² − ρ²), radius R²ρ/|d² − ρ²|
//	circle through o                 → line at distance R²/2ρ, normal towards o
func (t Tolerance) invertAcrossCircle(s, other Shape) (Shape, error) {
	o, rr := s.Center, s.Radius*s.Radius
	switch other.Kind {
	case KindHalfPlane:
		h := plane.Dot(o-other.Point, other.Normal)
		if math.Abs(h) <= t.Collinear*s.Radius {
			return NewHalfPlane(o-plane.Scale(other.Normal, h), other.Normal)
		}
		return NewCircle(o-plane.Scale(other.Normal, rr/(2*h)), rr/(2*math.Abs(h)))
	case KindCircle:
		v := other.Center - o
		d := cmplx.Abs(v)
		if math.Abs(d-other.Radius) <= t.Collinear*math.Max(d, other.Radius) {
			if d == 0 {
				return Shape{}, ErrInversionCenter
			}
			u := plane.Scale(v, 1/d)
			return NewHalfPlane(o+plane.Scale(u, rr/(2*other.Radius)), -u)
		}
		k := (d - other.Radius) * (d + other.Radius)
		return NewCircle(o+plane.Scale(v, rr/k), rr*other.Radius/math.Abs(k))
	default:
		return Shape{}, ErrUnknownKind
	}
}

// mirrorAcrossLine reflects other across the boundary of the half-plane s
// by three-point sampling.
func (t Tolerance) mirrorAcrossLine(s, other Shape) (Shape, error) {
	var samples [3]complex128
	var ref, probe complex128
	switch other.Kind {
	case KindHalfPlane:
		samples = [3]complex128{
			other.Point,
			other.Point + plane.Scale(other.BoundaryDir, -20),
			other.Point + plane.Scale(other.BoundaryDir, 10),
		}
		ref = other.Point
		probe = other.Point - other.Normal
	case KindCircle:
		k := other.Radius * math.Sqrt2 / 2
		samples = [3]complex128{
			other.Center + complex(k, k),
			other.Center + complex(-k, -k),
			other.Center + complex(k, -k),
		}
		ref = samples[0]
		probe = other.Center
	default:
		return Shape{}, ErrUnknownKind
	}

	var images [3]complex128
	for i, p := range samples {
		images[i] = reflectOnLine(s, p)
	}

	return t.rebuild(images, reflectOnLine(s, ref), reflectOnLine(s, probe), t.collinearScaled)
}
