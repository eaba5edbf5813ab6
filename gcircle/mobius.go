// SPDX-License-Identifier: MIT

package gcircle

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/plane"
	"github.com/katalvlaran/kleinian/sl2c"
)

// ApplyMobius maps s through m using DefaultTolerance.
func ApplyMobius(s Shape, m sl2c.Matrix) (Shape, error) {
	return DefaultTolerance().ApplyMobius(s, m)
}

// ApplyMobius returns the image of s under the Möbius map m.
//
// A HalfPlane is sampled at Point + {2, −4, 6}·BoundaryDir; its interior
// probe is Point − Normal. A Circle is sampled at three points 120° apart;
// its interior probe is the centre. The three images are then classified:
//
//   - any image at ∞, or the three images collinear → HalfPlane through
//     m(Point) (or the first finite image when m(Point) = ∞), normal
//     perpendicular to the image chord and pointing away from the image of
//     the probe;
//   - otherwise → the circumcircle of the images.
func (t Tolerance) ApplyMobius(s Shape, m sl2c.Matrix) (Shape, error) {
	var samples [3]complex128
	var ref, probe complex128
	switch s.Kind {
	case KindHalfPlane:
		samples = [3]complex128{
			s.Point + plane.Scale(s.BoundaryDir, 2),
			s.Point + plane.Scale(s.BoundaryDir, -4),
			s.Point + plane.Scale(s.BoundaryDir, 6),
		}
		ref = s.Point
		probe = s.Point - s.Normal
	case KindCircle:
		for i := range samples {
			samples[i] = s.Center + cmplx.Rect(s.Radius, float64(i)*2*math.Pi/3)
		}
		ref = samples[0]
		probe = s.Center
	default:
		return Shape{}, fmt.Errorf("ApplyMobius: %w", ErrUnknownKind)
	}

	var images [3]complex128
	for i, p := range samples {
		images[i] = m.Apply(p)
	}
	out, err := t.rebuild(images, m.Apply(ref), m.Apply(probe), t.collinear)
	if err != nil {
		return Shape{}, fmt.Errorf("ApplyMobius: %w", err)
	}

	return out, nil
}

// rebuild reconstructs a generalized circle from three boundary images.
// ref is the image of a boundary reference point and probe the image of a
// point on the kept side of the source shape. collinear decides between a
// HalfPlane and the circumcircle when all images are finite.
func (t Tolerance) rebuild(images [3]complex128, ref, probe complex128, collinear func([3]complex128) bool) (Shape, error) {
	finite := make([]complex128, 0, len(images))
	for _, p := range images {
		if plane.IsFinite(p) {
			finite = append(finite, p)
		}
	}
	if len(finite) < 2 {
		return Shape{}, ErrCollinear
	}

	chord := finite[0] - finite[1]
	if len(finite) == len(images) && !collinear(images) {
		return t.FromThreePoints(images[0], images[1], images[2])
	}

	if !plane.IsFinite(ref) {
		ref = finite[0]
	}
	normal, err := plane.Normalize(plane.Rotate90(chord))
	if err != nil {
		return Shape{}, ErrCollinear
	}
	if plane.IsFinite(probe) && plane.Dot(probe-ref, normal) > 0 {
		normal = -normal
	}

	return NewHalfPlane(ref, normal)
}

// collinear decides whether three finite images lie on one line: exactly
// horizontal, exactly vertical, or with |cross| below the tolerance.
func (t Tolerance) collinear(p [3]complex128) bool {
	v, w := p[0]-p[1], p[2]-p[0]
	if axisAligned(v, w) {
		return true
	}

	return math.Abs(plane.Cross(w, v)) < t.Collinear
}

// collinearScaled is collinear with the cross product taken relative to
// |v|·|w|, the sine of the angle between the chords.
func (t Tolerance) collinearScaled(p [3]complex128) bool {
	v, w := p[0]-p[1], p[2]-p[0]
	if axisAligned(v, w) {
		return true
	}

	return math.Abs(plane.Cross(w, v)) < t.Collinear*cmplx.Abs(v)*cmplx.Abs(w)
}

// axisAligned reports two chords that are both exactly horizontal or both
// exactly vertical.
func axisAligned(v, w complex128) bool {
	return (imag(v) == 0 && imag(w) == 0) || (real(v) == 0 && real(w) == 0)
}
