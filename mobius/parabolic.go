// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"

	"github.com/katalvlaran/kleinian/gcircle"
	"github.com/katalvlaran/kleinian/plane"
	"github.com/katalvlaran/kleinian/sl2c"
)

// UniformLength is the number of floats produced by UniformArray:
// 3 shapes × 5, conjugator 8, translation 2, conjugator inverse 8.
const UniformLength = 3*5 + sl2c.LinearLength + 2 + sl2c.LinearLength

// ParabolicGeometry is the drawing data of a parabolic matrix with c ≠ 0.
//
// Inner and Outer are tangent to each other at FixedPoint; Outer is the one
// with the larger radius, and a HalfPlane always counts as the larger.
// MutualInversionImage is Inner reflected across Outer.
type ParabolicGeometry struct {
	FixedPoint        complex128
	Conjugator        sl2c.Matrix // sends FixedPoint to ∞
	ConjugatorInverse sl2c.Matrix
	Conjugated        sl2c.Matrix // Conjugator·m·Conjugator⁻¹, det normalized to 1
	Translation       complex128  // Conjugated.B

	Inner, Outer         gcircle.Shape
	MutualInversionImage gcircle.Shape
}

// BuildParabolic derives the bounding geometry of a parabolic matrix.
//
// Steps:
//  1. fix = FixMinus(m); s = InfinityConjugator(fix).
//  2. t = s·m·s⁻¹, rescaled by 1/√det(t); translation = t.b.
//  3. hp1 = HalfPlane(0, translation), hp2 = HalfPlane(translation/2, −translation).
//  4. Map both through s⁻¹, order by radius, reflect inner across outer.
//
// Errors:
//   - ErrNoFiniteFixedPoint: c = 0 (m already is a translation).
//   - ErrNotParabolic: the discriminant is not exactly zero.
//   - ErrDegenerateParabolic: the conjugated translation is zero.
//   - gcircle errors when the sampled images degenerate.
func BuildParabolic(m sl2c.Matrix, tol gcircle.Tolerance) (*ParabolicGeometry, error) {
	if plane.IsZero(m.C) {
		return nil, fmt.Errorf("BuildParabolic: %w", ErrNoFiniteFixedPoint)
	}
	if !plane.IsZero(Discriminant(m)) {
		return nil, fmt.Errorf("BuildParabolic: %w", ErrNotParabolic)
	}

	fix, err := FixMinus(m)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	s := InfinityConjugator(fix)
	sInv, err := s.Inverse()
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	t, err := m.Conjugate(s)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	if t, err = t.Normalize(); err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	translation := t.B
	if plane.IsZero(translation) {
		return nil, fmt.Errorf("BuildParabolic: %w", ErrDegenerateParabolic)
	}

	hp1, err := gcircle.NewHalfPlane(0, translation)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	hp2, err := gcircle.NewHalfPlane(translation/2, -translation)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	c1, err := tol.ApplyMobius(hp1, sInv)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}
	c2, err := tol.ApplyMobius(hp2, sInv)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}

	inner, outer := c2, c1
	if c1.EffectiveRadius() < c2.EffectiveRadius() {
		inner, outer = c1, c2
	}
	image, err := tol.InvertShape(outer, inner)
	if err != nil {
		return nil, fmt.Errorf("BuildParabolic: %w", err)
	}

	return &ParabolicGeometry{
		FixedPoint:           fix,
		Conjugator:           s,
		ConjugatorInverse:    sInv,
		Conjugated:           t,
		Translation:          translation,
		Inner:                inner,
		Outer:                outer,
		MutualInversionImage: image,
	}, nil
}

// UniformArray flattens g for shader upload:
//
//	[Inner, Outer, MutualInversionImage], 5 floats each:
//	    circle:     0, cx, cy, r, r²
//	    half-plane: 1, px, py, nx, ny
//	Conjugator: 8 floats (re/im of a, b, c, d)
//	Translation: 2 floats
//	ConjugatorInverse: 8 floats
func (g *ParabolicGeometry) UniformArray() [UniformLength]float32 {
	var out [UniformLength]float32
	i := 0
	put := func(vs ...float64) {
		for _, v := range vs {
			out[i] = float32(v)
			i++
		}
	}

	for _, s := range [3]gcircle.Shape{g.Inner, g.Outer, g.MutualInversionImage} {
		if s.IsHalfPlane() {
			put(1, real(s.Point), imag(s.Point), real(s.Normal), imag(s.Normal))
			continue
		}
		put(0, real(s.Center), imag(s.Center), s.Radius, s.Radius*s.Radius)
	}
	conj := g.Conjugator.LinearArray()
	put(conj[:]...)
	put(real(g.Translation), imag(g.Translation))
	inv := g.ConjugatorInverse.LinearArray()
	put(inv[:]...)

	return out
}
