// SPDX-License-Identifier: MIT

package mobius

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/plane"
	"github.com/katalvlaran/kleinian/sl2c"
)

// Classifier classifies matrices under a fixed numeric policy.
// It holds no mutable state.
type Classifier struct {
	opts Options
}

// NewClassifier resolves opts over the defaults.
func NewClassifier(opts ...Option) *Classifier {
	return &Classifier{opts: gatherOptions(opts...)}
}

// Classify is NewClassifier(opts...).Classify(m).
func Classify(m sl2c.Matrix, opts ...Option) (Classification, error) {
	return NewClassifier(opts...).Classify(m)
}

// Classify determines the transformation type of m and its geometry.
//
// A matrix whose determinant has drifted from 1 by more than
// sl2c.DefaultEpsilon is rescaled by 1/√det first; Source still reports m.
//
// Errors:
//   - sl2c.ErrNaNInf, sl2c.ErrSingular: malformed input.
//   - gcircle errors: parabolic geometry could not be rebuilt.
//
// A degenerate parabolic (zero translation) is not an error: the result has
// Parabolic.Degenerate set and the observer is notified.
func (c *Classifier) Classify(m sl2c.Matrix) (Classification, error) {
	if err := sl2c.ValidateFinite(m); err != nil {
		return Classification{}, fmt.Errorf("Classify: %w", err)
	}
	if err := sl2c.ValidateInvertible(m); err != nil {
		return Classification{}, fmt.Errorf("Classify: %w", err)
	}
	n := m
	if sl2c.ValidateUnimodular(m, sl2c.DefaultEpsilon) != nil {
		var err error
		if n, err = m.Normalize(); err != nil {
			return Classification{}, fmt.Errorf("Classify: %w", err)
		}
	}

	var (
		out Classification
		err error
	)
	if plane.IsZero(n.C) || plane.IsZero(Discriminant(n)) {
		out, err = c.parabolic(n)
	} else {
		out, err = c.twoFixedPoints(n)
	}
	if err != nil {
		return Classification{}, fmt.Errorf("Classify: %w", err)
	}
	out.Source = m
	c.opts.observer.Classified(out)

	return out, nil
}

// parabolic fills the parabolic variant.
func (c *Classifier) parabolic(m sl2c.Matrix) (Classification, error) {
	out := Classification{Kind: KindParabolic}
	if plane.IsZero(m.C) {
		out.Parabolic.Translation = m.B
		if plane.IsZero(m.B) {
			out.Parabolic.Degenerate = true
			c.opts.observer.Degenerate(m, ErrDegenerateParabolic)
		}
		return out, nil
	}

	g, err := BuildParabolic(m, c.opts.shapes)
	switch {
	case errors.Is(err, ErrDegenerateParabolic):
		out.Parabolic.Degenerate = true
		c.opts.observer.Degenerate(m, err)
		return out, nil
	case err != nil:
		return Classification{}, err
	}
	out.Parabolic.Translation = g.Translation
	out.Parabolic.Geometry = g

	return out, nil
}

// twoFixedPoints decides between elliptic, hyperbolic and loxodromic.
// The elliptic test is the signed |k| − 1 < ε, not ||k| − 1| < ε.
func (c *Classifier) twoFixedPoints(m sl2c.Matrix) (Classification, error) {
	k := MultiplierInvariant(m)

	var kind Kind
	switch {
	case cmplx.Abs(k)-1 < c.opts.ellipticEps:
		kind = KindElliptic
	case plane.IsReal(k, c.opts.realEps):
		kind = KindHyperbolic
	default:
		kind = KindLoxodromic
	}

	plus, err := FixPlus(m)
	if err != nil {
		return Classification{}, err
	}
	minus, err := FixMinus(m)
	if err != nil {
		return Classification{}, err
	}

	return Classification{
		Kind:  kind,
		Fixed: FixedPoints{Plus: plus, Minus: minus, Multiplier: k},
	}, nil
}
