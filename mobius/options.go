// SPDX-License-Identifier: MIT

// Package mobius: functional configuration of the classifier's numeric policy
// and diagnostics sink. Defaults are constants; WithX constructors panic on
// nonsensical values (programmer error); gatherOptions resolves a list.

package mobius

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/kleinian/gcircle"
	"github.com/katalvlaran/kleinian/plane"
)

// Numeric policy defaults.
const (
	// DefaultEllipticEpsilon is the bound in the signed test |k| − 1 < ε.
	DefaultEllipticEpsilon = 1e-6

	// DefaultRealEpsilon decides whether k is real (hyperbolic vs loxodromic).
	DefaultRealEpsilon = plane.DefaultRealEpsilon

	// DefaultCollinearEpsilon bounds the cross product of three sampled
	// images below which they are treated as collinear.
	DefaultCollinearEpsilon = gcircle.DefaultCollinearEpsilon

	// DefaultDegenerateEpsilon is the relative circumcircle degeneracy bound.
	DefaultDegenerateEpsilon = gcircle.DefaultDegenerateEpsilon
)

const (
	panicEllipticInvalid   = "mobius: WithEllipticEpsilon: eps must be finite"
	panicRealInvalid       = "mobius: WithRealEpsilon: eps must be finite, non-negative"
	panicCollinearInvalid  = "mobius: WithCollinearEpsilon: eps must be finite, non-negative"
	panicDegenerateInvalid = "mobius: WithDegenerateEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration of a Classifier.
type Options struct {
	ellipticEps float64
	realEps     float64
	shapes      gcircle.Tolerance
	observer    Observer
}

// WithEllipticEpsilon sets ε in the elliptic test |k| − 1 < ε.
// Negative values are allowed (they tighten the test); NaN/Inf panic.
func WithEllipticEpsilon(eps float64) Option {
	if isNonFinite(eps) {
		panic(panicEllipticInvalid)
	}

	return func(o *Options) { o.ellipticEps = eps }
}

// WithRealEpsilon sets the tolerance on Im k for the hyperbolic test.
func WithRealEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicRealInvalid)
	}

	return func(o *Options) { o.realEps = eps }
}

// WithCollinearEpsilon sets the collinearity bound used when mapping shapes.
func WithCollinearEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicCollinearInvalid)
	}

	return func(o *Options) { o.shapes.Collinear = eps }
}

// WithDegenerateEpsilon sets the circumcircle degeneracy bound.
func WithDegenerateEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicDegenerateInvalid)
	}

	return func(o *Options) { o.shapes.Degenerate = eps }
}

// WithObserver installs a diagnostics sink. nil restores the silent default.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = NewSlogObserver(nil)
		}
		o.observer = obs
	}
}

// WithLogger is shorthand for WithObserver(NewSlogObserver(l)).
func WithLogger(l *slog.Logger) Option {
	return WithObserver(NewSlogObserver(l))
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		ellipticEps: DefaultEllipticEpsilon,
		realEps:     DefaultRealEpsilon,
		shapes:      gcircle.DefaultTolerance(),
		observer:    NewSlogObserver(nil),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
