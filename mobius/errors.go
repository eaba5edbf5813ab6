// SPDX-License-Identifier: MIT
// Package mobius: sentinel errors. Operations wrap them with their name;
// callers match with errors.Is.

package mobius

import "errors"

var (
	// ErrNoFiniteFixedPoint is returned by FixPlus/FixMinus when c = 0:
	// the quadratic degenerates and a fixed point sits at ∞.
	ErrNoFiniteFixedPoint = errors.New("mobius: c = 0, fixed point is at infinity")

	// ErrDegenerateParabolic indicates a parabolic matrix whose conjugated
	// translation is zero, so no bounding circles exist.
	ErrDegenerateParabolic = errors.New("mobius: degenerate parabolic, zero translation")

	// ErrNotParabolic is returned by BuildParabolic for matrices with D ≠ 0.
	ErrNotParabolic = errors.New("mobius: matrix is not parabolic")

	// ErrUnknownKind indicates a Classification with an unrecognised tag.
	ErrUnknownKind = errors.New("mobius: unknown transformation kind")
)
