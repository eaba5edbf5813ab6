package gcircle

import "errors"

var (
	// ErrCollinear indicates a circumcircle was requested for collinear or
	// coincident points. The caller should have produced a HalfPlane instead.
	ErrCollinear = errors.New("gcircle: points are collinear, no circumcircle")

	// ErrInversionCenter indicates inversion of a circle's own centre.
	ErrInversionCenter = errors.New("gcircle: cannot invert the centre of a circle")

	// ErrZeroNormal indicates a HalfPlane normal of zero length.
	ErrZeroNormal = errors.New("gcircle: half-plane normal must be non-zero")

	// ErrInvalidRadius indicates a negative or NaN circle radius.
	ErrInvalidRadius = errors.New("gcircle: radius must be finite and non-negative")

	// ErrNonFinite indicates that a finite point was required but ∞ or NaN was given.
	ErrNonFinite = errors.New("gcircle: point must be finite")

	// ErrUnknownKind indicates a Shape with an unrecognised Kind tag.
	ErrUnknownKind = errors.New("gcircle: unknown shape kind")
)
