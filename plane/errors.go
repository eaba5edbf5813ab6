package plane

import "errors"

var (
	// ErrZeroLength indicates that a direction was requested for a vector of
	// zero (or non-finite) length.
	ErrZeroLength = errors.New("plane: cannot normalize zero-length vector")
)
