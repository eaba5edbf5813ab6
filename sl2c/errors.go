// SPDX-License-Identifier: MIT
// Package sl2c: sentinel errors. Callers match them with errors.Is; operations
// wrap them with the operation name via fmt.Errorf("Op: %w", ErrX).

package sl2c

import "errors"

var (
	// ErrNotUnimodular is returned by New when ad − bc differs from 1 by more
	// than DefaultEpsilon.
	ErrNotUnimodular = errors.New("sl2c: determinant is not 1")

	// ErrNaNInf signals a NaN or infinite matrix entry.
	ErrNaNInf = errors.New("sl2c: NaN or Inf entry")

	// ErrSingular is returned when an operation needs a non-zero determinant.
	ErrSingular = errors.New("sl2c: singular matrix")
)
