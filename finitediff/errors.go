// SPDX-License-Identifier: MIT

package finitediff

import (
	"errors"
	"fmt"
)

// Sentinel errors for finite differences.
var (
	// ErrInvalidStep is returned when h (or a grid step) is zero, negative, NaN or ±Inf.
	ErrInvalidStep = errors.New("finitediff: step must be positive and finite")

	// ErrNonFinite is returned when f yields NaN or ±Inf, or the estimate overflows.
	ErrNonFinite = errors.New("finitediff: non-finite value")

	// ErrDivisionByZero is returned by RelativeError when the exact value is zero.
	ErrDivisionByZero = errors.New("finitediff: relative error against zero")

	// ErrNilFunc is returned when f or the exact derivative is nil.
	ErrNilFunc = errors.New("finitediff: function is nil")

	// ErrInvalidRange is returned when a grid bound is not finite or the grid is too long.
	ErrInvalidRange = errors.New("finitediff: invalid range")

	// ErrUnknownScheme is returned for a Scheme value outside the enumeration.
	ErrUnknownScheme = errors.New("finitediff: unknown scheme")

	// ErrTooFewSteps is returned by Study and FitOrder with fewer than two steps.
	ErrTooFewSteps = errors.New("finitediff: at least two step sizes are required")
)

// PointError reports the grid point at which a sweep failed.
type PointError struct {
	Index int     // position in the input grid
	X     float64 // abscissa
	Err   error   // underlying cause
}

func (e *PointError) Error() string {
	return fmt.Sprintf("point %d (x=%g): %v", e.Index, e.X, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *PointError) Unwrap() error { return e.Err }

// diffErrorf tags err with an operation name, preserving it via %w.
func diffErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
