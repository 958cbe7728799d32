// SPDX-License-Identifier: MIT

package rootfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for root finding.
var (
	// ErrBracketing is returned when f(a)−target and f(b)−target have the same sign.
	ErrBracketing = errors.New("rootfind: interval does not bracket the target")

	// ErrZeroDerivative is returned when Newton–Raphson reaches a point with df(x) == 0.
	ErrZeroDerivative = errors.New("rootfind: derivative is zero")

	// ErrNonConvergence is returned when the iteration budget is spent before
	// the residual drops below the tolerance.
	ErrNonConvergence = errors.New("rootfind: iteration budget exhausted")

	// ErrDomain is returned when f or df yields NaN or ±Inf.
	ErrDomain = errors.New("rootfind: function value is not finite")

	// ErrInvalidInterval is returned when a >= b or an endpoint is not finite.
	ErrInvalidInterval = errors.New("rootfind: invalid interval")

	// ErrInvalidTolerance is returned when tol <= 0 or tol is not finite.
	ErrInvalidTolerance = errors.New("rootfind: tolerance must be positive and finite")

	// ErrInvalidIterations is returned when maxIter <= 0.
	ErrInvalidIterations = errors.New("rootfind: max iterations must be positive")

	// ErrNilFunc is returned when f (or df) is nil.
	ErrNilFunc = errors.New("rootfind: function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rootfind: invalid option supplied")
)

// NonConvergenceError carries the state of a run that spent its budget.
// It matches ErrNonConvergence under errors.Is.
type NonConvergenceError struct {
	Method     string  // "newton"
	Iterations int     // updates performed
	Last       float64 // last iterate
	Residual   float64 // f(Last) − target
	Trace      Trace   // every iterate, starting with the initial guess
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s: %d iterations, last x=%g, residual=%g: %v",
		e.Method, e.Iterations, e.Last, e.Residual, ErrNonConvergence)
}

// Unwrap lets errors.Is match ErrNonConvergence.
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// rootErrorf tags err with the method name, preserving it via %w.
func rootErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// domainErrorf reports a non-finite evaluation at x.
func domainErrorf(method, fn string, x, v float64) error {
	return fmt.Errorf("%s: %s(%g) = %g: %w", method, fn, x, v, ErrDomain)
}
