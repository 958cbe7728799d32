// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

const opNewton = "newton"

// traceHint caps the trace preallocation independent of maxIter.
const traceHint = 64

// NewtonRaphson solves f(x) = target from the initial guess x0 using
// x ← x − (f(x) − target) / df(x).
//
// The trace starts with x0 and gains one entry per update. Convergence is
// declared as soon as |f(x) − target| < tol; the check runs before every
// update and once more on the final iterate.
//
// When maxIter updates are spent without convergence the call returns the
// last iterate, the trace, and a *NonConvergenceError (errors.Is
// ErrNonConvergence). Callers that want the iterate regardless may use the
// returned value; it is never garbage.
//
// Hooks receive the iteration number, the estimate and its residual. The
// number equals the estimate's index in the trace, so x0 is reported as 0.
//
// Errors:
//   - ErrNilFunc, ErrInvalidTolerance, ErrInvalidIterations: bad arguments.
//   - ErrZeroDerivative: df(x) == 0 at a non-converged iterate.
//   - ErrDomain: f or df returned NaN or ±Inf.
//   - *NonConvergenceError: budget exhausted.
//
// Complexity: O(maxIter) evaluations of f and df.
func NewtonRaphson(f, df Func, target, x0, tol float64, maxIter int, opts ...Option) (float64, Trace, error) {
	if f == nil || df == nil {
		return 0, nil, rootErrorf(opNewton, ErrNilFunc)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, rootErrorf(opNewton, err)
	}
	if !isFinite(tol) || tol <= 0 {
		return 0, nil, rootErrorf(opNewton, ErrInvalidTolerance)
	}
	if maxIter <= 0 {
		return 0, nil, fmt.Errorf("%s: maxIter=%d: %w", opNewton, maxIter, ErrInvalidIterations)
	}

	x := x0
	// Capacity is a hint only; maxIter may be far larger than the work done.
	trace := make(Trace, 1, min(maxIter, traceHint)+1)
	trace[0] = x0

	var r, d float64
	for iter := 0; iter < maxIter; iter++ {
		if r, err = residual(f, x, target); err != nil {
			return 0, nil, err
		}
		if err = o.step(opNewton, iter, x, r); err != nil {
			return 0, nil, rootErrorf(opNewton, err)
		}
		if math.Abs(r) < tol {
			return x, trace, nil
		}
		d = df(x)
		if !isFinite(d) {
			return 0, nil, domainErrorf(opNewton, "df", x, d)
		}
		if d == 0 {
			return 0, nil, fmt.Errorf("%s: x=%g: %w", opNewton, x, ErrZeroDerivative)
		}
		x -= r / d
		trace = append(trace, x)
	}

	// The last update has not been checked yet.
	if r, err = residual(f, x, target); err != nil {
		return 0, nil, err
	}
	if err = o.step(opNewton, maxIter, x, r); err != nil {
		return 0, nil, rootErrorf(opNewton, err)
	}
	if math.Abs(r) < tol {
		return x, trace, nil
	}

	return x, trace, &NonConvergenceError{
		Method:     opNewton,
		Iterations: maxIter,
		Last:       x,
		Residual:   r,
		Trace:      trace,
	}
}

// residual returns f(x) − target or ErrDomain.
func residual(f Func, x, target float64) (float64, error) {
	v := f(x) - target
	if !isFinite(v) {
		return 0, domainErrorf(opNewton, "f", x, v)
	}

	return v, nil
}
