// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

const opBisection = "bisection"

// Bisection finds x in [a, b] with f(x) ≈ target by repeated interval halving.
//
// Algorithm Outline:
//  1. g(x) = f(x) − target. If g(a) or g(b) is exactly zero, that endpoint is the root.
//  2. Require sign(g(a)) ≠ sign(g(b)); otherwise ErrBracketing.
//  3. While (b−a)/2 > tol:
//     mid = (a+b)/2, record mid;
//     g(mid) == 0 → stop;
//     g(a)·g(mid) < 0 → b = mid, else a = mid.
//  4. Record and return the final midpoint (a+b)/2.
//
// After k halvings the half-width is exactly (b₀−a₀)/2^(k+1), so the returned
// root lies within tol of a true crossing. If the interval stops shrinking in
// floating point (the midpoint equals an endpoint) the loop ends early.
//
// Hooks receive iterations 1..k with each loop midpoint and its residual;
// the final midpoint is not reported.
//
// Errors:
//   - ErrNilFunc, ErrInvalidTolerance, ErrInvalidInterval: bad arguments.
//   - ErrBracketing: the endpoints do not straddle target.
//   - ErrDomain: f returned NaN or ±Inf.
//   - ErrOptionViolation, context errors: from options.
//
// Complexity: O(log2((b−a)/tol)) evaluations of f.
func Bisection(f Func, target, a, b, tol float64, opts ...Option) (float64, Trace, error) {
	if f == nil {
		return 0, nil, rootErrorf(opBisection, ErrNilFunc)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, rootErrorf(opBisection, err)
	}
	if !isFinite(tol) || tol <= 0 {
		return 0, nil, rootErrorf(opBisection, ErrInvalidTolerance)
	}
	if !isFinite(a) || !isFinite(b) || a >= b {
		return 0, nil, fmt.Errorf("%s: [%g, %g]: %w", opBisection, a, b, ErrInvalidInterval)
	}

	ga := f(a) - target
	if !isFinite(ga) {
		return 0, nil, domainErrorf(opBisection, "f", a, ga)
	}
	gb := f(b) - target
	if !isFinite(gb) {
		return 0, nil, domainErrorf(opBisection, "f", b, gb)
	}

	// Exact hit on an endpoint.
	if ga == 0 {
		return a, Trace{a}, nil
	}
	if gb == 0 {
		return b, Trace{b}, nil
	}
	if math.Signbit(ga) == math.Signbit(gb) {
		return 0, nil, fmt.Errorf("%s: f(%g)-target=%g, f(%g)-target=%g: %w",
			opBisection, a, ga, b, gb, ErrBracketing)
	}

	// Expected number of halvings, used only to size the trace.
	estimate := int(math.Ceil(math.Log2((b-a)/(2*tol)))) + 1
	if estimate < 1 {
		estimate = 1
	}
	trace := make(Trace, 0, estimate)

	var (
		mid, gm float64
		iter    int
	)
	for (b-a)/2.0 > tol {
		mid = (a + b) / 2.0
		if mid <= a || mid >= b {
			break // no representable point strictly inside
		}
		gm = f(mid) - target
		if !isFinite(gm) {
			return 0, nil, domainErrorf(opBisection, "f", mid, gm)
		}
		trace = append(trace, mid)
		iter++
		if err = o.step(opBisection, iter, mid, gm); err != nil {
			return 0, nil, rootErrorf(opBisection, err)
		}
		if gm == 0 {
			break
		}
		if math.Signbit(ga) != math.Signbit(gm) {
			b = mid
		} else {
			a, ga = mid, gm
		}
	}

	root := (a + b) / 2.0
	trace = append(trace, root)

	return root, trace, nil
}
