// SPDX-License-Identifier: MIT

// Package finitediff approximates first derivatives of scalar functions from
// function values alone and measures how far each approximation is from a
// known exact derivative.
//
// Schemes and their truncation error:
//
//	Forward     (f(x+h) − f(x)) / h                 O(h)
//	Backward    (f(x) − f(x−h)) / h                 O(h)
//	Central     (f(x+h) − f(x−h)) / 2h              O(h²)
//	Richardson  (4·D(h/2) − D(h)) / 3, D = Central  O(h⁴)
//
// Beyond the single-point formulas the package offers:
//
//   - Range: an arange-style grid of abscissae (stop exclusive).
//   - EvaluatePoint / Sweep: every scheme plus relative errors at each grid
//     point. Sweep fans the points out over a bounded errgroup and returns
//     them in input order.
//   - Study / ObservedOrder / FitOrder: error against step size, used to
//     confirm the orders listed above empirically.
//
// Failure policy: a step that is not positive and finite is ErrInvalidStep;
// a NaN or ±Inf function value is ErrNonFinite; a relative error against an
// exact value of zero is ErrDivisionByZero. Nothing is silently clamped.
package finitediff
