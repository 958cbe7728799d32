// SPDX-License-Identifier: MIT

// Package rootfind solves f(x) = target for a scalar function by bracketing
// (bisection) or by tangent iteration (Newton–Raphson), returning the root
// together with the full sequence of iterates.
//
// ⚙️ Usage:
//
//	f := func(x float64) float64 { return x*x - 4 }
//	df := func(x float64) float64 { return 2 * x }
//
//	root, trace, err := rootfind.NewtonRaphson(f, df, 0, 3, 1e-4, 50)
//	if errors.Is(err, rootfind.ErrNonConvergence) {
//		// the budget was spent; root still holds the last iterate
//	}
//
// Termination is controlled only by the explicit tolerance and iteration
// parameters of each call; the package has no hidden defaults.
//
// Failure policy: every precondition is checked and reported. A bracket that
// does not straddle the target, a stationary point, a non-finite function
// value or a spent iteration budget are errors, never silent results.
//
// Complexity:
//
//   - Bisection:     O(log2((b−a)/tol)) evaluations of f.
//   - NewtonRaphson: O(maxIter) evaluations of f and df; quadratic convergence
//     near a simple root.
package rootfind
