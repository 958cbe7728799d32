// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Func is a pure scalar function. It may return NaN or ±Inf outside its
// domain; the solvers report that as ErrDomain.
type Func func(x float64) float64

// Trace is the ordered sequence of estimates produced by one run.
// The last element is the returned root.
type Trace []float64

// Len returns the number of recorded estimates.
func (t Trace) Len() int { return len(t) }

// Last returns the final estimate, or NaN for an empty trace.
func (t Trace) Last() float64 {
	if len(t) == 0 {
		return math.NaN()
	}

	return t[len(t)-1]
}

// Residuals evaluates |f(x) − target| at every recorded estimate.
func (t Trace) Residuals(f Func, target float64) []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		out[i] = math.Abs(f(x) - target)
	}

	return out
}

// Steps returns |x[k] − x[k−1]| for k ≥ 1, the per-iteration movement.
func (t Trace) Steps() []float64 {
	if len(t) < 2 {
		return nil
	}
	out := make([]float64, len(t)-1)
	for k := 1; k < len(t); k++ {
		out[k-1] = math.Abs(t[k] - t[k-1])
	}

	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
