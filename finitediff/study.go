// SPDX-License-Identifier: MIT

package finitediff

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opSteps         = "Steps"
	opStudy         = "Study"
	opObservedOrder = "ObservedOrder"
	opFitOrder      = "FitOrder"
)

// StudyRow is every scheme's estimate and absolute error at one step size.
type StudyRow struct {
	H        float64
	Estimate [NumSchemes]float64
	AbsErr   [NumSchemes]float64
}

// Steps returns n step sizes spaced evenly in log scale from hMax down to hMin.
func Steps(hMax, hMin float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, diffErrorf(opSteps, ErrTooFewSteps)
	}
	for _, h := range [2]float64{hMax, hMin} {
		if !(h > 0) || math.IsInf(h, 1) {
			return nil, diffErrorf(opSteps, fmt.Errorf("h=%g: %w", h, ErrInvalidStep))
		}
	}

	return floats.LogSpan(make([]float64, n), hMax, hMin), nil
}

// Study evaluates every scheme at x for each step in steps and records the
// absolute error against the exact derivative value.
func Study(f Func, exact, x float64, steps []float64) ([]StudyRow, error) {
	if f == nil {
		return nil, diffErrorf(opStudy, ErrNilFunc)
	}
	if len(steps) < 2 {
		return nil, diffErrorf(opStudy, ErrTooFewSteps)
	}
	if !isFinite(exact) {
		return nil, diffErrorf(opStudy, fmt.Errorf("exact=%g: %w", exact, ErrNonFinite))
	}

	rows := make([]StudyRow, len(steps))
	var err error
	for i, h := range steps {
		rows[i].H = h
		for _, s := range Schemes {
			if rows[i].Estimate[s], err = Derivative(s, f, x, h); err != nil {
				return nil, diffErrorf(opStudy, err)
			}
			rows[i].AbsErr[s] = math.Abs(rows[i].Estimate[s] - exact)
		}
	}

	return rows, nil
}

// ObservedOrder returns p such that e ≈ C·hᵖ passes through (h1,e1) and (h2,e2):
//
//	p = log(e1/e2) / log(h1/h2)
//
// Steps must be positive, finite and distinct; errors must be positive.
func ObservedOrder(h1, e1, h2, e2 float64) (float64, error) {
	for _, h := range [2]float64{h1, h2} {
		if !(h > 0) || math.IsInf(h, 1) {
			return 0, diffErrorf(opObservedOrder, fmt.Errorf("h=%g: %w", h, ErrInvalidStep))
		}
	}
	if h1 == h2 {
		return 0, diffErrorf(opObservedOrder, fmt.Errorf("h1 == h2 == %g: %w", h1, ErrInvalidStep))
	}
	if !(e1 > 0) || !(e2 > 0) || math.IsInf(e1, 1) || math.IsInf(e2, 1) {
		return 0, diffErrorf(opObservedOrder, fmt.Errorf("errors %g, %g: %w", e1, e2, ErrDivisionByZero))
	}

	return math.Log(e1/e2) / math.Log(h1/h2), nil
}

// FitOrder fits log(error) = log(C) + p·log(h) by least squares over rows
// and returns p for scheme s. Rows whose error is exactly zero carry no
// information and are skipped.
func FitOrder(rows []StudyRow, s Scheme) (float64, error) {
	if s < 0 || s >= NumSchemes {
		return 0, diffErrorf(opFitOrder, fmt.Errorf("%v: %w", s, ErrUnknownScheme))
	}
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.AbsErr[s] > 0 {
			xs = append(xs, math.Log(r.H))
			ys = append(ys, math.Log(r.AbsErr[s]))
		}
	}
	if len(xs) < 2 {
		return 0, diffErrorf(opFitOrder, ErrTooFewSteps)
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)

	return slope, nil
}
