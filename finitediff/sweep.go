// SPDX-License-Identifier: MIT

package finitediff

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	opRange    = "Range"
	opEvaluate = "EvaluatePoint"
	opSweep    = "Sweep"
)

// MaxRangePoints bounds the length of a grid built by Range.
const MaxRangePoints = 1 << 24

// Range returns start, start+step, … up to but excluding stop.
// A negative step counts down. An empty range is not an error.
//
// Values are computed as start + i·step rather than by accumulation,
// so the grid does not drift. Grids longer than MaxRangePoints fail with
// ErrInvalidRange.
func Range(start, stop, step float64) ([]float64, error) {
	if !isFinite(start) || !isFinite(stop) {
		return nil, diffErrorf(opRange, fmt.Errorf("[%g, %g): %w", start, stop, ErrInvalidRange))
	}
	if step == 0 || !isFinite(step) {
		return nil, diffErrorf(opRange, fmt.Errorf("step=%g: %w", step, ErrInvalidStep))
	}

	count := math.Ceil((stop - start) / step)
	if !isFinite(count) || count > MaxRangePoints {
		return nil, diffErrorf(opRange, fmt.Errorf("%g points from %g to %g by %g: %w", count, start, stop, step, ErrInvalidRange))
	}
	if count <= 0 {
		return []float64{}, nil
	}
	out := make([]float64, int(count))
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out, nil
}

// Point holds every scheme's estimate at one abscissa, indexed by Scheme.
type Point struct {
	X        float64
	Exact    float64
	Estimate [NumSchemes]float64
	RelErr   [NumSchemes]float64 // percent, see RelativeError
}

// Best returns the scheme with the smallest relative error (first on ties).
func (p Point) Best() Scheme {
	best := SchemeForward
	for _, s := range Schemes[1:] {
		if p.RelErr[s] < p.RelErr[best] {
			best = s
		}
	}

	return best
}

// EvaluatePoint applies every scheme at x with step h and compares each
// estimate against exact(x).
func EvaluatePoint(f, exact Func, x, h float64) (Point, error) {
	if f == nil || exact == nil {
		return Point{}, diffErrorf(opEvaluate, ErrNilFunc)
	}
	p := Point{X: x, Exact: exact(x)}
	if !isFinite(p.Exact) {
		return Point{}, diffErrorf(opEvaluate, fmt.Errorf("exact(%g) = %g: %w", x, p.Exact, ErrNonFinite))
	}

	var err error
	for _, s := range Schemes {
		if p.Estimate[s], err = Derivative(s, f, x, h); err != nil {
			return Point{}, diffErrorf(opEvaluate, err)
		}
		if p.RelErr[s], err = RelativeError(p.Estimate[s], p.Exact); err != nil {
			return Point{}, diffErrorf(opEvaluate, fmt.Errorf("%v: %w", s, err))
		}
	}

	return p, nil
}

// SweepOptions bounds the concurrency of Sweep.
type SweepOptions struct {
	// Workers caps concurrent point evaluations; <= 0 means runtime.GOMAXPROCS(0).
	Workers int
}

// Sweep evaluates every grid point with EvaluatePoint.
//
// Points are independent, so they are evaluated on at most Workers
// goroutines; each result is written to its own index and the output order
// equals the order of xs. The first failure cancels the remaining points and
// is returned as a *PointError. Cancelling ctx stops the sweep with ctx's error.
//
// f and exact must be safe for concurrent use (pure functions are).
func Sweep(ctx context.Context, f, exact Func, xs []float64, h float64, opts SweepOptions) ([]Point, error) {
	if f == nil || exact == nil {
		return nil, diffErrorf(opSweep, ErrNilFunc)
	}
	if err := validate(f, h); err != nil {
		return nil, diffErrorf(opSweep, err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Point, len(xs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, x := range xs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := EvaluatePoint(f, exact, x, h)
			if err != nil {
				return &PointError{Index: i, X: x, Err: err}
			}
			out[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, diffErrorf(opSweep, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, diffErrorf(opSweep, err)
	}

	return out, nil
}
