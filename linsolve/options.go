// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"
)

// Strategy selects how Determinant and Inverse are computed.
type Strategy int

const (
	// Cofactor uses recursive Laplace expansion and the adjugate. O(n!).
	Cofactor Strategy = iota

	// LU uses an LU factorization with partial pivoting (gonum). O(n³).
	LU
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Cofactor:
		return "cofactor"
	case LU:
		return "lu"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "cofactor" or "lu" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "cofactor":
		return Cofactor, nil
	case "lu":
		return LU, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Defaults.
const (
	// DefaultStrategy is the cofactor expansion.
	DefaultStrategy = Cofactor

	// DefaultPivotTolerance treats only an exactly zero pivot as singular.
	DefaultPivotTolerance = 0.0

	// DefaultSingularTolerance treats only an exactly zero determinant as singular.
	DefaultSingularTolerance = 0.0
)

// Option configures a solver call.
type Option func(*Options)

// Options holds numeric policy for a single call.
type Options struct {
	// Strategy selects Determinant/Inverse kernels. Eliminators ignore it.
	Strategy Strategy

	// PivotTolerance: a pivot with |p| <= PivotTolerance is singular.
	PivotTolerance float64

	// SingularTolerance: Inverse fails when |det| <= SingularTolerance.
	SingularTolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the exact-zero policy with the Cofactor strategy.
func DefaultOptions() Options {
	return Options{
		Strategy:          DefaultStrategy,
		PivotTolerance:    DefaultPivotTolerance,
		SingularTolerance: DefaultSingularTolerance,
	}
}

// WithStrategy selects the determinant/inverse kernel.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Cofactor && s != LU {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithPivotTolerance treats pivots with |p| <= eps as zero. eps must be finite and >= 0.
func WithPivotTolerance(eps float64) Option {
	return func(o *Options) {
		if !validTolerance(eps) {
			o.err = fmt.Errorf("%w: pivot tolerance %g", ErrOptionViolation, eps)
			return
		}
		o.PivotTolerance = eps
	}
}

// WithSingularTolerance treats determinants with |det| <= eps as zero. eps must be finite and >= 0.
func WithSingularTolerance(eps float64) Option {
	return func(o *Options) {
		if !validTolerance(eps) {
			o.err = fmt.Errorf("%w: singular tolerance %g", ErrOptionViolation, eps)
			return
		}
		o.SingularTolerance = eps
	}
}

func validTolerance(eps float64) bool {
	return !math.IsNaN(eps) && !math.IsInf(eps, 0) && eps >= 0
}

// gatherOptions applies opts over the defaults and returns the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
