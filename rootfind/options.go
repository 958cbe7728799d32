// SPDX-License-Identifier: MIT

package rootfind

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Option configures a solver run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// solver is invoked.
type Option func(*Options)

// Options holds the hooks shared by Bisection and NewtonRaphson.
// Tolerances and iteration limits are NOT options: they are explicit
// parameters of every entry point.
type Options struct {
	// Ctx allows cancellation; it is checked once per iteration.
	Ctx context.Context

	// OnIterate is called for every evaluated estimate with its iteration
	// number, the estimate and its signed residual f(x)−target. Bisection
	// numbers its midpoints from 1; NewtonRaphson numbers x0 as 0 and each
	// update after it from 1.
	OnIterate func(iter int, x, residual float64)

	// Logger receives one debug record per iteration.
	Logger log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op hook
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnIterate: func(int, float64, float64) {},
		Logger:    log.NewNopLogger(),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnIterate registers a per-iteration callback.
func WithOnIterate(fn func(iter int, x, residual float64)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnIterate hook", ErrOptionViolation)
			return
		}
		o.OnIterate = fn
	}
}

// WithLogger routes per-iteration debug records to logger.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = logger
	}
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

// step notifies the hook and logger about a new estimate, then reports
// context cancellation.
func (o *Options) step(method string, iter int, x, residual float64) error {
	o.OnIterate(iter, x, residual)
	_ = level.Debug(o.Logger).Log("method", method, "iter", iter, "x", x, "residual", residual)

	return o.Ctx.Err()
}
