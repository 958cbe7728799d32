// SPDX-License-Identifier: MIT

package finitediff

import (
	"fmt"
	"math"
)

// Func is a pure scalar function.
type Func func(x float64) float64

// Operation tags for error wrapping.
const (
	opForward       = "Forward"
	opBackward      = "Backward"
	opCentral       = "Central"
	opRichardson    = "Richardson"
	opRelativeError = "RelativeError"
)

// Forward returns the forward difference (f(x+h) − f(x)) / h.
// Truncation error O(h).
func Forward(f Func, x, h float64) (float64, error) {
	if err := validate(f, h); err != nil {
		return 0, diffErrorf(opForward, err)
	}
	fxh, err := eval(f, x+h)
	if err != nil {
		return 0, diffErrorf(opForward, err)
	}
	fx, err := eval(f, x)
	if err != nil {
		return 0, diffErrorf(opForward, err)
	}

	return finite(opForward, (fxh-fx)/h)
}

// Backward returns the backward difference (f(x) − f(x−h)) / h.
// Truncation error O(h).
func Backward(f Func, x, h float64) (float64, error) {
	if err := validate(f, h); err != nil {
		return 0, diffErrorf(opBackward, err)
	}
	fx, err := eval(f, x)
	if err != nil {
		return 0, diffErrorf(opBackward, err)
	}
	fxh, err := eval(f, x-h)
	if err != nil {
		return 0, diffErrorf(opBackward, err)
	}

	return finite(opBackward, (fx-fxh)/h)
}

// Central returns the central difference (f(x+h) − f(x−h)) / 2h.
// Truncation error O(h²).
func Central(f Func, x, h float64) (float64, error) {
	if err := validate(f, h); err != nil {
		return 0, diffErrorf(opCentral, err)
	}
	d, err := central(f, x, h)
	if err != nil {
		return 0, diffErrorf(opCentral, err)
	}

	return d, nil
}

// Richardson extrapolates two central differences to cancel the h² term:
//
//	(4·D(h/2) − D(h)) / 3,  D = Central
//
// Truncation error O(h⁴). h/2 must still be positive.
func Richardson(f Func, x, h float64) (float64, error) {
	if err := validate(f, h); err != nil {
		return 0, diffErrorf(opRichardson, err)
	}
	if h/2 == 0 {
		return 0, diffErrorf(opRichardson, fmt.Errorf("h/2 underflows: %w", ErrInvalidStep))
	}
	dh, err := central(f, x, h)
	if err != nil {
		return 0, diffErrorf(opRichardson, err)
	}
	dh2, err := central(f, x, h/2)
	if err != nil {
		return 0, diffErrorf(opRichardson, err)
	}

	return finite(opRichardson, (4*dh2-dh)/3)
}

// RelativeError returns |(approx − exact) / exact| · 100, in percent.
// An exact value of zero is ErrDivisionByZero.
func RelativeError(approx, exact float64) (float64, error) {
	if exact == 0 {
		return 0, diffErrorf(opRelativeError, ErrDivisionByZero)
	}
	if !isFinite(approx) || !isFinite(exact) {
		return 0, diffErrorf(opRelativeError, ErrNonFinite)
	}

	return finite(opRelativeError, math.Abs((approx-exact)/exact)*100)
}

// central is the unchecked central difference shared by Central and Richardson.
func central(f Func, x, h float64) (float64, error) {
	fp, err := eval(f, x+h)
	if err != nil {
		return 0, err
	}
	fm, err := eval(f, x-h)
	if err != nil {
		return 0, err
	}
	d := (fp - fm) / (2 * h)
	if !isFinite(d) {
		return 0, fmt.Errorf("estimate %g: %w", d, ErrNonFinite)
	}

	return d, nil
}

func validate(f Func, h float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if !(h > 0) || math.IsInf(h, 1) {
		return fmt.Errorf("h=%g: %w", h, ErrInvalidStep)
	}

	return nil
}

// eval calls f and rejects non-finite values.
func eval(f Func, x float64) (float64, error) {
	v := f(x)
	if !isFinite(v) {
		return 0, fmt.Errorf("f(%g) = %g: %w", x, v, ErrNonFinite)
	}

	return v, nil
}

func finite(op string, v float64) (float64, error) {
	if !isFinite(v) {
		return 0, diffErrorf(op, fmt.Errorf("estimate %g: %w", v, ErrNonFinite))
	}

	return v, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
