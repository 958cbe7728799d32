// SPDX-License-Identifier: MIT

// Package exercise holds the physical models behind the three numlab
// exercises and runs each exercise end to end on top of the core packages.
package exercise

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// ErrUnknownDerivative is returned for a derivative mode other than
// "analytic" or "dual".
var ErrUnknownDerivative = errors.New("exercise: unknown derivative mode")

// DerivativeMode selects how an exact derivative is produced.
type DerivativeMode string

const (
	// Analytic uses the hand-derived closed form.
	Analytic DerivativeMode = "analytic"

	// Dual evaluates the model on dual numbers (forward-mode automatic
	// differentiation) and reads the derivative off the ϵ part.
	Dual DerivativeMode = "dual"
)

// ParseDerivativeMode validates a mode name.
func ParseDerivativeMode(name string) (DerivativeMode, error) {
	switch m := DerivativeMode(name); m {
	case Analytic, Dual:
		return m, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownDerivative)
	}
}

// Resonance is a series RLC circuit with inductance L (H) and capacitance C (F).
// Its damped resonant frequency as a function of the resistance R is
//
//	f(R) = (1/2π)·√(1/(LC) − R²/(4L²))
//
// which is real only for R ≤ CriticalResistance(); beyond that f is NaN.
type Resonance struct {
	L, C float64
}

// Frequency returns f(R) in hertz.
func (r Resonance) Frequency(R float64) float64 {
	return math.Sqrt(1/(r.L*r.C)-R*R/(4*r.L*r.L)) / (2 * math.Pi)
}

// Slope returns df/dR = −R / (8πL²·√(1/(LC) − R²/(4L²))).
func (r Resonance) Slope(R float64) float64 {
	return -R / (8 * math.Pi * r.L * r.L * math.Sqrt(1/(r.L*r.C)-R*R/(4*r.L*r.L)))
}

// DualSlope returns df/dR by dual-number evaluation of Frequency.
func (r Resonance) DualSlope(R float64) float64 {
	x := dual.Number{Real: R, Emag: 1}
	radicand := dual.Sub(
		dual.Number{Real: 1 / (r.L * r.C)},
		dual.Scale(1/(4*r.L*r.L), dual.Mul(x, x)),
	)

	return dual.Scale(1/(2*math.Pi), dual.Sqrt(radicand)).Emag
}

// CriticalResistance is the R at which the circuit stops oscillating: 2·√(L/C).
func (r Resonance) CriticalResistance() float64 {
	return 2 * math.Sqrt(r.L/r.C)
}

// SlopeFunc returns the derivative selected by mode.
func (r Resonance) SlopeFunc(mode DerivativeMode) (func(float64) float64, error) {
	switch mode {
	case Analytic:
		return r.Slope, nil
	case Dual:
		return r.DualSlope, nil
	default:
		return nil, fmt.Errorf("%q: %w", string(mode), ErrUnknownDerivative)
	}
}

// Thermistor is an NTC thermistor in the β-parameter model:
//
//	R(T) = R0·exp(β·(1/T − 1/T0))
//
// with R0 in ohm at the reference temperature T0, and T, T0, β in kelvin.
type Thermistor struct {
	R0, Beta, T0 float64
}

// Resistance returns R(T) in ohm.
func (t Thermistor) Resistance(T float64) float64 {
	return t.R0 * math.Exp(t.Beta*(1/T-1/t.T0))
}

// Slope returns the exact dR/dT = R(T)·(−β/T²) in ohm per kelvin.
func (t Thermistor) Slope(T float64) float64 {
	return t.Resistance(T) * (-t.Beta / (T * T))
}

// DualSlope returns dR/dT by dual-number evaluation of Resistance.
func (t Thermistor) DualSlope(T float64) float64 {
	x := dual.Number{Real: T, Emag: 1}
	exponent := dual.Scale(t.Beta, dual.Sub(dual.Inv(x), dual.Number{Real: 1 / t.T0}))

	return dual.Scale(t.R0, dual.Exp(exponent)).Emag
}

// SlopeFunc returns the derivative selected by mode.
func (t Thermistor) SlopeFunc(mode DerivativeMode) (func(float64) float64, error) {
	switch mode {
	case Analytic:
		return t.Slope, nil
	case Dual:
		return t.DualSlope, nil
	default:
		return nil, fmt.Errorf("%q: %w", string(mode), ErrUnknownDerivative)
	}
}
