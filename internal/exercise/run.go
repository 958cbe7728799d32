// SPDX-License-Identifier: MIT

package exercise

import (
	"context"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/numlab/finitediff"
	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/rootfind"
)

// MethodResult is the outcome of one root-finding method.
type MethodResult struct {
	Method    string    `json:"method" yaml:"method"`
	Root      float64   `json:"root" yaml:"root"`           // ohm
	Frequency float64   `json:"frequency" yaml:"frequency"` // f(Root), hertz
	Estimates int       `json:"estimates" yaml:"estimates"`
	Trace     []float64 `json:"trace" yaml:"trace"`
}

// RootsResult is the resonance exercise: the resistance that tunes the
// circuit to Target, found by bisection and by Newton–Raphson.
type RootsResult struct {
	Target     float64      `json:"target" yaml:"target"`
	BracketLow float64      `json:"bracket_low" yaml:"bracket_low"`
	BracketHi  float64      `json:"bracket_high" yaml:"bracket_high"`
	Critical   float64      `json:"critical_resistance" yaml:"critical_resistance"`
	Derivative string       `json:"derivative" yaml:"derivative"`
	Bisection  MethodResult `json:"bisection" yaml:"bisection"`
	Newton     MethodResult `json:"newton" yaml:"newton"`
}

// Roots runs bisection and Newton–Raphson on f(R) = cfg.Target.
func Roots(ctx context.Context, cfg config.ResonanceConfig, logger log.Logger) (RootsResult, error) {
	mode, err := ParseDerivativeMode(cfg.Derivative)
	if err != nil {
		return RootsResult{}, err
	}
	model := Resonance{L: cfg.Inductance, C: cfg.Capacitance}
	slope, err := model.SlopeFunc(mode)
	if err != nil {
		return RootsResult{}, err
	}
	opts := []rootfind.Option{rootfind.WithContext(ctx), rootfind.WithLogger(logger)}

	res := RootsResult{
		Target:     cfg.Target,
		BracketLow: cfg.BracketLow,
		BracketHi:  cfg.BracketHigh,
		Critical:   model.CriticalResistance(),
		Derivative: string(mode),
	}

	root, trace, err := rootfind.Bisection(model.Frequency, cfg.Target, cfg.BracketLow, cfg.BracketHigh, cfg.BisectionTol, opts...)
	if err != nil {
		return RootsResult{}, fmt.Errorf("resonance: %w", err)
	}
	res.Bisection = methodResult("bisection", model, root, trace)
	_ = level.Info(logger).Log("exercise", "roots", "method", "bisection", "root", root, "estimates", trace.Len())

	root, trace, err = rootfind.NewtonRaphson(model.Frequency, slope, cfg.Target, cfg.NewtonGuess, cfg.NewtonTol, cfg.NewtonMaxIter, opts...)
	if err != nil {
		return RootsResult{}, fmt.Errorf("resonance: %w", err)
	}
	res.Newton = methodResult("newton", model, root, trace)
	_ = level.Info(logger).Log("exercise", "roots", "method", "newton", "root", root, "estimates", trace.Len())

	return res, nil
}

func methodResult(method string, model Resonance, root float64, trace rootfind.Trace) MethodResult {
	return MethodResult{
		Method:    method,
		Root:      root,
		Frequency: model.Frequency(root),
		Estimates: trace.Len(),
		Trace:     trace,
	}
}

// LinearResult is the mesh-current exercise.
type LinearResult struct {
	Matrix      [][]float64 `json:"matrix" yaml:"matrix"`
	RHS         []float64   `json:"rhs" yaml:"rhs"`
	Strategy    string      `json:"strategy" yaml:"strategy"`
	Gaussian    []float64   `json:"gaussian" yaml:"gaussian"`
	GaussJordan []float64   `json:"gauss_jordan" yaml:"gauss_jordan"`
	Determinant float64     `json:"determinant" yaml:"determinant"`
	Adjoint     [][]float64 `json:"adjoint" yaml:"adjoint"`
	Inverse     [][]float64 `json:"inverse" yaml:"inverse"`
	Residual    []float64   `json:"residual" yaml:"residual"`
	MaxResidual float64     `json:"max_residual" yaml:"max_residual"`
	InverseOK   bool        `json:"inverse_ok" yaml:"inverse_ok"`
}

// inverseTol is the absolute tolerance for A·A⁻¹ against the identity.
const inverseTol = 1e-9

// Linear solves the configured system with both eliminators, then computes
// the determinant, adjugate, inverse and the residual A·x − b of the
// Gaussian solution. InverseOK reports whether A·A⁻¹ matches the identity.
func Linear(cfg config.CircuitConfig, logger log.Logger) (LinearResult, error) {
	strategy, err := linsolve.ParseStrategy(cfg.Strategy)
	if err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	a, err := matrix.NewDenseFrom(cfg.Matrix)
	if err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	opts := []linsolve.Option{
		linsolve.WithStrategy(strategy),
		linsolve.WithPivotTolerance(cfg.PivotTol),
	}

	res := LinearResult{Matrix: a.ToRows(), RHS: append([]float64(nil), cfg.RHS...), Strategy: strategy.String()}
	if res.Gaussian, err = linsolve.GaussianEliminate(a, cfg.RHS, opts...); err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	if res.GaussJordan, err = linsolve.GaussJordan(a, cfg.RHS, opts...); err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	if res.Determinant, err = linsolve.Determinant(a, opts...); err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	adj, err := linsolve.Adjoint(a)
	if err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	inv, err := linsolve.Inverse(a, opts...)
	if err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	res.Adjoint, res.Inverse = adj.ToRows(), inv.ToRows()
	if res.InverseOK, err = inverseChecks(a, inv); err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}

	if res.Residual, err = linsolve.Residual(a, res.Gaussian, cfg.RHS); err != nil {
		return LinearResult{}, fmt.Errorf("circuit: %w", err)
	}
	res.MaxResidual = floats.Norm(res.Residual, math.Inf(1))
	_ = level.Info(logger).Log("exercise", "linear", "strategy", res.Strategy, "det", res.Determinant, "max_residual", res.MaxResidual, "inverse_ok", res.InverseOK)

	return res, nil
}

// inverseChecks compares a·inv with the identity.
func inverseChecks(a, inv *matrix.Dense) (bool, error) {
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return false, err
	}
	id, err := matrix.NewIdentity(a.Rows())
	if err != nil {
		return false, err
	}

	return matrix.AllClose(prod, id, 0, inverseTol)
}

// DiffResult is the thermistor differentiation exercise.
type DiffResult struct {
	Step       float64                        `json:"step" yaml:"step"`
	Derivative string                         `json:"derivative" yaml:"derivative"`
	Points     []finitediff.Point             `json:"points" yaml:"points"`
	StudyAt    float64                        `json:"study_at" yaml:"study_at"`
	Study      []finitediff.StudyRow          `json:"study" yaml:"study"`
	Orders     [finitediff.NumSchemes]float64 `json:"orders" yaml:"orders"`
}

// Differentiate sweeps every scheme over the configured temperature grid
// and fits the observed convergence order of each scheme at T0.
func Differentiate(ctx context.Context, cfg config.ThermistorConfig, logger log.Logger) (DiffResult, error) {
	mode, err := ParseDerivativeMode(cfg.Derivative)
	if err != nil {
		return DiffResult{}, err
	}
	model := Thermistor{R0: cfg.R0, Beta: cfg.Beta, T0: cfg.T0}
	exact, err := model.SlopeFunc(mode)
	if err != nil {
		return DiffResult{}, err
	}
	temps, err := finitediff.Range(cfg.TStart, cfg.TStop, cfg.TStep)
	if err != nil {
		return DiffResult{}, fmt.Errorf("thermistor: %w", err)
	}

	res := DiffResult{Step: cfg.Step, Derivative: string(mode), StudyAt: cfg.T0}
	res.Points, err = finitediff.Sweep(ctx, model.Resistance, exact, temps, cfg.Step,
		finitediff.SweepOptions{Workers: cfg.Workers})
	if err != nil {
		return DiffResult{}, fmt.Errorf("thermistor: %w", err)
	}

	steps, err := finitediff.Steps(cfg.StudyHMax, cfg.StudyHMin, cfg.StudySteps)
	if err != nil {
		return DiffResult{}, fmt.Errorf("thermistor: %w", err)
	}
	if res.Study, err = finitediff.Study(model.Resistance, exact(cfg.T0), cfg.T0, steps); err != nil {
		return DiffResult{}, fmt.Errorf("thermistor: %w", err)
	}
	for _, s := range finitediff.Schemes {
		if res.Orders[s], err = finitediff.FitOrder(res.Study, s); err != nil {
			return DiffResult{}, fmt.Errorf("thermistor: %v: %w", s, err)
		}
	}
	_ = level.Info(logger).Log("exercise", "diff", "points", len(res.Points), "derivative", res.Derivative)

	return res, nil
}
