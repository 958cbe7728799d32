// SPDX-License-Identifier: MIT

// Package config holds every parameter of the numlab driver and reads and
// writes it as TOML.
//
// Load decodes over Default(), so a file only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete driver configuration.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Resonance  ResonanceConfig  `toml:"resonance"`
	Circuit    CircuitConfig    `toml:"circuit"`
	Thermistor ThermistorConfig `toml:"thermistor"`
}

// LogConfig selects the driver's log threshold.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// ResonanceConfig describes the RLC resonance root-finding exercise.
type ResonanceConfig struct {
	Inductance    float64 `toml:"inductance"`  // henry
	Capacitance   float64 `toml:"capacitance"` // farad
	Target        float64 `toml:"target"`      // hertz
	BracketLow    float64 `toml:"bracket_low"` // ohm
	BracketHigh   float64 `toml:"bracket_high"`
	BisectionTol  float64 `toml:"bisection_tol"`
	NewtonGuess   float64 `toml:"newton_guess"`
	NewtonTol     float64 `toml:"newton_tol"`
	NewtonMaxIter int     `toml:"newton_max_iter"`
	Derivative    string  `toml:"derivative"` // analytic, dual
}

// CircuitConfig describes the mesh-current linear system A·I = V.
type CircuitConfig struct {
	Matrix   [][]float64 `toml:"matrix"`
	RHS      []float64   `toml:"rhs"`
	Strategy string      `toml:"strategy"` // cofactor, lu
	PivotTol float64     `toml:"pivot_tol"`
}

// ThermistorConfig describes the thermistor differentiation sweep.
type ThermistorConfig struct {
	R0         float64 `toml:"r0"`   // ohm at T0
	Beta       float64 `toml:"beta"` // kelvin
	T0         float64 `toml:"t0"`   // kelvin
	TStart     float64 `toml:"t_start"`
	TStop      float64 `toml:"t_stop"` // exclusive
	TStep      float64 `toml:"t_step"`
	Step       float64 `toml:"step"` // finite-difference h
	Workers    int     `toml:"workers"`
	Derivative string  `toml:"derivative"` // analytic, dual

	// Convergence study at T0 over StudySteps step sizes from StudyHMax down to StudyHMin.
	StudyHMax  float64 `toml:"study_h_max"`
	StudyHMin  float64 `toml:"study_h_min"`
	StudySteps int     `toml:"study_steps"`
}

// Default returns the built-in exercise parameters.
//
// The resonance target is 70 Hz: with L = 0.5 H and C = 10 µF the damped
// frequency only spans about 69.4 Hz (R = 100 Ω) to 71.2 Hz (R = 0), so
// that window is where a root exists.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Resonance: ResonanceConfig{
			Inductance:    0.5,
			Capacitance:   10e-6,
			Target:        70,
			BracketLow:    0,
			BracketHigh:   100,
			BisectionTol:  0.1,
			NewtonGuess:   50,
			NewtonTol:     0.1,
			NewtonMaxIter: 100,
			Derivative:    "analytic",
		},
		Circuit: CircuitConfig{
			Matrix: [][]float64{
				{4, -1, -1},
				{-1, 3, -1},
				{-1, 1, 5},
			},
			RHS:      []float64{5, 3, 4},
			Strategy: "cofactor",
			PivotTol: 0,
		},
		Thermistor: ThermistorConfig{
			R0:         5000,
			Beta:       3500,
			T0:         298,
			TStart:     250,
			TStop:      351,
			TStep:      10,
			Step:       1e-3,
			Workers:    0,
			Derivative: "analytic",
			StudyHMax:  8,
			StudyHMin:  0.5,
			StudySteps: 5,
		},
	}
}

// Load reads path over Default() and validates the result.
// Keys absent from the file keep their default values; unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(os.ExpandEnv(path), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Write encodes cfg as TOML to w.
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return nil
}

// WriteFile writes cfg to path, refusing to overwrite an existing file
// unless force is set.
func WriteFile(path string, cfg Config, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = Write(f, cfg); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Validate checks ranges and enumerations. Numerical preconditions the core
// packages enforce themselves (bracketing, singularity) are left to them.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
		}
	}

	check(slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level), "log.level %q", c.Log.Level)

	r := c.Resonance
	check(positive(r.Inductance), "resonance.inductance %g", r.Inductance)
	check(positive(r.Capacitance), "resonance.capacitance %g", r.Capacitance)
	check(finite(r.Target), "resonance.target %g", r.Target)
	check(finite(r.BracketLow) && finite(r.BracketHigh) && r.BracketLow < r.BracketHigh,
		"resonance bracket [%g, %g]", r.BracketLow, r.BracketHigh)
	check(positive(r.BisectionTol), "resonance.bisection_tol %g", r.BisectionTol)
	check(finite(r.NewtonGuess), "resonance.newton_guess %g", r.NewtonGuess)
	check(positive(r.NewtonTol), "resonance.newton_tol %g", r.NewtonTol)
	check(r.NewtonMaxIter > 0, "resonance.newton_max_iter %d", r.NewtonMaxIter)
	check(slices.Contains([]string{"analytic", "dual"}, r.Derivative), "resonance.derivative %q", r.Derivative)

	ci := c.Circuit
	n := len(ci.Matrix)
	check(n > 0, "circuit.matrix is empty")
	for i, row := range ci.Matrix {
		check(len(row) == n, "circuit.matrix row %d has %d values, want %d", i, len(row), n)
	}
	check(len(ci.RHS) == n, "circuit.rhs has %d values, want %d", len(ci.RHS), n)
	check(slices.Contains([]string{"cofactor", "lu"}, ci.Strategy), "circuit.strategy %q", ci.Strategy)
	check(finite(ci.PivotTol) && ci.PivotTol >= 0, "circuit.pivot_tol %g", ci.PivotTol)

	t := c.Thermistor
	check(positive(t.R0), "thermistor.r0 %g", t.R0)
	check(finite(t.Beta), "thermistor.beta %g", t.Beta)
	check(positive(t.T0), "thermistor.t0 %g", t.T0)
	check(positive(t.TStart) && positive(t.TStop), "thermistor range [%g, %g)", t.TStart, t.TStop)
	check(finite(t.TStep) && t.TStep != 0, "thermistor.t_step %g", t.TStep)
	check(positive(t.Step), "thermistor.step %g", t.Step)
	check(t.Workers >= 0, "thermistor.workers %d", t.Workers)
	check(slices.Contains([]string{"analytic", "dual"}, t.Derivative), "thermistor.derivative %q", t.Derivative)
	check(positive(t.StudyHMax) && positive(t.StudyHMin), "thermistor study steps [%g, %g]", t.StudyHMax, t.StudyHMin)
	check(t.StudySteps >= 2, "thermistor.study_steps %d", t.StudySteps)

	return errors.Join(errs...)
}

func finite(v float64) bool   { return !math.IsNaN(v) && !math.IsInf(v, 0) }
func positive(v float64) bool { return finite(v) && v > 0 }
