// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numlab.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 70.0, cfg.Resonance.Target)
	require.Equal(t, []float64{5, 3, 4}, cfg.Circuit.RHS)

	// Each call returns independent slices.
	cfg.Circuit.Matrix[0][0] = 99
	require.Equal(t, 4.0, config.Default().Circuit.Matrix[0][0])
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, config.Default()))
	require.Contains(t, buf.String(), "[resonance]")
	require.Contains(t, buf.String(), "[thermistor]")

	got, err := config.Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	require.Equal(t, config.Default(), got)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
[resonance]
target = 70.5

[circuit]
strategy = "lu"
matrix = [[2.0, 1.0], [1.0, 3.0]]
rhs = [3.0, 5.0]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Resonance.Target = 70.5
	want.Circuit.Strategy = "lu"
	want.Circuit.Matrix = [][]float64{{2, 1}, {1, 3}}
	want.Circuit.RHS = []float64{3, 5}
	require.Equal(t, want, cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = config.Load(writeFile(t, "[resonance\n"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "[resonance]\nresistance = 3.0\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.Contains(t, err.Error(), "resonance.resistance")

	_, err = config.Load(writeFile(t, "[circuit]\nrhs = [1.0, 2.0]\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Log.Level = "trace"
	cfg.Resonance.BracketLow, cfg.Resonance.BracketHigh = 100, 0
	cfg.Resonance.NewtonMaxIter = 0
	cfg.Circuit.Strategy = "qr"
	cfg.Thermistor.Step = math.NaN()
	cfg.Thermistor.Derivative = "symbolic"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, frag := range []string{
		`log.level "trace"`,
		"resonance bracket [100, 0]",
		"resonance.newton_max_iter 0",
		`circuit.strategy "qr"`,
		"thermistor.step NaN",
		`thermistor.derivative "symbolic"`,
	} {
		require.Contains(t, err.Error(), frag)
	}
}

func TestValidate_RaggedMatrix(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Circuit.Matrix = [][]float64{{1, 2}, {3}}
	cfg.Circuit.RHS = []float64{1, 2}
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestWriteFile_NoClobber(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "numlab.toml")
	require.NoError(t, config.WriteFile(path, config.Default(), false))

	err := config.WriteFile(path, config.Default(), false)
	require.True(t, errors.Is(err, fs.ErrExist), "got %v", err)

	require.NoError(t, config.WriteFile(path, config.Default(), true))
	_, err = config.Load(path)
	require.NoError(t, err)
}
