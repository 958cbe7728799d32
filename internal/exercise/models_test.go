// SPDX-License-Identifier: MIT

package exercise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/internal/exercise"
)

func TestResonance_Model(t *testing.T) {
	t.Parallel()

	m := exercise.Resonance{L: 0.5, C: 10e-6}
	require.InDelta(t, 71.17625434, m.Frequency(0), 1e-8)
	require.InDelta(t, 69.37403133, m.Frequency(100), 1e-8)
	require.InDelta(t, 447.21359550, m.CriticalResistance(), 1e-8)
	require.True(t, math.IsNaN(m.Frequency(m.CriticalResistance()+1)))

	require.Zero(t, m.Slope(0))
	for _, r := range []float64{10, 50, 80.97, 200, 400} {
		require.InEpsilon(t, m.Slope(r), m.DualSlope(r), 1e-12, "R=%g", r)
		require.Less(t, m.Slope(r), 0.0)
	}
}

func TestThermistor_Model(t *testing.T) {
	t.Parallel()

	m := exercise.Thermistor{R0: 5000, Beta: 3500, T0: 298}
	require.InDelta(t, 5000, m.Resistance(298), 1e-9)
	require.InDelta(t, -179.80028610832, m.Slope(300), 1e-9)
	for temp := 250.0; temp <= 350; temp += 10 {
		require.InEpsilon(t, m.Slope(temp), m.DualSlope(temp), 1e-12, "T=%g", temp)
	}
}

func TestDerivativeModes(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"analytic", "dual"} {
		mode, err := exercise.ParseDerivativeMode(name)
		require.NoError(t, err)
		require.Equal(t, name, string(mode))

		slope, err := exercise.Thermistor{R0: 5000, Beta: 3500, T0: 298}.SlopeFunc(mode)
		require.NoError(t, err)
		require.InDelta(t, -179.80028610832, slope(300), 1e-9)

		df, err := exercise.Resonance{L: 0.5, C: 10e-6}.SlopeFunc(mode)
		require.NoError(t, err)
		require.Less(t, df(50), 0.0)
	}

	_, err := exercise.ParseDerivativeMode("symbolic")
	require.ErrorIs(t, err, exercise.ErrUnknownDerivative)
	_, err = exercise.Thermistor{}.SlopeFunc("numeric")
	require.ErrorIs(t, err, exercise.ErrUnknownDerivative)
	_, err = exercise.Resonance{}.SlopeFunc("")
	require.ErrorIs(t, err, exercise.ErrUnknownDerivative)
}
