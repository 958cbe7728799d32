// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

// meshRows is the three-loop resistor network: A·I = V.
var (
	meshRows = [][]float64{
		{4, -1, -1},
		{-1, 3, -1},
		{-1, 1, 5},
	}
	meshRHS = []float64{5, 3, 4}

	// Exact values: x = adj(A)·b / det(A).
	meshSolution = []float64{27.0 / 14.0, 107.0 / 56.0, 45.0 / 56.0}
	meshDet      = 56.0
	meshAdjoint  = [][]float64{
		{16, 4, 4},
		{6, 19, 5},
		{2, -3, 11},
	}

	singularRows = [][]float64{
		{1, 2, 3},
		{1, 2, 3},
		{4, 5, 6},
	}
)

// mustFrom BUILDS a *Dense from a row literal or fails the test.
func mustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// dominant RETURNS a seeded n×n matrix with U(-1,1) entries and n+3 added to
// the diagonal, so it is strictly diagonally dominant and nonsingular.
func dominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n) + 3
	}

	return mustFrom(t, rows)
}

// randomVec RETURNS a seeded U(-10,10) vector.
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// requireMatrixInDelta ASSERTS element-wise closeness to a row literal.
func requireMatrixInDelta(t *testing.T, want [][]float64, got *matrix.Dense, delta float64) {
	t.Helper()
	rows := got.ToRows()
	require.Len(t, rows, len(want))
	for i := range want {
		require.InDeltaSlice(t, want[i], rows[i], delta, "row %d", i)
	}
}

func nan() float64 { return math.NaN() }

// allClose REPORTS whether |a-b| <= atol element-wise, failing on shape errors.
func allClose(t *testing.T, a, b *matrix.Dense, atol float64) bool {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, atol)
	require.NoError(t, err)

	return ok
}
