// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
)

func TestDeterminant_Mesh(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, meshRows)

	det, err := linsolve.Determinant(a)
	require.NoError(t, err)
	require.Equal(t, meshDet, det) // integer arithmetic throughout

	det, err = linsolve.Determinant(a, linsolve.WithStrategy(linsolve.LU))
	require.NoError(t, err)
	require.InDelta(t, meshDet, det, 1e-12)
}

func TestDeterminant_BaseCases(t *testing.T) {
	t.Parallel()

	det, err := linsolve.Determinant(mustFrom(t, [][]float64{{-7}}))
	require.NoError(t, err)
	require.Equal(t, -7.0, det)

	det, err = linsolve.Determinant(mustFrom(t, [][]float64{{2, 1}, {5, 3}}))
	require.NoError(t, err)
	require.Equal(t, 1.0, det)

	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	det, err = linsolve.Determinant(id)
	require.NoError(t, err)
	require.Equal(t, 1.0, det)
}

func TestDeterminant_SingularIsZero(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, singularRows)
	for _, s := range []linsolve.Strategy{linsolve.Cofactor, linsolve.LU} {
		det, err := linsolve.Determinant(a, linsolve.WithStrategy(s))
		require.NoError(t, err, s.String())
		require.Zero(t, det, s.String())
	}
}

func TestDeterminant_StrategiesAgree(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		a := dominant(t, n, int64(n))
		c, err := linsolve.Determinant(a)
		require.NoError(t, err)
		l, err := linsolve.Determinant(a, linsolve.WithStrategy(linsolve.LU))
		require.NoError(t, err)
		require.InEpsilon(t, c, l, 1e-10, "n=%d", n)
	}
}

func TestAdjoint_Mesh(t *testing.T) {
	t.Parallel()

	adj, err := linsolve.Adjoint(mustFrom(t, meshRows))
	require.NoError(t, err)
	require.Equal(t, meshAdjoint, adj.ToRows())
}

func TestAdjoint_Identity(t *testing.T) {
	t.Parallel()

	// A·adj(A) = det(A)·I, including for singular A.
	for _, rows := range [][][]float64{meshRows, singularRows} {
		a := mustFrom(t, rows)
		adj, err := linsolve.Adjoint(a)
		require.NoError(t, err)
		det, err := linsolve.Determinant(a)
		require.NoError(t, err)

		prod, err := matrix.Mul(a, adj)
		require.NoError(t, err)
		want, err := matrix.NewIdentity(3)
		require.NoError(t, err)
		want, err = matrix.Scale(want, det)
		require.NoError(t, err)
		require.True(t, allClose(t, prod, want, 1e-12), "got\n%v", prod)
	}
}

func TestAdjoint_OneByOne(t *testing.T) {
	t.Parallel()

	adj, err := linsolve.Adjoint(mustFrom(t, [][]float64{{42}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, adj.ToRows())
}

func TestCofactor_ShapeErrors(t *testing.T) {
	t.Parallel()

	rect := mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := linsolve.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = linsolve.Determinant(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = linsolve.Determinant(rect, linsolve.WithStrategy(linsolve.Strategy(9)))
	require.ErrorIs(t, err, linsolve.ErrOptionViolation)

	_, err = linsolve.Adjoint(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = linsolve.Adjoint(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Mesh(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, meshRows)
	want := make([][]float64, 3)
	for i := range meshAdjoint {
		want[i] = make([]float64, 3)
		for j := range meshAdjoint[i] {
			want[i][j] = meshAdjoint[i][j] / meshDet
		}
	}

	for _, s := range []linsolve.Strategy{linsolve.Cofactor, linsolve.LU} {
		inv, err := linsolve.Inverse(a, linsolve.WithStrategy(s))
		require.NoError(t, err, s.String())
		requireMatrixInDelta(t, want, inv, 1e-12)

		// inv·b reproduces the eliminator's solution.
		x, err := matrix.MatVec(inv, meshRHS)
		require.NoError(t, err)
		require.InDeltaSlice(t, meshSolution, x, 1e-12)
	}
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, singularRows)
	for _, s := range []linsolve.Strategy{linsolve.Cofactor, linsolve.LU} {
		_, err := linsolve.Inverse(a, linsolve.WithStrategy(s))
		require.ErrorIs(t, err, linsolve.ErrSingular, s.String())
	}
}

func TestInverse_SingularTolerance(t *testing.T) {
	t.Parallel()

	// det = 1e-12.
	a := mustFrom(t, [][]float64{{1, 0}, {0, 1e-12}})
	_, err := linsolve.Inverse(a)
	require.NoError(t, err)
	_, err = linsolve.Inverse(a, linsolve.WithSingularTolerance(1e-9))
	require.ErrorIs(t, err, linsolve.ErrSingular)
	_, err = linsolve.Inverse(a, linsolve.WithStrategy(linsolve.LU), linsolve.WithSingularTolerance(1e-9))
	require.ErrorIs(t, err, linsolve.ErrSingular)
}

func TestInverse_RandomProperties(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			msg := fmt.Sprintf("n=%d seed=%d", n, seed)
			a := dominant(t, n, seed*10+int64(n))
			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)

			inv, err := linsolve.Inverse(a)
			require.NoError(t, err, msg)
			prod, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			require.True(t, allClose(t, prod, id, 1e-9), msg)

			// det·inv = adj.
			det, err := linsolve.Determinant(a)
			require.NoError(t, err)
			adj, err := linsolve.Adjoint(a)
			require.NoError(t, err)
			scaled, err := matrix.Scale(inv, det)
			require.NoError(t, err)
			require.True(t, allClose(t, scaled, adj, 1e-9*absf(det)+1e-9), msg)

			luInv, err := linsolve.Inverse(a, linsolve.WithStrategy(linsolve.LU))
			require.NoError(t, err, msg)
			require.True(t, allClose(t, inv, luInv, 1e-9), msg)
		}
	}
}

func TestInverse_DoesNotMutate(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, meshRows)
	_, err := linsolve.Inverse(a)
	require.NoError(t, err)
	_, err = linsolve.Inverse(a, linsolve.WithStrategy(linsolve.LU))
	require.NoError(t, err)
	require.Equal(t, meshRows, a.ToRows())
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
