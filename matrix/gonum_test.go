// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numlab/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{4, -1, -1}, {-1, 3, -1}, {-1, 1, 5}})
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	require.Equal(t, -1.0, g.At(2, 0))

	// Mutating the gonum copy must not leak back.
	g.Set(0, 0, 0)
	require.Equal(t, 4.0, MustAt(t, a, 0, 0))

	back, err := matrix.FromGonum(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, back)

	_, err = matrix.ToGonum(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
