// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/rootfind"
)

var sinkRoot float64

func BenchmarkBisection(b *testing.B) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, _, err := rootfind.Bisection(f, 0, 0, 1, 1e-12)
		if err != nil {
			b.Fatal(err)
		}
		sinkRoot = r
	}
}

func BenchmarkNewtonRaphson(b *testing.B) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	df := func(x float64) float64 { return -math.Sin(x) - 1 }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, _, err := rootfind.NewtonRaphson(f, df, 0, 0.5, 1e-12, 50)
		if err != nil {
			b.Fatal(err)
		}
		sinkRoot = r
	}
}
