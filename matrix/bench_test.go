// Package matrix_test provides benchmarks for the elimination kernels,
// using deterministic {-1,0,+1} fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/simplicial/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var sinkI int

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandomSignMatrix(b, n, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.Rank(m, matrix.WithoutIntegralCheck())
				if err != nil {
					b.Fatal(err)
				}
				sinkI = r
			}
		})
	}
}

func BenchmarkRankFallback(b *testing.B) {
	b.ReportAllocs()
	m := RandomSignMatrix(b, 64, 64, 4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := m.Clone()
		if err := matrix.GaussianEliminate(hide{work}); err != nil {
			b.Fatal(err)
		}
		r, err := matrix.CountPivots(hide{work})
		if err != nil {
			b.Fatal(err)
		}
		sinkI = r
	}
}

func BenchmarkExactRank(b *testing.B) {
	b.ReportAllocs()
	m := RandomSignMatrix(b, 24, 24, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := matrix.ExactRank(m)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = r
	}
}
