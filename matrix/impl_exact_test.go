// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the big-integer rank backend.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/matrix"
	"github.com/stretchr/testify/require"
)

// transpose returns mᵀ as a fresh Dense.
func transpose(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	out := MustZeroOK(t, m.Cols(), m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(t, out.Set(j, i, MustAt(t, m, i, j)))
		}
	}

	return out
}

// TestExactRank_Table compares ExactRank with the float kernel on small
// matrices whose rank is known.
func TestExactRank_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want int
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, 2},
		{"dependent rows", [][]float64{{1, 2}, {2, 4}}, 1},
		{"zero", [][]float64{{0, 0}, {0, 0}}, 0},
		{"swap from the bottom", [][]float64{{0, 0, 1}, {0, 2, 3}, {4, 5, 6}}, 3},
		{"triangle boundary", [][]float64{{-1, -1, 0}, {1, 0, -1}, {0, 1, 1}}, 2},
		{"pivot-less column", [][]float64{{0, 1, 2}, {0, 2, 4}, {0, 3, 7}}, 2},
		{"torsion pivot", [][]float64{{2, 0}, {0, 2}, {2, 2}}, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustDense(t, tc.in)
			got, err := matrix.ExactRank(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			viaFloat, err := matrix.Rank(m)
			require.NoError(t, err)
			require.Equal(t, viaFloat, got)

			fallback, err := matrix.ExactRank(hide{m})
			require.NoError(t, err)
			require.Equal(t, got, fallback)
		})
	}
}

// TestExactRank_TransposeInvariant checks rank(A) == rank(Aᵀ) on random
// sign matrices, which exercises long elimination chains.
func TestExactRank_TransposeInvariant(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 15; seed++ {
		m := RandomSignMatrix(t, 10, 14, seed)
		r1, err := matrix.ExactRank(m)
		require.NoError(t, err)
		r2, err := matrix.ExactRank(transpose(t, m))
		require.NoError(t, err)
		require.Equal(t, r1, r2, "seed %d", seed)
		require.LessOrEqual(t, r1, 10)
	}
}

// TestExactRank_DoesNotMutate keeps the input intact.
func TestExactRank_DoesNotMutate(t *testing.T) {
	m := triangleBoundary1(t)
	before := m.Clone()
	_, err := matrix.ExactRank(m)
	require.NoError(t, err)
	RequireEqualMatrix(t, before, m)
}

// TestExactRank_Edges covers empty shapes and every failure sentinel.
func TestExactRank_Edges(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		r, err := matrix.ExactRank(MustZeroOK(t, shape[0], shape[1]))
		require.NoError(t, err)
		require.Zero(t, r)
	}

	_, err := matrix.ExactRank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ExactRank(MustDense(t, [][]float64{{0.5}}))
	require.ErrorIs(t, err, matrix.ErrNonIntegral)

	_, err = matrix.ExactRank(MustDense(t, [][]float64{{1e19}}))
	require.ErrorIs(t, err, matrix.ErrPrecisionLoss)
}
