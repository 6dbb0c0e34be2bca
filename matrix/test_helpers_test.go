// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the elimination kernels.
//   • Keep all data finite and integral so the default numeric policy applies.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/simplicial/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustZeroOK allocates an r×c zero matrix (zero sizes allowed) or fails.
func MustZeroOK(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseZeroOK(r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEqualMatrix asserts exact, element-wise equality.
func RequireEqualMatrix(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%vgot:\n%v", want, got)
}

// RandomSignMatrix fills an r×c matrix with entries from {-1,0,+1} by seed,
// the coefficient alphabet of boundary operators.
func RandomSignMatrix(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustZeroOK(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(rng.Intn(3)-1)))
		}
	}

	return m
}

// triangleBoundary1 is ∂1 of the hollow triangle: rows [0] [1] [2], columns
// [0 1] [0 2] [1 2].
func triangleBoundary1(t testing.TB) *matrix.Dense {
	return MustDense(t, [][]float64{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	})
}

// triangleBoundary2 is ∂2 of the filled triangle: rows [0 1] [0 2] [1 2].
func triangleBoundary2(t testing.TB) *matrix.Dense {
	return MustDense(t, [][]float64{{1}, {-1}, {1}})
}
