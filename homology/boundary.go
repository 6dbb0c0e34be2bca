// SPDX-License-Identifier: MIT
// Package homology — boundary operator construction.

package homology

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/matrix"
)

// NSimplices returns the n-simplices of c in insertion order. A nil complex
// or an out-of-range n yields an empty slice.
func NSimplices(c *core.Complex, n int) []core.Simplex {
	if c == nil {
		return []core.Simplex{}
	}

	return c.NSimplices(n)
}

// EulerCharacteristic returns Σ_{i=0}^{dim} (−1)^i |C_i|. No elimination is
// involved. A nil complex yields 0.
// Complexity: O(dim).
func EulerCharacteristic(c *core.Complex) int {
	if c == nil {
		return 0
	}
	chi := 0
	for i, f := range c.FVector() {
		chi += sign(i) * f
	}

	return chi
}

// BoundaryMatrix builds d_n: |C_{n-1}| rows × |C_n| columns.
//
// Implementation:
//   - n < 0: 0×0. n == 0: 0×|C_0| (the augmentation is not used).
//   - Otherwise rows are looked up through a map from simplex key to row
//     index, so each of the n+1 faces of a column costs O(n) instead of a
//     scan over C_{n-1}. A face that is missing leaves its entry 0; a
//     validated complex has none.
//
// The result is always integer-valued with entries in {−1, 0, +1}.
//
// Errors:
//   - ErrNilComplex.
//
// Complexity:
//   - Time O(|C_{n-1}|·|C_n| + |C_n|·n²) including zero-fill, Space O(|C_{n-1}|·|C_n|).
func BoundaryMatrix(c *core.Complex, n int) (*matrix.Dense, error) {
	if c == nil {
		return nil, homologyErrorf(opBoundary, ErrNilComplex)
	}
	if n < 0 {
		return matrix.NewDenseZeroOK(0, 0)
	}
	cols := c.NSimplices(n)
	if n == 0 {
		return matrix.NewDenseZeroOK(0, len(cols))
	}
	rows := c.NSimplices(n - 1)
	d, err := matrix.NewDenseZeroOK(len(rows), len(cols))
	if err != nil {
		return nil, homologyErrorf(opBoundary, err)
	}
	if len(rows) == 0 || len(cols) == 0 {
		return d, nil
	}

	rowOf := make(map[string]int, len(rows))
	for i, f := range rows {
		rowOf[f.Key()] = i
	}
	var (
		j, k, i int
		s       core.Simplex
		ok      bool
	)
	for j, s = range cols {
		for k = range s {
			if i, ok = rowOf[s.Face(k).Key()]; !ok {
				continue
			}
			if err = d.Set(i, j, float64(sign(k))); err != nil {
				return nil, homologyErrorf(opBoundary, fmt.Errorf("d_%d: %w", n, err))
			}
		}
	}

	return d, nil
}

// sign returns (−1)^k.
func sign(k int) int {
	if k%2 == 0 {
		return 1
	}

	return -1
}
