// SPDX-License-Identifier: MIT
// Package matrix — exact rank over the rationals.
//
// Purpose:
//   - Compute the rank of an integer-valued matrix with no floating-point
//     arithmetic at all, as a cross-check of GaussianEliminate and for callers
//     whose matrices are not restricted to small boundary coefficients.
//
// Implementation:
//   - Entries are copied into a bigmatrix.BigMatrix of integer BigNumbers.
//   - Bareiss fraction-free forward elimination:
//     row_r ← (p·row_r − a·row_i) / prev, where p is the pivot, a the entry to
//     clear and prev the previous pivot. The division is always exact, so
//     integers stay integers and entries stay bounded by the minors of the
//     input. Pivot selection (first non-zero at or below the cursor) matches
//     GaussianEliminate, so both produce the same pivot columns.
//
// Limits:
//   - bignumber truncates products wider than its automatic precision; such a
//     truncation turns the value into a non-integer and is reported as
//     ErrPrecisionLoss instead of a wrong rank.

package matrix

import (
	"fmt"
	"math"
	"math/big"

	"github.com/predrag3141/PSLQ/bigmatrix"
	"github.com/predrag3141/PSLQ/bignumber"
)

const opExactRank = "ExactRank"

// int64Bound is 2^63; integral floats at or beyond it do not fit an int64.
const int64Bound = 1 << 63

// ExactRank returns the rank of the integer-valued matrix m using exact
// big-integer elimination. m is not mutated.
//
// Example:
//
//	r, err := matrix.ExactRank(d) // same value as Rank(d), no float arithmetic
//
// Errors:
//   - ErrNilMatrix, ErrNonIntegral (entry with a fractional part or NaN/Inf),
//     ErrPrecisionLoss (entry outside int64, or intermediate truncation).
//
// Complexity:
//   - O(r·c·min(r,c)) big-integer operations.
func ExactRank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opExactRank, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	if err := ValidateIntegral(m); err != nil {
		return 0, matrixErrorf(opExactRank, err)
	}

	values := make([]int64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opExactRank, err)
			}
			if math.Abs(v) >= int64Bound {
				return 0, matrixErrorf(opExactRank, fmt.Errorf("entry (%d,%d)=%g: %w", i, j, v, ErrPrecisionLoss))
			}
			values[i*cols+j] = int64(v)
		}
	}

	bm, err := bigmatrix.NewFromInt64Array(values, rows, cols)
	if err != nil {
		return 0, matrixErrorf(opExactRank, err)
	}
	if err = eliminateExact(bm); err != nil {
		return 0, matrixErrorf(opExactRank, err)
	}

	return countExactPivots(bm)
}

// eliminateExact runs Bareiss forward elimination on bm in place.
//
// Every row below the pivot row is rewritten as (p·row_r − a·row_i)/prev,
// including rows whose entry a is already zero, so that all rows below the
// cursor share one scale and the division by the previous pivot stays exact.
func eliminateExact(bm *bigmatrix.BigMatrix) error {
	rows, cols := bm.Dimensions()
	prev := bignumber.NewFromInt64(1)
	var i, j, r, k int
	var cell, piv, x, y *bignumber.BigNumber
	var err error
	for i < rows && j < cols {
		if piv, err = bm.Get(i, j); err != nil {
			return err
		}
		if piv.IsZero() {
			found := -1
			for r = i + 1; r < rows; r++ {
				if cell, err = bm.Get(r, j); err != nil {
					return err
				}
				if !cell.IsZero() {
					found = r

					break
				}
			}
			if found < 0 {
				j++

				continue
			}
			// A 2-cycle is a plain swap of rows i and found.
			if err = bm.PermuteRows([][]int{{i, found}}); err != nil {
				return err
			}
			if piv, err = bm.Get(i, j); err != nil {
				return err
			}
		}

		p := bignumber.NewFromBigNumber(piv)
		for r = i + 1; r < rows; r++ {
			if cell, err = bm.Get(r, j); err != nil {
				return err
			}
			a := bignumber.NewFromBigNumber(cell)
			cell.Set(bignumber.NewFromInt64(0))
			for k = j + 1; k < cols; k++ {
				// Get hands out the stored pointer, so x is updated in place.
				if x, err = bm.Get(r, k); err != nil {
					return err
				}
				if y, err = bm.Get(i, k); err != nil {
					return err
				}
				lhs := bignumber.NewFromInt64(0).Mul(p, x)
				rhs := bignumber.NewFromInt64(0).Mul(a, y)
				x.Sub(lhs, rhs)
				if err = exactQuo(x, prev); err != nil {
					return fmt.Errorf("row %d col %d: %w", r, k, err)
				}
			}
		}
		prev = p
		i++
		j++
	}

	return nil
}

// exactQuo replaces x by x/d. d must divide x; anything else means an
// intermediate value was truncated.
func exactQuo(x, d *bignumber.BigNumber) error {
	xi, err := asBigInt(x)
	if err != nil {
		return err
	}
	di, err := asBigInt(d)
	if err != nil {
		return err
	}
	if di.Cmp(bigOne) == 0 {
		return nil
	}
	q, rem := new(big.Int).QuoRem(xi, di, new(big.Int))
	if rem.Sign() != 0 {
		return ErrPrecisionLoss
	}
	x.Set(bignumber.NewFromInt(q))

	return nil
}

var bigOne = big.NewInt(1)

// asBigInt extracts the integer value of v, or ErrPrecisionLoss when v is no
// longer an integer or is too wide to convert exactly.
func asBigInt(v *bignumber.BigNumber) (*big.Int, error) {
	if !v.IsInt() {
		return nil, ErrPrecisionLoss
	}
	f := v.AsFloat()
	if f.Acc() != big.Exact {
		return nil, ErrPrecisionLoss
	}
	z, acc := f.Int(nil)
	if acc != big.Exact {
		return nil, ErrPrecisionLoss
	}

	return z, nil
}

// countExactPivots counts the rows of bm that are not identically zero.
func countExactPivots(bm *bigmatrix.BigMatrix) (int, error) {
	rows, cols := bm.Dimensions()
	count := 0
	var i, j int
	var cell *bignumber.BigNumber
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if cell, err = bm.Get(i, j); err != nil {
				return 0, matrixErrorf(opExactRank, err)
			}
			if !cell.IsZero() {
				count++

				break
			}
		}
	}

	return count, nil
}
