// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix product and exact comparisons. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Zero-sized operands are legal everywhere in this file; the product of an
//     r×0 and a 0×c matrix is the r×c zero matrix.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul    = "Mul"
	opIsZero = "IsZero"
	opEqual  = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep working. Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a × b into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: fast path on (*Dense, *Dense) using i→k→j loops over flat
//     buffers; otherwise the same loop order through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < rows; i++ {
				out := res.data[i*cols : (i+1)*cols]
				for k = 0; k < inner; k++ {
					aik = da.data[i*inner+k]
					if aik == 0 {
						continue
					}
					row := db.data[k*cols : (k+1)*cols]
					for j = 0; j < cols; j++ {
						out[j] += aik * row[j]
					}
				}
			}

			return res, nil
		}
	}

	var bkj float64
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if aik == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*cols+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// IsZero reports whether every entry of m is exactly 0.
// Complexity: O(r·c).
func IsZero(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if v != 0 {
				return false, nil
			}
		}

		return true, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opIsZero, err)
			}
			if v != 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and identical entries
// (exact comparison; -0 equals +0).
// Complexity: O(r·c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
