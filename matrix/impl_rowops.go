// SPDX-License-Identifier: MIT
// Package matrix — elementary row operations (in place).
//
// Purpose:
//   - The three elementary row operations Gaussian elimination is made of:
//     swap two rows, scale a row, add a multiple of one row to another.
//   - Public kernels validate indices and scalars and return sentinels; the
//     unexported *Dense helpers skip validation and are used in hot loops.
//
// Determinism:
//   - Fixed column order 0..c-1; no allocations on the *Dense fast path.

package matrix

import "fmt"

// Operation tags for row operations.
const (
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
)

// SwapRows exchanges rows i and j of m in place. i == j is a no-op.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func SwapRows(m Matrix, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if i == j {
		return nil
	}
	if d, ok := m.(*Dense); ok {
		d.swapRows(i, j)

		return nil
	}

	// Fallback: element-wise exchange through the interface.
	var k int
	var a, b float64
	var err error
	for k = 0; k < m.Cols(); k++ {
		if a, err = m.At(i, k); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
		if b, err = m.At(j, k); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
		if err = m.Set(i, k, b); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
		if err = m.Set(j, k, a); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
	}

	return nil
}

// ScaleRow multiplies every entry of row i by c in place.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite c).
//
// Complexity:
//   - Time O(c), Space O(1).
func ScaleRow(m Matrix, i int, c float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	if isNonFinite(c) {
		return matrixErrorf(opScaleRow, fmt.Errorf("scalar %v: %w", c, ErrNaNInf))
	}
	if d, ok := m.(*Dense); ok {
		d.scaleRow(i, c)

		return nil
	}

	var k int
	var v float64
	var err error
	for k = 0; k < m.Cols(); k++ {
		if v, err = m.At(i, k); err != nil {
			return matrixErrorf(opScaleRow, err)
		}
		if err = m.Set(i, k, c*v); err != nil {
			return matrixErrorf(opScaleRow, err)
		}
	}

	return nil
}

// AddScaledRow performs row[target] += c * row[source] in place.
// target == source is allowed and scales the row by (1+c).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite c).
//
// Complexity:
//   - Time O(c), Space O(1).
func AddScaledRow(m Matrix, target, source int, c float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if err := ValidateRowIndex(m, target); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if err := ValidateRowIndex(m, source); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if isNonFinite(c) {
		return matrixErrorf(opAddScaledRow, fmt.Errorf("scalar %v: %w", c, ErrNaNInf))
	}
	if d, ok := m.(*Dense); ok {
		d.addScaledRow(target, source, c, 0)

		return nil
	}

	var k int
	var t, s float64
	var err error
	for k = 0; k < m.Cols(); k++ {
		if t, err = m.At(target, k); err != nil {
			return matrixErrorf(opAddScaledRow, err)
		}
		if s, err = m.At(source, k); err != nil {
			return matrixErrorf(opAddScaledRow, err)
		}
		if err = m.Set(target, k, t+c*s); err != nil {
			return matrixErrorf(opAddScaledRow, err)
		}
	}

	return nil
}

// ---------- unchecked *Dense helpers (indices validated by callers) ----------

// swapRows exchanges rows i and j of the flat buffer.
func (m *Dense) swapRows(i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// scaleRow multiplies row i by c.
func (m *Dense) scaleRow(i int, c float64) {
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= c
	}
}

// addScaledRow performs row[target] += c*row[source] for columns from..c-1.
// Columns left of `from` are not touched (they are zero in both rows during
// elimination).
func (m *Dense) addScaledRow(target, source int, c float64, from int) {
	tr := m.data[target*m.c : (target+1)*m.c]
	sr := m.data[source*m.c : (source+1)*m.c]
	for k := from; k < m.c; k++ {
		tr[k] += c * sr[k]
	}
}
