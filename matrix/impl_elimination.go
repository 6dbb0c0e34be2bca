// SPDX-License-Identifier: MIT
// Package matrix — forward Gaussian elimination and pivot counting.
//
// Purpose:
//   - GaussianEliminate: row-echelon form in place (no back-substitution, no
//     normalization of pivots to 1).
//   - CountPivots: number of non-zero rows, i.e. the rank of an echelon matrix.
//   - Rank: eliminate a clone and count.
//   - IsRowEchelon: structural check used by tests and by callers that accept
//     pre-reduced input.
//
// Pivot policy:
//   - A pivot is any entry != 0.0 (exact comparison, no epsilon). The first
//     non-zero entry at or below the cursor row is taken; no partial pivoting
//     by magnitude. This keeps the row order reproducible.
//
// Termination:
//   - Every iteration advances the column cursor, and the row cursor advances
//     whenever a pivot is found; both are bounded by the shape.

package matrix

// Operation tags for elimination kernels.
const (
	opEliminate    = "GaussianEliminate"
	opCountPivots  = "CountPivots"
	opRank         = "Rank"
	opIsRowEchelon = "IsRowEchelon"
)

// GaussianEliminate converts m to row-echelon form in place.
//
// Implementation:
//   - Stage 1: validate m; a matrix with zero rows is returned untouched.
//   - Stage 2: unless WithoutIntegralCheck, reject non-integral entries
//     (ErrNonIntegral) before any mutation.
//   - Stage 3: cursor (i, j) from (0, 0). If M[i][j] == 0, swap in the first
//     row below with a non-zero in column j, or advance j when there is none.
//     Then eliminate every non-zero M[r][j], r > i, via
//     AddScaledRow(r, i, -M[r][j]/M[i][j]) and advance both cursors.
//
// Behavior highlights:
//   - Rows already zero in the pivot column are skipped, not combined.
//   - The eliminated entry is stored as an exact 0.
//   - Idempotent: a second call leaves an echelon matrix unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrNonIntegral, plus accessor errors on the fallback path.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(1).
func GaussianEliminate(m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEliminate, err)
	}
	if m.Rows() == 0 {
		return nil
	}
	o := gatherOptions(opts...)
	if o.integralCheck {
		if err := ValidateIntegral(m); err != nil {
			return matrixErrorf(opEliminate, err)
		}
	}
	if d, ok := m.(*Dense); ok {
		d.eliminate()

		return nil
	}
	if err := eliminateGeneric(m); err != nil {
		return matrixErrorf(opEliminate, err)
	}

	return nil
}

// eliminate is the *Dense fast path working on the flat buffer.
func (m *Dense) eliminate() {
	rows, cols := m.r, m.c
	var i, j, r int
	var p, a float64
	for i < rows && j < cols {
		if m.data[i*cols+j] == 0 {
			// Scan below for the first non-zero entry in column j.
			for r = i + 1; r < rows && m.data[r*cols+j] == 0; r++ {
			}
			if r == rows {
				j++ // no pivot in this column; keep the row cursor

				continue
			}
			m.swapRows(i, r)
		}
		p = m.data[i*cols+j]
		for r = i + 1; r < rows; r++ {
			a = m.data[r*cols+j]
			if a == 0 {
				continue
			}
			m.addScaledRow(r, i, -a/p, j)
			m.data[r*cols+j] = 0
		}
		i++
		j++
	}
}

// eliminateGeneric mirrors (*Dense).eliminate through the Matrix interface.
func eliminateGeneric(m Matrix) error {
	rows, cols := m.Rows(), m.Cols()
	var i, j, r int
	var p, a float64
	var err error
	for i < rows && j < cols {
		if p, err = m.At(i, j); err != nil {
			return err
		}
		if p == 0 {
			found := -1
			for r = i + 1; r < rows; r++ {
				if a, err = m.At(r, j); err != nil {
					return err
				}
				if a != 0 {
					found = r

					break
				}
			}
			if found < 0 {
				j++

				continue
			}
			if err = SwapRows(m, i, found); err != nil {
				return err
			}
			if p, err = m.At(i, j); err != nil {
				return err
			}
		}
		for r = i + 1; r < rows; r++ {
			if a, err = m.At(r, j); err != nil {
				return err
			}
			if a == 0 {
				continue
			}
			if err = AddScaledRow(m, r, i, -a/p); err != nil {
				return err
			}
			if err = m.Set(r, j, 0); err != nil {
				return err
			}
		}
		i++
		j++
	}

	return nil
}

// CountPivots returns the number of rows of m that are not identically zero.
// For a matrix in row-echelon form this equals its rank. A matrix with zero
// rows yields 0.
//
// Errors:
//   - ErrNilMatrix, plus accessor errors on the fallback path.
//
// Complexity:
//   - Time O(r·c), Space O(1).
func CountPivots(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCountPivots, err)
	}
	rows, cols := m.Rows(), m.Cols()
	count := 0
	var i, j int

	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for _, v := range d.data[i*cols : (i+1)*cols] {
				if v != 0 {
					count++

					break
				}
			}
		}

		return count, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opCountPivots, err)
			}
			if v != 0 {
				count++

				break
			}
		}
	}

	return count, nil
}

// Rank returns the rank of m without mutating it: the matrix is cloned,
// eliminated and its pivots counted.
//
// Errors:
//   - as GaussianEliminate and CountPivots.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) for the clone.
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	work := m.Clone()
	if err := GaussianEliminate(work, opts...); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	n, err := CountPivots(work)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return n, nil
}

// IsRowEchelon reports whether m is in row-echelon form: every zero row lies
// below all non-zero rows, and each row's leading entry is strictly to the
// right of the leading entry of the row above it.
//
// Complexity:
//   - Time O(r·c), Space O(1).
func IsRowEchelon(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsRowEchelon, err)
	}
	prevLead := -1
	seenZeroRow := false
	var i, j, lead int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		lead = -1
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opIsRowEchelon, err)
			}
			if v != 0 {
				lead = j

				break
			}
		}
		if lead < 0 {
			seenZeroRow = true

			continue
		}
		if seenZeroRow || lead <= prevLead {
			return false, nil
		}
		prevLead = lead
	}

	return true, nil
}
