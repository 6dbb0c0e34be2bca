// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/integrality checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures both operands are non-nil and a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex ensures 0 <= i < m.Rows().
// Complexity: O(1).
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateIntegral ensures every entry is finite and has no fractional part.
// This is the precondition under which exact-zero pivoting yields the true rank.
// Complexity: O(r*c).
func ValidateIntegral(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	// Fast path: scan the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if !isIntegral(v) {
				return validatorErrorf(fmt.Sprintf("ValidateIntegral(%d,%d)", idx/d.c, idx%d.c), ErrNonIntegral)
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if !isIntegral(v) {
				return validatorErrorf(fmt.Sprintf("ValidateIntegral(%d,%d)", i, j), ErrNonIntegral)
			}
		}
	}

	return nil
}

// isIntegral reports whether v is a finite float with no fractional part.
func isIntegral(v float64) bool {
	return !isNonFinite(v) && math.Trunc(v) == v
}
