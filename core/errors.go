// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for complex construction.
var (
	// ErrEmptyName indicates that a complex was given an empty name.
	ErrEmptyName = errors.New("core: complex name is empty")

	// ErrEmptyComplex indicates that a complex has no simplices.
	ErrEmptyComplex = errors.New("core: complex has no simplices")

	// ErrEmptySimplex indicates a simplex with no vertices.
	ErrEmptySimplex = errors.New("core: simplex is empty")

	// ErrNegativeVertex indicates a vertex label below zero.
	ErrNegativeVertex = errors.New("core: negative vertex label")

	// ErrNotIncreasing indicates a simplex whose labels are not strictly increasing.
	ErrNotIncreasing = errors.New("core: simplex labels not strictly increasing")

	// ErrRepeatedVertex indicates a facet that names the same vertex twice.
	ErrRepeatedVertex = errors.New("core: facet repeats a vertex")

	// ErrDuplicateSimplex indicates the same simplex supplied more than once.
	ErrDuplicateSimplex = errors.New("core: duplicate simplex")

	// ErrMissingFace indicates a face of some simplex that is not in the complex.
	ErrMissingFace = errors.New("core: face missing from complex")

	// ErrFacetTooLarge indicates a facet with more than MaxFacetVertices vertices.
	ErrFacetTooLarge = errors.New("core: facet too large to close")
)

// Operation tags.
const (
	opNew        = "New"
	opFromFacets = "FromFacets"
)

// coreErrorf wraps err with the operation tag only.
func coreErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// simplexErrorf wraps err with the operation and the offending simplex.
func simplexErrorf(op string, s []int, err error) error {
	return fmt.Errorf("%s: simplex %v: %w", op, s, err)
}
