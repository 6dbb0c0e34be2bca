// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with builderErrorf, which keeps %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, d) is below the
// minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooLarge indicates a dimension whose closure would exceed the facet
// width core accepts.
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSolid indicates a PlatonicSurface value with no triangulation.
var ErrUnknownSolid = errors.New("builder: unknown solid")

// ErrUnknownComplex indicates a Lookup for a name absent from the catalog.
var ErrUnknownComplex = errors.New("builder: unknown catalog complex")

// ErrConstructFailed indicates a nil constructor or a failure while closing
// and validating the emitted facets.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
