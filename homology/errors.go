// SPDX-License-Identifier: MIT

package homology

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilComplex indicates a nil *core.Complex argument.
	ErrNilComplex = errors.New("homology: nil complex")

	// ErrDimensionOutOfRange indicates a Betti number requested for n < 0 or
	// n > Dim(). β_n is 0 there; the request usually hides a caller bug.
	ErrDimensionOutOfRange = errors.New("homology: dimension out of range")

	// ErrNegativeBetti indicates that rank–nullity produced a negative value,
	// which is impossible for a valid complex and correct ranks.
	ErrNegativeBetti = errors.New("homology: negative Betti number")

	// ErrEulerPoincare indicates that Σ(−1)^i β_i differs from the Euler
	// characteristic.
	ErrEulerPoincare = errors.New("homology: Euler–Poincaré check failed")

	// ErrComponentCount indicates that β_0 differs from the number of
	// connected components found by graph search.
	ErrComponentCount = errors.New("homology: component count mismatch")

	// ErrBoundaryNotNilpotent indicates a non-zero product d_n · d_{n+1}.
	ErrBoundaryNotNilpotent = errors.New("homology: boundary of a boundary is not zero")
)

// Operation tags.
const (
	opBoundary    = "BoundaryMatrix"
	opBetti       = "BettiNumber"
	opHomology    = "Homology"
	opSummarize   = "Summarize"
	opCheckSquare = "CheckBoundarySquare"
)

// homologyErrorf wraps err with an operation tag, keeping it reachable via %w.
func homologyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
