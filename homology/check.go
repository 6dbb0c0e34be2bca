// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/matrix"
)

// CheckBoundarySquare verifies d_n · d_{n+1} = 0 for n = 1..dim. The check
// exercises BoundaryMatrix and matrix.Mul only, never elimination.
//
// Errors:
//   - ErrNilComplex, ErrBoundaryNotNilpotent (wrapped with n).
//
// Complexity:
//   - Σ_n O(|C_{n-1}|·|C_n|·|C_{n+1}|).
func CheckBoundarySquare(c *core.Complex) error {
	if c == nil {
		return homologyErrorf(opCheckSquare, ErrNilComplex)
	}
	for n := 1; n <= c.Dim(); n++ {
		dn, err := BoundaryMatrix(c, n)
		if err != nil {
			return homologyErrorf(opCheckSquare, err)
		}
		dn1, err := BoundaryMatrix(c, n+1)
		if err != nil {
			return homologyErrorf(opCheckSquare, err)
		}
		p, err := matrix.Mul(dn, dn1)
		if err != nil {
			return homologyErrorf(opCheckSquare, err)
		}
		zero, err := matrix.IsZero(p)
		if err != nil {
			return homologyErrorf(opCheckSquare, err)
		}
		if !zero {
			return homologyErrorf(opCheckSquare, fmt.Errorf("%s: d_%d·d_%d: %w", c.Name(), n, n+1, ErrBoundaryNotNilpotent))
		}
		log.Debugf("%s: d_%d·d_%d = 0 (%dx%d)", c.Name(), n, n+1, p.Rows(), p.Cols())
	}

	return nil
}
