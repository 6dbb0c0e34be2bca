// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
)

// Summary gathers the invariants of one complex for reporting.
type Summary struct {
	Name    string // complex name
	Dim     int    // largest simplex dimension
	FVector []int  // |C_0| … |C_dim|
	Euler   int    // Euler characteristic
	Betti   []int  // β_0 … β_dim
}

// Summarize computes the Euler characteristic and the Betti numbers of c and
// cross-checks them with the Euler–Poincaré formula χ = Σ(−1)^i β_i. The two
// sides come from independent code paths (simplex counts versus ranks), so a
// mismatch points at a defect and is reported as ErrEulerPoincare. β_0 is
// also compared with the component count from Components
// (ErrComponentCount).
//
// Errors:
//   - ErrNilComplex, ErrEulerPoincare, ErrComponentCount, plus anything
//     Homology returns.
func Summarize(c *core.Complex, opts ...Option) (Summary, error) {
	if c == nil {
		return Summary{}, homologyErrorf(opSummarize, ErrNilComplex)
	}
	betti, err := Homology(c, opts...)
	if err != nil {
		return Summary{}, homologyErrorf(opSummarize, err)
	}
	chi := EulerCharacteristic(c)
	alt := 0
	for i, b := range betti {
		alt += sign(i) * b
	}
	if alt != chi {
		log.Warnf("%s: euler characteristic %d, alternating betti sum %d", c.Name(), chi, alt)

		return Summary{}, homologyErrorf(opSummarize,
			fmt.Errorf("%s: chi=%d, sum=%d: %w", c.Name(), chi, alt, ErrEulerPoincare))
	}

	comps, err := Components(c)
	if err != nil {
		return Summary{}, homologyErrorf(opSummarize, err)
	}
	if len(comps) != betti[0] {
		log.Warnf("%s: %d components, betti_0 %d", c.Name(), len(comps), betti[0])

		return Summary{}, homologyErrorf(opSummarize,
			fmt.Errorf("%s: components=%d, b0=%d: %w", c.Name(), len(comps), betti[0], ErrComponentCount))
	}

	return Summary{
		Name:    c.Name(),
		Dim:     c.Dim(),
		FVector: c.FVector(),
		Euler:   chi,
		Betti:   betti,
	}, nil
}
