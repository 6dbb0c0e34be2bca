// SPDX-License-Identifier: MIT
// Package homology — Betti numbers via rank–nullity.
//
// Stage order per dimension n (see BettiNumber):
//   1. build d_n and d_{n+1} fresh;
//   2. reduce each independently (float elimination or exact rank);
//   3. β_n = (|C_n| − rank d_n) − rank d_{n+1}, rejected when negative.

package homology

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/matrix"
)

// BettiNumber returns β_n, the rank of the n-th homology group of c over
// the field of reals.
//
// Errors:
//   - ErrNilComplex; ErrDimensionOutOfRange for n < 0 or n > c.Dim();
//   - ErrNegativeBetti when rank–nullity yields a negative value;
//   - matrix errors from elimination.
//
// Complexity:
//   - O(|C_{n-1}|·|C_n|·min(|C_{n-1}|,|C_n|) + the same for d_{n+1}).
func BettiNumber(c *core.Complex, n int, opts ...Option) (int, error) {
	if c == nil {
		return 0, homologyErrorf(opBetti, ErrNilComplex)
	}
	o := gatherOptions(opts...)
	b, err := bettiNumber(c, n, o)
	if err != nil {
		return 0, homologyErrorf(opBetti, err)
	}

	return b, nil
}

// Homology returns [β_0, …, β_dim]. Each entry is computed by an independent
// BettiNumber evaluation; with WithWorkers(k), k > 1, up to k dimensions run
// concurrently and the result is still ordered by n.
//
// Errors:
//   - ErrNilComplex, plus anything BettiNumber returns for some n. On error
//     the slice is nil.
func Homology(c *core.Complex, opts ...Option) ([]int, error) {
	if c == nil {
		return nil, homologyErrorf(opHomology, ErrNilComplex)
	}
	o := gatherOptions(opts...)
	betti := make([]int, c.Dim()+1)

	if o.workers <= 1 || len(betti) == 1 {
		var err error
		for n := range betti {
			if betti[n], err = bettiNumber(c, n, o); err != nil {
				return nil, homologyErrorf(opHomology, err)
			}
		}

		return betti, nil
	}

	// Each goroutine owns its matrices and writes one distinct slot.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for n := range betti {
		n := n
		g.Go(func() error {
			b, err := bettiNumber(c, n, o)
			if err != nil {
				return err
			}
			betti[n] = b

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, homologyErrorf(opHomology, err)
	}

	return betti, nil
}

// bettiNumber is the unwrapped worker shared by BettiNumber and Homology.
func bettiNumber(c *core.Complex, n int, o Options) (int, error) {
	if n < 0 || n > c.Dim() {
		return 0, fmt.Errorf("n=%d, dim=%d: %w", n, c.Dim(), ErrDimensionOutOfRange)
	}
	dn, err := BoundaryMatrix(c, n)
	if err != nil {
		return 0, err
	}
	dn1, err := BoundaryMatrix(c, n+1)
	if err != nil {
		return 0, err
	}
	rankN, err := rank(dn, o)
	if err != nil {
		return 0, fmt.Errorf("d_%d: %w", n, err)
	}
	rankN1, err := rank(dn1, o)
	if err != nil {
		return 0, fmt.Errorf("d_%d: %w", n+1, err)
	}

	kernel := c.Count(n) - rankN
	b := kernel - rankN1
	log.Debugf("%s n=%d: d_%d %dx%d rank %d, d_%d %dx%d rank %d, betti %d",
		c.Name(), n, n, dn.Rows(), dn.Cols(), rankN, n+1, dn1.Rows(), dn1.Cols(), rankN1, b)
	if b < 0 {
		log.Warnf("%s n=%d: kernel %d smaller than image %d", c.Name(), n, kernel, rankN1)

		return 0, fmt.Errorf("n=%d: kernel %d, image %d: %w", n, kernel, rankN1, ErrNegativeBetti)
	}

	return b, nil
}

// rank reduces d, which the caller owns, and returns its rank. The float
// path eliminates in place and counts pivots; the exact path leaves d as is.
func rank(d *matrix.Dense, o Options) (int, error) {
	if o.exact {
		return matrix.ExactRank(d)
	}
	if err := matrix.GaussianEliminate(d); err != nil {
		return 0, err
	}

	return matrix.CountPivots(d)
}
