// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go — RandomTwoComplex(n, p): a Linial–Meshulam style random
// 2-complex.
//
// Model:
//   • Full 1-skeleton: every edge {i,j}, 0 ≤ i < j < n, is present.
//   • Every triangle {i,j,k}, i < j < k, is added independently with
//     probability p.
//
// Contract:
//   • n ≥ MinRandomVertices, p ∈ [0,1].
//   • cfg.rng is required only when 0 < p < 1; p = 0 and p = 1 are
//     deterministic and draw nothing.
//   • Trials run in lexicographic (i,j,k) order, so a fixed seed yields the
//     same complex.
//
// Complexity:
//   • O(n³) Bernoulli trials, O(n² + accepted) facets.

package builder

import "fmt"

// RandomTwoComplex returns a Constructor emitting the complete graph on n
// vertices plus a random subset of its triangles.
func RandomTwoComplex(n int, p float64) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		if err := validateMin(MethodRandomTwoComplex, n, MinRandomVertices); err != nil {
			return nil, err
		}
		if err := validateProbability(MethodRandomTwoComplex, p); err != nil {
			return nil, err
		}
		needRNG := p > MinProbability && p < MaxProbability
		if needRNG && cfg.rng == nil {
			return nil, fmt.Errorf("%s: need rng for 0<p<1: %w", MethodRandomTwoComplex, ErrNeedRandSource)
		}

		facets := make([][]int, 0, n*(n-1)/2)
		var i, j, k int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				facets = append(facets, []int{cfg.label(i), cfg.label(j)})
			}
		}

		accepted := 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				for k = j + 1; k < n; k++ {
					if !trial(cfg, p, needRNG) {
						continue
					}
					facets = append(facets, []int{cfg.label(i), cfg.label(j), cfg.label(k)})
					accepted++
				}
			}
		}
		log.Debugf("%s(n=%d, p=%g): %d triangles", MethodRandomTwoComplex, n, p, accepted)

		return facets, nil
	}
}

// trial performs one Bernoulli(p) draw; the extremes never touch the rng.
func trial(cfg builderConfig, p float64, needRNG bool) bool {
	if !needRNG {
		return p == MaxProbability
	}

	return cfg.rng.Float64() < p
}
