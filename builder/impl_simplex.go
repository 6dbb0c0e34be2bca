// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_simplex.go — full simplices, their boundaries and literal facets.
//
// Contract:
//   • Simplex(d): d ≥ 0, the single facet {0..d}; the closed d-ball.
//   • Sphere(d):  d ≥ 0, the d+2 codimension-1 faces of {0..d+1}; the d-sphere.
//   • Facets(list): the given facets relabelled by cfg.label, validated by core.
//
// Homology:
//   • Simplex(d): β = [1, 0, …, 0] (d+1 entries).
//   • Sphere(0):  β = [2]; Sphere(d), d ≥ 1: β_0 = β_d = 1, all others 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
)

// MaxSimplexDim bounds Simplex and Sphere so that every facet fits
// core.MaxFacetVertices. The closure of a d-simplex has 2^(d+1)-1 faces.
const MaxSimplexDim = core.MaxFacetVertices - 2

// Simplex returns a Constructor emitting the full d-simplex.
// Complexity: O(d) here; the closure costs O(2^d) in core.
func Simplex(d int) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		if err := validateDim(MethodSimplex, d); err != nil {
			return nil, err
		}
		facet := make([]int, d+1)
		for i := range facet {
			facet[i] = cfg.label(i)
		}

		return [][]int{facet}, nil
	}
}

// Sphere returns a Constructor emitting the boundary of the (d+1)-simplex.
// Facets are emitted by the index of the omitted vertex, descending, which
// yields them in lexicographic order.
// Complexity: O(d²).
func Sphere(d int) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		if err := validateDim(MethodSphere, d); err != nil {
			return nil, err
		}
		n := d + 2
		facets := make([][]int, 0, n)
		var skip, i int
		for skip = n - 1; skip >= 0; skip-- {
			facet := make([]int, 0, n-1)
			for i = 0; i < n; i++ {
				if i != skip {
					facet = append(facet, cfg.label(i))
				}
			}
			facets = append(facets, facet)
		}

		return facets, nil
	}
}

// Facets returns a Constructor emitting list, each label shifted by the
// configured offset. list is copied when Facets is called. Validation is
// left to core.
func Facets(list [][]int) Constructor {
	own := make([][]int, len(list))
	for i, f := range list {
		own[i] = append([]int(nil), f...)
	}

	return func(cfg builderConfig) ([][]int, error) {
		facets := make([][]int, len(own))
		for i, f := range own {
			out := make([]int, len(f))
			for k, v := range f {
				out[k] = cfg.label(v)
			}
			facets[i] = out
		}

		return facets, nil
	}
}

// validateDim enforces 0 ≤ d ≤ MaxSimplexDim.
func validateDim(method string, d int) error {
	if err := validateMin(method, d, 0); err != nil {
		return err
	}
	if d > MaxSimplexDim {
		return fmt.Errorf("%s: dimension %d exceeds %d: %w", method, d, MaxSimplexDim, ErrTooLarge)
	}

	return nil
}
