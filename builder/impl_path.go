// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — isolated vertices and the path constructor.
//
// Contract:
//   • Points(n): n ≥ 1 isolated vertices 0..n-1, one 0-facet each.
//   • Path(n):   n ≥ 2 vertices, edges {i, i+1} for i = 0..n-2.
//   • Labels pass through cfg.label (WithOffset / Shifted).
//
// Homology:
//   • Points(n): β = [n].
//   • Path(n):   β = [1, 0] (contractible).

package builder

// Point is Points(1).
func Point() Constructor { return Points(1) }

// Points returns a Constructor emitting n isolated vertices.
// Complexity: O(n).
func Points(n int) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		if err := validateMin(MethodPoints, n, MinPoints); err != nil {
			return nil, err
		}
		facets := make([][]int, n)
		for i := 0; i < n; i++ {
			facets[i] = []int{cfg.label(i)}
		}

		return facets, nil
	}
}

// Path returns a Constructor emitting the n-1 edges of a simple path.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return nil, err
		}
		facets := make([][]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			facets = append(facets, []int{cfg.label(i), cfg.label(i + 1)})
		}

		return facets, nil
	}
}
