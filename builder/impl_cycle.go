// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — the simple cycle C_n, a triangulated circle.
//
// Contract:
//   • n ≥ 3 (smaller values would need a loop or a double edge).
//   • Edges {i, (i+1) mod n} in ascending i, each emitted sorted.
//
// Homology: β = [1, 1], χ = 0 for every n.

package builder

// Cycle returns a Constructor emitting the n edges of a cycle.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return nil, err
		}
		facets := make([][]int, 0, n)
		for i := 0; i+1 < n; i++ {
			facets = append(facets, []int{cfg.label(i), cfg.label(i + 1)})
		}
		// Closing edge, smaller label first.
		facets = append(facets, []int{cfg.label(0), cfg.label(n - 1)})

		return facets, nil
	}
}
