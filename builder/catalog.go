// SPDX-License-Identifier: MIT
// Package: builder
//
// catalog.go — the demonstration spaces with their known invariants.
//
// Each entry pairs a facet list with the Euler characteristic, f-vector and
// real Betti numbers of its closure. Over the reals torsion is invisible, so
// the projective plane reads [1, 0, 0] and the Klein bottle [1, 1, 0].
//
// Catalog returns deep copies; callers may mutate them freely.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
)

// Named is one catalog entry.
type Named struct {
	Name    string
	Facets  [][]int
	FVector []int
	Euler   int
	Betti   []int
}

// Build closes the entry's facets into a complex named after the entry.
func (n Named) Build(opts ...BuilderOption) (*core.Complex, error) {
	return BuildComplex(n.Name, opts, Facets(n.Facets))
}

var catalog = []Named{
	{
		Name:    "point",
		Facets:  [][]int{{0}},
		FVector: []int{1}, Euler: 1, Betti: []int{1},
	},
	{
		Name:    "two-points",
		Facets:  [][]int{{0}, {1}},
		FVector: []int{2}, Euler: 2, Betti: []int{2},
	},
	{
		Name:    "segment",
		Facets:  [][]int{{0, 1}},
		FVector: []int{2, 1}, Euler: 1, Betti: []int{1, 0},
	},
	{
		Name:    "circle",
		Facets:  [][]int{{0, 1}, {0, 2}, {1, 2}},
		FVector: []int{3, 3}, Euler: 0, Betti: []int{1, 1},
	},
	{
		Name:    "circle-and-segment",
		Facets:  [][]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}},
		FVector: []int{5, 4}, Euler: 1, Betti: []int{2, 1},
	},
	{
		Name:    "disk",
		Facets:  [][]int{{0, 1, 2}},
		FVector: []int{3, 3, 1}, Euler: 1, Betti: []int{1, 0, 0},
	},
	{
		// Hollow tetrahedron with an extra vertex 4 joined to 0 and 2.
		Name:    "tetrahedron-with-handle",
		Facets:  [][]int{{0, 4}, {2, 4}, {0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
		FVector: []int{5, 8, 4}, Euler: 1, Betti: []int{1, 1, 1},
	},
	{
		Name:    "tetrahedron",
		Facets:  [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
		FVector: []int{4, 6, 4}, Euler: 2, Betti: []int{1, 0, 1},
	},
	{
		Name: "octahedron",
		Facets: [][]int{
			{0, 1, 2}, {0, 1, 4}, {0, 2, 3}, {0, 3, 4},
			{1, 2, 5}, {1, 4, 5}, {2, 3, 5}, {3, 4, 5},
		},
		FVector: []int{6, 12, 8}, Euler: 2, Betti: []int{1, 0, 1},
	},
	{
		// 3×3 grid with opposite sides identified.
		Name: "torus",
		Facets: [][]int{
			{0, 1, 5}, {0, 1, 8}, {0, 2, 6}, {0, 2, 7}, {0, 3, 5}, {0, 3, 6},
			{0, 4, 7}, {0, 4, 8}, {1, 2, 6}, {1, 2, 8}, {1, 5, 6}, {2, 7, 8},
			{3, 4, 6}, {3, 4, 8}, {3, 5, 8}, {4, 6, 7}, {5, 6, 7}, {5, 7, 8},
		},
		FVector: []int{9, 27, 18}, Euler: 0, Betti: []int{1, 2, 1},
	},
	{
		// Six-vertex minimal triangulation.
		Name: "projective-plane",
		Facets: [][]int{
			{0, 1, 4}, {0, 1, 5}, {0, 2, 3}, {0, 2, 5}, {0, 3, 4},
			{1, 2, 3}, {1, 2, 4}, {1, 3, 5}, {2, 4, 5}, {3, 4, 5},
		},
		FVector: []int{6, 15, 10}, Euler: 1, Betti: []int{1, 0, 0},
	},
	{
		Name:    "mobius-band",
		Facets:  [][]int{{0, 1, 3}, {0, 2, 4}, {1, 2, 3}, {2, 3, 4}},
		FVector: []int{5, 9, 4}, Euler: 0, Betti: []int{1, 1, 0},
	},
	{
		// The torus grid with one pair of sides glued reversed.
		Name: "klein-bottle",
		Facets: [][]int{
			{0, 1, 5}, {0, 1, 7}, {0, 2, 6}, {0, 2, 8}, {0, 3, 5}, {0, 3, 6},
			{0, 4, 7}, {0, 4, 8}, {1, 2, 6}, {1, 2, 8}, {1, 5, 6}, {1, 7, 8},
			{3, 4, 6}, {3, 4, 8}, {3, 5, 8}, {4, 6, 7}, {5, 6, 7}, {5, 7, 8},
		},
		FVector: []int{9, 27, 18}, Euler: 0, Betti: []int{1, 1, 0},
	},
	{
		Name: "cylinder",
		Facets: [][]int{
			{0, 1, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5}, {1, 2, 5}, {1, 4, 5},
		},
		FVector: []int{6, 12, 6}, Euler: 0, Betti: []int{1, 1, 0},
	},
}

// Catalog returns every demonstration space, in a fixed order.
// Complexity: O(total facet size) for the deep copy.
func Catalog() []Named {
	out := make([]Named, len(catalog))
	for i, n := range catalog {
		out[i] = n.clone()
	}

	return out
}

// Names returns the catalog names in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, n := range catalog {
		out[i] = n.Name
	}

	return out
}

// Lookup returns a copy of the catalog entry called name.
//
// Errors:
//   - ErrUnknownComplex when no entry matches.
func Lookup(name string) (Named, error) {
	for _, n := range catalog {
		if n.Name == name {
			return n.clone(), nil
		}
	}

	return Named{}, fmt.Errorf("%s: %q: %w", MethodLookup, name, ErrUnknownComplex)
}

func (n Named) clone() Named {
	facets := make([][]int, len(n.Facets))
	for i, f := range n.Facets {
		facets[i] = append([]int(nil), f...)
	}

	return Named{
		Name:    n.Name,
		Facets:  facets,
		FVector: append([]int(nil), n.FVector...),
		Euler:   n.Euler,
		Betti:   append([]int(nil), n.Betti...),
	}
}
