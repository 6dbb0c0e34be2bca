// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_platonic.go — PlatonicSurface(name): the boundary of a Platonic solid
// as a triangulated 2-sphere.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrUnknownSolid.
//   • Faces are emitted in the order of variants_platonic.go; a k-gon
//     (a0, a1, …) becomes the fan (a0, a_i, a_{i+1}), i = 1..k-2.
//
// Complexity:
//   • O(F) for the selected solid (F ≤ 36 triangles).

package builder

import "fmt"

// PlatonicSurface returns a Constructor emitting the triangulated surface of
// the chosen solid.
func PlatonicSurface(name PlatonicName) Constructor {
	return func(cfg builderConfig) ([][]int, error) {
		faces, ok := platonicFaces[name]
		if !ok {
			return nil, fmt.Errorf("%s: solid %v: %w", MethodPlatonicSurface, name, ErrUnknownSolid)
		}
		n := platonicVertexCounts[name]

		facets := make([][]int, 0, 3*len(faces))
		var i int
		for _, face := range faces {
			for i = 1; i+1 < len(face); i++ {
				facets = append(facets, []int{
					cfg.label(face[0]), cfg.label(face[i]), cfg.label(face[i+1]),
				})
			}
		}
		log.Debugf("%s(%v): %d vertices, %d triangles", MethodPlatonicSurface, name, n, len(facets))

		return facets, nil
	}
}
