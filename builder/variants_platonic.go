// SPDX-License-Identifier: MIT
// Package: builder
//
// variants_platonic.go — canonical face data for the Platonic solids.
//
// Design:
//   • Single source of truth for the boundary surfaces of the five solids:
//     vertex counts and face cycles.
//   • Faces are stored as vertex cycles in boundary order. Triangular solids
//     are used as is; squares and pentagons are fanned from their first
//     vertex by impl_platonic.go, which adds one diagonal per extra side.
//
// Every surface here triangulates S²: χ = 2, β = [1, 0, 1].

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4 triangles
	Cube                             // V=8,  F=6 squares    → 12 triangles
	Octahedron                       // V=6,  F=8 triangles
	Dodecahedron                     // V=20, F=12 pentagons → 36 triangles
	Icosahedron                      // V=12, F=20 triangles
)

// platonicVertexCounts maps each PlatonicName to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicFaces maps each PlatonicName to its face cycles.
var platonicFaces = map[PlatonicName][][]int{
	// -------------------------------------------------------------------------
	// Tetrahedron: every 3-subset of 0..3.
	// -------------------------------------------------------------------------
	Tetrahedron: {
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	},

	// -------------------------------------------------------------------------
	// Cube: vertex 4x+2y+z sits at corner (x,y,z); one square per fixed axis.
	// -------------------------------------------------------------------------
	Cube: {
		{0, 1, 3, 2}, {4, 5, 7, 6}, // x = 0, x = 1
		{0, 1, 5, 4}, {2, 3, 7, 6}, // y = 0, y = 1
		{0, 2, 6, 4}, {1, 3, 7, 5}, // z = 0, z = 1
	},

	// -------------------------------------------------------------------------
	// Octahedron: poles {0,1}, equator cycle 2-4-3-5-2.
	// -------------------------------------------------------------------------
	Octahedron: {
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 4}, {1, 4, 3}, {1, 3, 5}, {1, 5, 2},
	},

	// -------------------------------------------------------------------------
	// Dodecahedron:
	//   • Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
	//   • Spokes: top i → 10+2i, bottom 5+i → 11+2i.
	//   • Each side face joins one pentagon edge to three ring vertices.
	// -------------------------------------------------------------------------
	Dodecahedron: {
		{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9},
		{0, 1, 12, 11, 10}, {1, 2, 14, 13, 12}, {2, 3, 16, 15, 14},
		{3, 4, 18, 17, 16}, {4, 0, 10, 19, 18},
		{5, 6, 13, 12, 11}, {6, 7, 15, 14, 13}, {7, 8, 17, 16, 15},
		{8, 9, 19, 18, 17}, {9, 5, 11, 10, 19},
	},

	// -------------------------------------------------------------------------
	// Icosahedron:
	//   • Poles 0 (top) and 11 (bottom); top ring 1..5, bottom ring 6..10.
	//   • Top i touches bottom i+5 and i+6 (5 wraps to 10 and 6).
	// -------------------------------------------------------------------------
	Icosahedron: {
		// top cap
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 1, 5},
		// band, downward triangles
		{1, 6, 7}, {2, 7, 8}, {3, 8, 9}, {4, 9, 10}, {5, 6, 10},
		// band, upward triangles
		{1, 2, 7}, {2, 3, 8}, {3, 4, 9}, {4, 5, 10}, {1, 5, 6},
		// bottom cap
		{11, 6, 7}, {11, 7, 8}, {11, 8, 9}, {11, 9, 10}, {11, 6, 10},
	},
}
