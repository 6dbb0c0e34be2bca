// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the constructors, ensuring
// consistent minimum sizes and error prefixes.
package builder

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodBuildComplex is the canonical name for BuildComplex.
	MethodBuildComplex = "BuildComplex"
	// MethodPoints is the canonical name for the Points constructor.
	MethodPoints = "Points"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodSimplex is the canonical name for the Simplex constructor.
	MethodSimplex = "Simplex"
	// MethodSphere is the canonical name for the Sphere constructor.
	MethodSphere = "Sphere"
	// MethodPlatonicSurface is the canonical name for the PlatonicSurface constructor.
	MethodPlatonicSurface = "PlatonicSurface"
	// MethodFacets is the canonical name for the Facets constructor.
	MethodFacets = "Facets"
	// MethodRandomTwoComplex is the canonical name for the RandomTwoComplex constructor.
	MethodRandomTwoComplex = "RandomTwoComplex"
	// MethodLookup is the canonical name for the catalog Lookup.
	MethodLookup = "Lookup"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinPoints is the smallest number of isolated vertices.
const MinPoints = 1

// MinPathNodes is the smallest meaningful size for a path: one edge.
const MinPathNodes = 2

// MinCycleNodes is the smallest cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinRandomVertices is the smallest vertex count with a candidate triangle.
const MinRandomVertices = 3

// MinProbability / MaxProbability bound Bernoulli parameters.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
