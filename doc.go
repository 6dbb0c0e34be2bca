// Package simplicial computes the Euler characteristic and the Betti numbers
// of finite simplicial complexes.
//
// 🚀 What is simplicial?
//
//	A small, deterministic toolkit for computational topology:
//		• Complexes: validated, downward-closed simplex lists (core)
//		• Boundary operators and integer-valued matrices (matrix)
//		• Betti numbers via rank–nullity, float or exact arithmetic (homology)
//		• Standard spaces: spheres, balls, Platonic surfaces, torus,
//		  projective plane, Klein bottle, random 2-complexes (builder)
//		• Plain-text reports and a CLI (report, cmd/simplicial)
//
// Everything is organized under these subpackages:
//
//	core/           — Simplex, Complex, FromFacets (closure and validation)
//	matrix/         — Dense, row operations, Gaussian elimination, ExactRank
//	homology/       — BoundaryMatrix, BettiNumber, Homology, Summarize
//	builder/        — composable constructors and the demonstration catalog
//	report/         — text rendering of homology.Summary
//	cmd/simplicial/ — command-line front end (YAML/JSON input, catalog)
//
// Quick example:
//
//	    0
//	   / \
//	  1───2
//
// is the hollow triangle {0,1,2,01,02,12}: one component and one loop, so
// β = [1 1] and χ = 3 − 3 = 0.
//
//	c, _ := core.FromFacets("circle", [][]int{{0, 1}, {1, 2}, {0, 2}})
//	betti, _ := homology.Homology(c) // [1 1]
//
// All homology is taken over the reals: torsion is invisible, so the
// projective plane reads [1 0 0].
package simplicial
