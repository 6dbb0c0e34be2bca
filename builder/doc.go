// SPDX-License-Identifier: MIT

// Package builder provides deterministic, composable constructors for
// standard simplicial complexes. It keeps fixtures and demonstration data out
// of the homology engine: tests, examples and the CLI all obtain their
// complexes here.
//
// Every Constructor emits a list of facets; BuildComplex concatenates the
// facets of all constructors in order and closes them downward through
// core.FromFacets, so a constructor never has to list lower faces itself.
//
// The package offers:
//
//   - Orchestration:
//     – BuildComplex(name, bopts, cons...): resolve options, run constructors,
//     close and validate.
//     – Shifted(k, con): relabel one constructor by +k (disjoint unions).
//   - Constructors:
//     – Point, Points(n)         – isolated vertices.
//     – Path(n), Cycle(n)        – a segment chain and a circle.
//     – Simplex(d), Sphere(d)    – the d-ball and the boundary of the
//     (d+1)-simplex.
//     – PlatonicSurface(solid)   – Tetrahedron, Octahedron, Icosahedron
//     triangulations of S².
//     – Facets(list)             – literal facets.
//     – RandomTwoComplex(n, p)   – complete graph plus random triangles.
//   - Options:
//     – WithOffset(k): shift every label by k.
//     – WithSeed(s) / WithRand(r): randomness for RandomTwoComplex.
//   - Catalog:
//     – Catalog(), Lookup(name): the demonstration spaces (point, circle,
//     torus, projective plane, Klein bottle, …) with their expected
//     Euler characteristic and Betti numbers over the reals.
//
// Guarantees:
//
//   - Determinism: equal inputs, options, seed and constructor order yield an
//     identical complex, simplex order included.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
package builder
