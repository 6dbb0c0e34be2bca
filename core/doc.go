// SPDX-License-Identifier: MIT

// Package core provides the immutable Simplex and Complex types that the
// homology engine consumes, together with the validation that guarantees the
// complex axioms once, at construction.
//
// A Complex K is a finite, non-empty collection of simplices such that:
//
//   - every simplex is a non-empty, strictly increasing list of vertex
//     labels ≥ 0;
//   - every proper non-empty face of a simplex is itself in K (downward
//     closure);
//   - no simplex appears twice.
//
// Insertion order is preserved: NSimplices(n) returns the n-simplices in the
// order they were supplied, and that order fixes the rows and columns of
// every boundary matrix built from K.
//
// Construction:
//
//	New(name, simplices)      // validate an explicit, closed list
//	FromFacets(name, facets)  // sort facets, close downward, then New
//
// Queries (all O(1) or O(|K|), never mutate, safe for concurrent readers):
//
//	Name() string             Dim() int            Len() int
//	Simplices() []Simplex     NSimplices(n) []Simplex
//	Count(n) int              FVector() []int
//	Index(s) (int, bool)      Contains(s) bool
//
// Simplex helpers:
//
//	Dim() Key() Equal(o) Face(k) Clone() String()
//	Faces(s)                  // all proper non-empty faces (bitmask power set)
//
// Errors:
//
//	ErrEmptyName        – complex name is the empty string
//	ErrEmptyComplex     – no simplices at all
//	ErrEmptySimplex     – a simplex with no vertices
//	ErrNegativeVertex   – a vertex label < 0
//	ErrNotIncreasing    – labels not strictly increasing
//	ErrRepeatedVertex   – a facet lists one vertex twice
//	ErrDuplicateSimplex – the same simplex given twice
//	ErrMissingFace      – downward closure violated
//	ErrFacetTooLarge    – facet too wide to close by power-set enumeration
//
// All errors are wrapped with the offending simplex; match with errors.Is.
package core
