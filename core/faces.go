// SPDX-License-Identifier: MIT
// File: faces.go
// Role: face enumeration and downward closure of facet lists.
// Determinism:
//   - Faces and FromFacets emit simplices sorted by dimension, then
//     lexicographically, whatever order the input had.

package core

import (
	"fmt"
	"sort"
)

// MaxFacetVertices bounds the width of a facet accepted by FromFacets.
// A facet with v vertices has 2^v - 1 non-empty faces.
const MaxFacetVertices = 24

// Faces returns every proper non-empty face of s, ordered by dimension and
// then lexicographically. Each face is the subsequence selected by one
// bitmask in [1, 2^|s|-1). Callers must keep |s| ≤ MaxFacetVertices.
// Complexity: O(2^|s|·|s|).
func Faces(s Simplex) []Simplex {
	n := len(s)
	if n <= 1 {
		return []Simplex{}
	}
	full := uint32(1)<<uint(n) - 1
	out := make([]Simplex, 0, int(full)-1)
	var mask uint32
	var i int
	for mask = 1; mask < full; mask++ {
		f := make(Simplex, 0, n)
		for i = 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				f = append(f, s[i])
			}
		}
		out = append(out, f)
	}
	sort.Slice(out, func(a, b int) bool { return less(out[a], out[b]) })

	return out
}

// FromFacets closes a list of facets downward and validates the result.
//
// Implementation:
//   - Stage 1: copy and sort each facet; reject empty, negative, repeated or
//     oversized facets.
//   - Stage 2: collect each facet and all its faces, de-duplicated by key.
//   - Stage 3: order by dimension then lexicographically and hand the list
//     to New.
//
// Facets may overlap, nest or repeat; a facet that is a face of another is
// simply absorbed.
//
// Errors:
//   - ErrEmptyName, ErrEmptyComplex, ErrEmptySimplex, ErrNegativeVertex,
//     ErrRepeatedVertex, ErrFacetTooLarge.
//
// Complexity:
//   - Time O(Σ 2^|f|·|f|), Space the same.
func FromFacets(name string, facets [][]int) (*Complex, error) {
	if name == "" {
		return nil, coreErrorf(opFromFacets, ErrEmptyName)
	}
	if len(facets) == 0 {
		return nil, coreErrorf(opFromFacets, ErrEmptyComplex)
	}

	seen := make(map[string]struct{})
	all := make([]Simplex, 0, len(facets))
	add := func(s Simplex) {
		key := s.Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		all = append(all, s)
	}

	var i int
	for _, raw := range facets {
		if len(raw) == 0 {
			return nil, simplexErrorf(opFromFacets, raw, ErrEmptySimplex)
		}
		if len(raw) > MaxFacetVertices {
			return nil, fmt.Errorf("%s: facet with %d vertices (max %d): %w",
				opFromFacets, len(raw), MaxFacetVertices, ErrFacetTooLarge)
		}
		f := Simplex(raw).Clone()
		sort.Ints(f)
		if f[0] < 0 {
			return nil, simplexErrorf(opFromFacets, raw, ErrNegativeVertex)
		}
		for i = 1; i < len(f); i++ {
			if f[i] == f[i-1] {
				return nil, simplexErrorf(opFromFacets, raw, ErrRepeatedVertex)
			}
		}
		add(f)
		for _, face := range Faces(f) {
			add(face)
		}
	}
	sort.Slice(all, func(a, b int) bool { return less(all[a], all[b]) })

	lists := make([][]int, len(all))
	for i = range all {
		lists[i] = all[i]
	}

	return New(name, lists)
}
