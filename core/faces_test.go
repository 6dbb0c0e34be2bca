// Package core_test verifies face enumeration and facet closure.
package core_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFaces_Triangle lists the six proper faces in canonical order.
func TestFaces_Triangle(t *testing.T) {
	got := core.Faces(core.Simplex{3, 5, 8})
	want := []core.Simplex{{3}, {5}, {8}, {3, 5}, {3, 8}, {5, 8}}
	assert.Equal(t, want, got)
}

// TestFaces_Counts checks 2^n - 2 proper faces for widths 1..8.
func TestFaces_Counts(t *testing.T) {
	assert.Empty(t, core.Faces(core.Simplex{4}))
	assert.Empty(t, core.Faces(nil))
	for n := 2; n <= 8; n++ {
		s := make(core.Simplex, n)
		for i := range s {
			s[i] = i
		}
		assert.Len(t, core.Faces(s), (1<<n)-2, "n=%d", n)
	}
}

// TestFromFacets_Tetrahedron closes the hollow tetrahedron from its four
// triangles supplied with unsorted vertices.
func TestFromFacets_Tetrahedron(t *testing.T) {
	c, err := core.FromFacets("Sphere", [][]int{{2, 1, 0}, {0, 1, 3}, {3, 2, 0}, {1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Dim())
	assert.Equal(t, []int{4, 6, 4}, c.FVector())
	assert.Equal(t, []core.Simplex{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, c.NSimplices(1))
	assert.Equal(t, core.Simplex{0, 1, 2}, c.NSimplices(2)[0])
}

// TestFromFacets_OverlapAndNesting absorbs nested and repeated facets.
func TestFromFacets_OverlapAndNesting(t *testing.T) {
	c, err := core.FromFacets("K", [][]int{{0, 1, 2}, {1, 2}, {0, 1, 2}, {5}})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 1}, c.FVector())
	assert.True(t, c.Contains(core.Simplex{5}))
}

// TestFromFacets_Errors covers each rejection.
func TestFromFacets_Errors(t *testing.T) {
	wide := make([]int, core.MaxFacetVertices+1)
	for i := range wide {
		wide[i] = i
	}

	tests := []struct {
		name   string
		cname  string
		facets [][]int
		want   error
	}{
		{"empty name", "", [][]int{{0}}, core.ErrEmptyName},
		{"no facets", "K", nil, core.ErrEmptyComplex},
		{"empty facet", "K", [][]int{{0, 1}, {}}, core.ErrEmptySimplex},
		{"negative", "K", [][]int{{2, -1}}, core.ErrNegativeVertex},
		{"repeated", "K", [][]int{{1, 2, 1}}, core.ErrRepeatedVertex},
		{"too wide", "K", [][]int{wide}, core.ErrFacetTooLarge},
	}
	for _, tc := range tests {
		c, err := core.FromFacets(tc.cname, tc.facets)
		require.Nil(t, c, tc.name)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestFromFacets_DoesNotMutateInput keeps the caller's facet order.
func TestFromFacets_DoesNotMutateInput(t *testing.T) {
	in := [][]int{{2, 0, 1}}
	_, err := core.FromFacets("K", in)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, in[0])
}
