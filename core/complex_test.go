// Package core_test verifies complex validation and the read-only accessors.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/simplicial/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filledTriangle lists a closed disk in a deliberately mixed order.
var filledTriangle = [][]int{{0}, {1}, {0, 1}, {2}, {1, 2}, {0, 2}, {0, 1, 2}}

// TestNew_Valid checks accessor results on a valid, unordered input.
func TestNew_Valid(t *testing.T) {
	c, err := core.New("Disk", filledTriangle)
	require.NoError(t, err)

	assert.Equal(t, "Disk", c.Name())
	assert.Equal(t, 2, c.Dim())
	assert.Equal(t, 7, c.Len())
	assert.Equal(t, []int{3, 3, 1}, c.FVector())
	assert.Equal(t, 3, c.Count(1))
	assert.Equal(t, 0, c.Count(3))
	assert.Equal(t, 0, c.Count(-1))

	// Insertion order survives per dimension.
	assert.Equal(t, []core.Simplex{{0, 1}, {1, 2}, {0, 2}}, c.NSimplices(1))
	assert.Equal(t, []core.Simplex{{0}, {1}, {2}}, c.NSimplices(0))
	assert.Empty(t, c.NSimplices(5))
	assert.NotNil(t, c.NSimplices(-1))

	i, ok := c.Index(core.Simplex{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 4, i)
	assert.True(t, c.Contains(core.Simplex{0, 1, 2}))
	assert.False(t, c.Contains(core.Simplex{0, 3}))
}

// TestNew_Errors checks every validation failure.
func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cname     string
		simplices [][]int
		want      error
	}{
		{"empty name", "", [][]int{{0}}, core.ErrEmptyName},
		{"no simplices", "K", nil, core.ErrEmptyComplex},
		{"empty simplex", "K", [][]int{{0}, {}}, core.ErrEmptySimplex},
		{"negative label", "K", [][]int{{-1}}, core.ErrNegativeVertex},
		{"negative later label", "K", [][]int{{0}, {0, -2}}, core.ErrNegativeVertex},
		{"unsorted", "K", [][]int{{0}, {1}, {1, 0}}, core.ErrNotIncreasing},
		{"repeated label", "K", [][]int{{0}, {0, 0}}, core.ErrNotIncreasing},
		{"duplicate", "K", [][]int{{0}, {1}, {0}}, core.ErrDuplicateSimplex},
		{"missing vertex", "K", [][]int{{0}, {0, 1}}, core.ErrMissingFace},
		{"missing edge", "K", [][]int{{0}, {1}, {2}, {0, 1}, {1, 2}, {0, 1, 2}}, core.ErrMissingFace},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, err := core.New(tc.cname, tc.simplices)
			require.Nil(t, c)
			require.Truef(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the caller's slices does not
// leak into the complex, and accessors do not expose internals.
func TestNew_CopiesInput(t *testing.T) {
	in := [][]int{{0}, {1}, {0, 1}}
	c, err := core.New("Segment", in)
	require.NoError(t, err)

	in[2][1] = 7
	assert.True(t, c.Contains(core.Simplex{0, 1}))

	got := c.Simplices()
	got[0][0] = 42
	assert.Equal(t, core.Simplex{0}, c.Simplices()[0])

	edges := c.NSimplices(1)
	edges[0][0] = 42
	assert.Equal(t, core.Simplex{0, 1}, c.NSimplices(1)[0])
}

// TestNew_ErrorMentionsSimplex keeps the offending simplex in the message.
func TestNew_ErrorMentionsSimplex(t *testing.T) {
	_, err := core.New("K", [][]int{{0}, {0, 3}})
	require.ErrorIs(t, err, core.ErrMissingFace)
	assert.Contains(t, err.Error(), "[0 3]")
}
