package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/builder"
	"github.com/katalvlaran/simplicial/homology"
	"github.com/katalvlaran/simplicial/report"
)

var circle = homology.Summary{
	Name:    "circle",
	Dim:     1,
	FVector: []int{3, 3},
	Euler:   0,
	Betti:   []int{1, 1},
}

const circleBlock = "Space: circle\n" +
	"Dimension: 1\n" +
	"F-vector: [3 3]\n" +
	"Euler characteristic: 0\n" +
	"Betti numbers: [1 1]\n"

// TestString checks the exact block layout.
func TestString(t *testing.T) {
	assert.Equal(t, circleBlock, report.String(circle))
}

// TestString_EmptySlices renders missing vectors as [].
func TestString_EmptySlices(t *testing.T) {
	got := report.String(homology.Summary{Name: "x", Euler: -3})
	assert.Contains(t, got, "F-vector: []\n")
	assert.Contains(t, got, "Betti numbers: []\n")
	assert.Contains(t, got, "Euler characteristic: -3\n")
}

// TestRenderAll separates blocks with one blank line.
func TestRenderAll(t *testing.T) {
	point := homology.Summary{Name: "point", FVector: []int{1}, Euler: 1, Betti: []int{1}}

	var buf bytes.Buffer
	require.NoError(t, report.RenderAll(&buf, []homology.Summary{circle, point}))
	assert.Equal(t, circleBlock+"\n"+report.String(point), buf.String())

	buf.Reset()
	require.NoError(t, report.RenderAll(&buf, nil))
	assert.Empty(t, buf.String())
}

// TestRender_FromSummarize renders a real computation.
func TestRender_FromSummarize(t *testing.T) {
	n, err := builder.Lookup("klein-bottle")
	require.NoError(t, err)
	c, err := n.Build()
	require.NoError(t, err)
	s, err := homology.Summarize(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, s))
	assert.Equal(t, "Space: klein-bottle\n"+
		"Dimension: 2\n"+
		"F-vector: [9 27 18]\n"+
		"Euler characteristic: 0\n"+
		"Betti numbers: [1 1 0]\n", buf.String())
}

var errBroken = errors.New("broken pipe")

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errBroken
	}
	w.after--

	return len(p), nil
}

// TestRender_WriteErrors surfaces writer failures.
func TestRender_WriteErrors(t *testing.T) {
	require.ErrorIs(t, report.Render(&failWriter{}, circle), errBroken)
	// First block succeeds, the separator fails.
	require.ErrorIs(t, report.RenderAll(&failWriter{after: 1}, []homology.Summary{circle, circle}), errBroken)
}
