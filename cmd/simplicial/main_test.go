package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/builder"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(append([]string{"-log-level", "error"}, args...), &out, &errOut)

	return code, out.String(), errOut.String()
}

// TestRun_Name prints one catalog entry.
func TestRun_Name(t *testing.T) {
	code, out, _ := runCmd(t, "-name", "torus", "-check")
	require.Equal(t, 0, code)
	assert.Equal(t, "Space: torus\n"+
		"Dimension: 2\n"+
		"F-vector: [9 27 18]\n"+
		"Euler characteristic: 0\n"+
		"Betti numbers: [1 2 1]\n", out)
}

// TestRun_DefaultCatalog prints every entry, exact and parallel.
func TestRun_DefaultCatalog(t *testing.T) {
	code, out, _ := runCmd(t, "-exact", "-workers", "2")
	require.Equal(t, 0, code)
	assert.Equal(t, len(builder.Names()), strings.Count(out, "Space: "))
	assert.Contains(t, out, "Space: projective-plane\n")
}

// TestRun_File combines a file with a named entry.
func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	code, out, _ := runCmd(t, "-file", path, "-name", "point")
	require.Equal(t, 0, code)
	blocks := strings.Split(strings.TrimSpace(out), "\n\n")
	require.Len(t, blocks, 3)
	assert.True(t, strings.HasPrefix(blocks[0], "Space: Circle\n"))
	assert.True(t, strings.HasPrefix(blocks[1], "Space: Sphere\n"))
	assert.True(t, strings.HasPrefix(blocks[2], "Space: point\n"))
}

// TestRun_List prints the catalog names only.
func TestRun_List(t *testing.T) {
	code, out, _ := runCmd(t, "-list")
	require.Equal(t, 0, code)
	assert.Equal(t, strings.Join(builder.Names(), "\n")+"\n", out)
}

// TestRun_Failures returns a non-zero status with a message.
func TestRun_Failures(t *testing.T) {
	code, out, errOut := runCmd(t, "-name", "no-such-space")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown catalog complex")

	code, _, errOut = runCmd(t, "-file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed to read input file")

	code, _, _ = runCmd(t, "-no-such-flag")
	assert.Equal(t, 2, code)
}
