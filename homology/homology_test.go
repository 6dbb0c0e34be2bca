package homology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/builder"
	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/homology"
)

// mustBuild is a test helper around builder.BuildComplex.
func mustBuild(t *testing.T, name string, cons ...builder.Constructor) *core.Complex {
	t.Helper()
	c, err := builder.BuildComplex(name, nil, cons...)
	require.NoError(t, err)

	return c
}

// TestHomology_Scenarios covers small spaces with hand-checked answers.
func TestHomology_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cons  []builder.Constructor
		euler int
		betti []int
	}{
		{"point", []builder.Constructor{builder.Point()}, 1, []int{1}},
		{"two points", []builder.Constructor{builder.Points(2)}, 2, []int{2}},
		{"five points", []builder.Constructor{builder.Points(5)}, 5, []int{5}},
		{"path", []builder.Constructor{builder.Path(6)}, 1, []int{1, 0}},
		{"circle", []builder.Constructor{builder.Cycle(7)}, 0, []int{1, 1}},
		{"two circles", []builder.Constructor{
			builder.Cycle(3), builder.Shifted(3, builder.Cycle(5)),
		}, 0, []int{2, 2}},
		{"filled triangle", []builder.Constructor{builder.Simplex(2)}, 1, []int{1, 0, 0}},
		{"solid 4-simplex", []builder.Constructor{builder.Simplex(4)}, 1, []int{1, 0, 0, 0, 0}},
		{"hollow tetrahedron", []builder.Constructor{builder.Sphere(2)}, 2, []int{1, 0, 1}},
		{"S^0", []builder.Constructor{builder.Sphere(0)}, 2, []int{2}},
		{"S^3", []builder.Constructor{builder.Sphere(3)}, 0, []int{1, 0, 0, 1}},
		{"S^4", []builder.Constructor{builder.Sphere(4)}, 2, []int{1, 0, 0, 0, 1}},
		{"cube surface", []builder.Constructor{builder.PlatonicSurface(builder.Cube)}, 2, []int{1, 0, 1}},
		{"dodecahedron surface", []builder.Constructor{builder.PlatonicSurface(builder.Dodecahedron)}, 2, []int{1, 0, 1}},
		{"icosahedron surface", []builder.Constructor{builder.PlatonicSurface(builder.Icosahedron)}, 2, []int{1, 0, 1}},
		{"sphere wedge circle", []builder.Constructor{
			builder.Sphere(2), builder.Facets([][]int{{3, 4}, {4, 5}, {3, 5}}),
		}, 1, []int{1, 1, 1}},
		{"complete graph K5", []builder.Constructor{builder.RandomTwoComplex(5, 0)}, -5, []int{1, 6}},
		{"2-skeleton of 4-simplex", []builder.Constructor{builder.RandomTwoComplex(5, 1)}, 5, []int{1, 0, 4}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := mustBuild(t, tc.name, tc.cons...)
			assert.Equal(t, tc.euler, homology.EulerCharacteristic(c))

			betti, err := homology.Homology(c)
			require.NoError(t, err)
			assert.Equal(t, tc.betti, betti)

			exact, err := homology.Homology(c, homology.WithExactArithmetic())
			require.NoError(t, err)
			assert.Equal(t, tc.betti, exact)
		})
	}
}

// TestHomology_RandomFloatMatchesExact compares both backends on seeded
// random 2-complexes, where elimination produces non-unit multipliers.
func TestHomology_RandomFloatMatchesExact(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		c, err := builder.BuildComplex("random", []builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomTwoComplex(9, 0.3))
		require.NoError(t, err)

		float, err := homology.Summarize(c, homology.WithWorkers(2))
		require.NoError(t, err)
		exact, err := homology.Summarize(c, homology.WithExactArithmetic())
		require.NoError(t, err)
		assert.Equalf(t, exact.Betti, float.Betti, "seed %d", seed)
		assert.Equal(t, 1, float.Betti[0])
		require.NoError(t, homology.CheckBoundarySquare(c))
	}
}

// TestBettiNumber_Errors covers argument validation.
func TestBettiNumber_Errors(t *testing.T) {
	c := mustBuild(t, "circle", builder.Cycle(3))

	_, err := homology.BettiNumber(nil, 0)
	require.ErrorIs(t, err, homology.ErrNilComplex)

	_, err = homology.BettiNumber(c, -1)
	require.ErrorIs(t, err, homology.ErrDimensionOutOfRange)

	_, err = homology.BettiNumber(c, 2)
	require.ErrorIs(t, err, homology.ErrDimensionOutOfRange)

	_, err = homology.Homology(nil)
	require.ErrorIs(t, err, homology.ErrNilComplex)

	_, err = homology.Summarize(nil)
	require.ErrorIs(t, err, homology.ErrNilComplex)

	require.ErrorIs(t, homology.CheckBoundarySquare(nil), homology.ErrNilComplex)
}

// TestHomology_NonNegative checks every Betti number is ≥ 0 and β_0 ≥ 1.
func TestHomology_NonNegative(t *testing.T) {
	for _, n := range builder.Catalog() {
		c, err := n.Build()
		require.NoError(t, err)
		betti, err := homology.Homology(c)
		require.NoError(t, err)
		require.Len(t, betti, c.Dim()+1)
		assert.GreaterOrEqual(t, betti[0], 1, n.Name)
		for _, b := range betti {
			assert.GreaterOrEqual(t, b, 0, n.Name)
		}
	}
}

// TestOptions covers worker resolution and nil options.
func TestOptions(t *testing.T) {
	assert.GreaterOrEqual(t, homology.AutoWorkers(), 1)

	c := mustBuild(t, "S^3", builder.Sphere(3))
	betti, err := homology.Homology(c, nil, homology.WithWorkers(0), homology.WithWorkers(-3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 1}, betti)
}
