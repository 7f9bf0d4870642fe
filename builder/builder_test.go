// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphprops/builder"
	"github.com/katalvlaran/graphprops/core"
)

func degreeOf(t *testing.T, g *core.Graph, id string) int {
	t.Helper()
	d, err := g.Degree(id)
	require.NoError(t, err)

	return d
}

func TestFamilies_Shape(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"K1", builder.Complete(1), 1, 0},
		{"K5", builder.Complete(5), 5, 10},
		{"C6", builder.Cycle(6), 6, 6},
		{"P4", builder.Path(4), 4, 3},
		{"S5", builder.Star(5), 5, 4},
		{"W6", builder.Wheel(6), 6, 10},
		{"K23", builder.CompleteBipartite(2, 3), 5, 6},
		{"G(n,1)", builder.RandomSparse(4, 1), 4, 6},
		{"G(n,0)", builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.NumEdges())
			assert.False(t, g.Weighted())
		})
	}
}

func TestFamilies_TooSmall(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"Complete":          builder.Complete(0),
		"Cycle":             builder.Cycle(2),
		"Path":              builder.Path(1),
		"Star":              builder.Star(1),
		"Wheel":             builder.Wheel(3),
		"CompleteBipartite": builder.CompleteBipartite(0, 2),
		"RandomSparse":      builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, cons)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestOptions(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithWeight(2.5), builder.WithHubID("hub")},
		builder.Wheel(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "hub"}, g.Vertices())
	assert.True(t, g.Weighted())
	assert.Equal(t, 4, degreeOf(t, g, "hub"))
	assert.Equal(t, 3, degreeOf(t, g, "A"))
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	b, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("x", "y")},
		builder.CompleteBipartite(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"x0", "x1", "y0", "y1"}, b.Vertices())

	s, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"Center", "v0", "v1"}, s.Vertices())

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformIntWeightFn(1, 9))}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformIntWeightFn(1, 9))}
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same graph")
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// Two cycles over the same IDs produce parallel edges.
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 6, g.NumEdges())
	assert.Equal(t, 3, g.Stats().ParallelEdges)

	h := core.NewGraph()
	require.NoError(t, builder.Apply(h, nil, builder.Path(3)))
	assert.Equal(t, 2, h.NumEdges())
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
}

func TestPredefined(t *testing.T) {
	assert.Equal(t,
		[]string{"k4", "tree5", "cycle5", "dijkstra-demo", "spring-demo"},
		builder.PredefinedNames())

	k4, err := builder.Predefined(builder.PredefinedK4)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, k4.Vertices())
	assert.Equal(t, 6, k4.NumEdges())
	assert.False(t, k4.Weighted())

	tree, err := builder.Predefined(builder.PredefinedTree5)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.NumEdges())
	assert.Equal(t, 3, degreeOf(t, tree, "3"))

	demo, err := builder.Predefined(builder.PredefinedDijkstraDemo)
	require.NoError(t, err)
	assert.True(t, demo.Weighted())
	assert.Equal(t, 9, demo.NumEdges())

	// Fresh copies: mutating one does not affect the next.
	require.NoError(t, demo.AddVertex("extra"))
	again, err := builder.Predefined(builder.PredefinedDijkstraDemo)
	require.NoError(t, err)
	assert.False(t, again.HasVertex("extra"))

	desc, ok := builder.Describe(builder.PredefinedCycle5)
	assert.True(t, ok)
	assert.Equal(t, "cycle with 5 vertices", desc)

	_, err = builder.Predefined("petersen")
	assert.ErrorIs(t, err, builder.ErrUnknownPredefined)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "c", builder.LowerSymbolIDFn(2))
	assert.Equal(t, "1", builder.OneBasedIDFn(0))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.LowerSymbolIDFn(-1) })
}
