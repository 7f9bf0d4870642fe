// SPDX-License-Identifier: MIT

package mst_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/dsu"
	"github.com/katalvlaran/graphprops/mst"
)

type wedge struct {
	u, v string
	w    float64
}

func build(t *testing.T, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithAutoVertices())
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

var demo = []wedge{
	{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5}, {"C", "D", 8},
	{"C", "E", 10}, {"D", "E", 2}, {"D", "Z", 6}, {"E", "Z", 3},
}

func TestKruskal_Demo(t *testing.T) {
	res, err := mst.Kruskal(build(t, demo))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "D", To: "E", Weight: 2},
		{From: "E", To: "Z", Weight: 3},
		{From: "B", To: "D", Weight: 5},
	}, res.Edges)
	assert.InDelta(t, 13.0, res.Weight, 1e-9)
	assert.Equal(t, 1, res.Components)
}

func TestKruskal_Forest(t *testing.T) {
	g := build(t, []wedge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}, {"X", "Y", 7}})
	require.NoError(t, g.AddVertex("lonely"))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 3)
	assert.InDelta(t, 10.0, res.Weight, 1e-9)
	assert.Equal(t, 3, res.Components)

	_, err = mst.SpanningTree(g)
	assert.ErrorIs(t, err, core.ErrDisconnected)
	_, err = mst.Prim(g, "A")
	assert.ErrorIs(t, err, core.ErrDisconnected)
}

func TestKruskal_EdgeCases(t *testing.T) {
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	res, err := mst.Kruskal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)
	assert.Zero(t, res.Components)

	res, err = mst.SpanningTree(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, res.Components)

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("solo"))
	res, err = mst.SpanningTree(single)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)
	assert.Equal(t, 1, res.Components)
}

func TestKruskal_ParallelAndNegative(t *testing.T) {
	g := build(t, []wedge{{"B", "A", 5}, {"A", "B", -1}, {"B", "C", 0}})
	res, err := mst.SpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: -1},
		{From: "B", To: "C", Weight: 0},
	}, res.Edges)
	assert.InDelta(t, -1.0, res.Weight, 1e-9)
}

func TestKruskal_StableTies(t *testing.T) {
	g := build(t, []wedge{{"A", "B", 1}, {"B", "C", 1}, {"A", "C", 1}})
	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	}, res.Edges)
}

func TestCompute(t *testing.T) {
	g := build(t, demo)

	k, err := mst.Compute(g)
	require.NoError(t, err)
	p, err := mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot("Z"))
	require.NoError(t, err)
	assert.InDelta(t, k.Weight, p.Weight, 1e-9)
	assert.Len(t, p.Edges, len(k.Edges))

	_, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)

	_, err = mst.Prim(g, "nope")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

// bruteForceForest enumerates every edge subset and returns the minimum
// weight among maximal acyclic ones (spanning forests).
func bruteForceForest(g *core.Graph, comps int) float64 {
	edges := g.Edges()
	want := g.VertexCount() - comps
	best := math.Inf(1)
	for mask := 0; mask < 1<<len(edges); mask++ {
		sets := dsu.New(g.Vertices()...)
		count, weight, ok := 0, 0.0, true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			if same, _ := sets.Same(e.From, e.To); same {
				ok = false
				break
			}
			_ = sets.Union(e.From, e.To)
			count++
			weight += e.Weight
		}
		if ok && count == want && weight < best {
			best = weight
		}
	}

	return best
}

// TestKruskal_Optimal checks Kruskal against exhaustive enumeration on random
// graphs with up to 6 vertices and 10 edges.
func TestKruskal_Optimal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("kruskal weight is minimal", prop.ForAll(
		func(triples []int) bool {
			g := core.NewGraph()
			for i := 0; i < 6; i++ {
				_ = g.AddVertex(strconv.Itoa(i))
			}
			added := 0
			for i := 0; i+2 < len(triples) && added < 10; i += 3 {
				u, v := triples[i]%6, triples[i+1]%6
				if u == v {
					continue
				}
				_ = g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), float64(triples[i+2]%7-2))
				added++
			}

			res, err := mst.Kruskal(g)
			if err != nil {
				return false
			}
			if len(res.Edges) != g.VertexCount()-res.Components {
				return false
			}

			return math.Abs(res.Weight-bruteForceForest(g, res.Components)) < 1e-9
		},
		gen.SliceOf(gen.IntRange(0, 41)),
	))

	properties.TestingRun(t)
}
