// SPDX-License-Identifier: MIT

package props_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/props"
)

func cycle(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithAutoVertices())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddUnitEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n)))
	}

	return g
}

func path(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithAutoVertices())
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddUnitEdge(strconv.Itoa(i), strconv.Itoa(i+1)))
	}

	return g
}

func complete(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithAutoVertices())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddUnitEdge(strconv.Itoa(i), strconv.Itoa(j)))
		}
	}

	return g
}

func TestDegrees(t *testing.T) {
	g := path(t, 4)
	require.NoError(t, g.AddVertex("iso"))
	st, err := props.Degrees(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 1, "1": 2, "2": 2, "3": 1, "iso": 0}, st.PerVertex)
	assert.Equal(t, 2, st.Max)
	assert.Equal(t, 0, st.Min)

	_, err = props.Degrees(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestDegrees_ParallelInflation(t *testing.T) {
	g := core.NewGraph(core.WithAutoVertices())
	require.NoError(t, g.AddUnitEdge("A", "B"))
	require.NoError(t, g.AddUnitEdge("A", "B"))
	st, err := props.Degrees(g)
	require.NoError(t, err)
	assert.Equal(t, 2, st.PerVertex["A"])
	assert.False(t, props.IsComplete(g))
}

func TestRadiusDiameter(t *testing.T) {
	r, d, err := props.RadiusDiameter(path(t, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, d)

	r, d, err = props.RadiusDiameter(cycle(t, 6))
	require.NoError(t, err)
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, d)

	// Weights are ignored: hop counts only.
	w := core.NewGraph(core.WithAutoVertices())
	require.NoError(t, w.AddEdge("A", "B", 100))
	r, d, err = props.RadiusDiameter(w)
	require.NoError(t, err)
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, d)

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("x"))
	r, d, err = props.RadiusDiameter(single)
	require.NoError(t, err)
	assert.Zero(t, r)
	assert.Zero(t, d)
}

func TestRadiusDiameter_Errors(t *testing.T) {
	_, _, err := props.RadiusDiameter(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	g := path(t, 3)
	require.NoError(t, g.AddVertex("iso"))
	_, _, err = props.RadiusDiameter(g)
	assert.ErrorIs(t, err, core.ErrDisconnected)
}

func TestIsComplete(t *testing.T) {
	assert.True(t, props.IsComplete(core.NewGraph()))
	assert.True(t, props.IsComplete(complete(t, 4)))
	assert.True(t, props.IsComplete(complete(t, 1)))
	assert.False(t, props.IsComplete(cycle(t, 4)))
	assert.True(t, props.IsComplete(cycle(t, 3)))
}

func TestIsEulerian(t *testing.T) {
	ok, err := props.IsEulerian(cycle(t, 5))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = props.IsEulerian(path(t, 4))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"0", "3"}, props.OddVertices(path(t, 4)))

	ok, err = props.HasEulerianPath(path(t, 4))
	require.NoError(t, err)
	assert.True(t, ok)

	// Two disjoint cycles: every degree even but disconnected.
	g := cycle(t, 3)
	require.NoError(t, g.AddUnitEdge("x", "y"))
	require.NoError(t, g.AddUnitEdge("y", "z"))
	require.NoError(t, g.AddUnitEdge("z", "x"))
	ok, err = props.IsEulerian(g)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = props.HasEulerianPath(complete(t, 4))
	require.NoError(t, err)
	assert.False(t, ok, "K4 has four odd vertices")

	ok, err = props.IsEulerian(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok, "empty graph is connected with no odd vertex")
	ok, err = props.HasEulerianPath(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok)
}
