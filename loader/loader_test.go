// SPDX-License-Identifier: MIT

package loader_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/loader"
)

func TestParseYAML(t *testing.T) {
	src := `
vertices: [A, B, C]
edges:
  - {from: A, to: B, weight: 4}
  - {from: B, to: C}
  - from: C
    to: A
    weight: heavy
`
	g, subs, err := loader.ParseYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "A", Weight: 1},
	}, g.Edges())

	require.Len(t, subs, 1)
	assert.Equal(t, loader.Substitution{Line: 8, From: "C", To: "A", Raw: "heavy"}, subs[0])
	assert.Contains(t, subs[0].String(), `invalid weight "heavy"`)
}

func TestParseYAML_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"undeclared endpoint": {"vertices: [A]\nedges: [{from: A, to: B}]\n", core.ErrMissingVertex},
		"missing to":          {"vertices: [A]\nedges: [{from: A}]\n", loader.ErrInvalidDocument},
		"empty vertex":        {"vertices: [A, \"\"]\n", loader.ErrInvalidDocument},
		"unknown key":         {"vertices: [A]\nnodes: [B]\n", loader.ErrInvalidDocument},
		"not yaml":            {"vertices: [A\n", loader.ErrInvalidDocument},
		"self loop":           {"vertices: [A]\nedges: [{from: A, to: A}]\n", core.ErrLoopNotAllowed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := loader.ParseYAML(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	g, subs, err := loader.ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Empty(t, subs)
}

func TestParseEdgeList(t *testing.T) {
	src := `
A B C D

A B 4
B C x7
C D -2
D A nan
END
A C 1
`
	g, subs, err := loader.ParseEdgeList(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: -2},
		{From: "D", To: "A", Weight: 1},
	}, g.Edges())
	assert.Equal(t, []loader.Substitution{
		{Line: 5, From: "B", To: "C", Raw: "x7"},
		{Line: 7, From: "D", To: "A", Raw: "nan"},
	}, subs)
}

func TestParseEdgeList_Errors(t *testing.T) {
	_, _, err := loader.ParseEdgeList(strings.NewReader("A B\nA\n"))
	assert.ErrorIs(t, err, loader.ErrInvalidLine)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = loader.ParseEdgeList(strings.NewReader("A B\nA Z 3\n"))
	assert.ErrorIs(t, err, core.ErrMissingVertex)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = loader.ParseEdgeList(strings.NewReader("A B\nA B 1\nA A 2\n"))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Contains(t, err.Error(), "line 3")

	g, _, err := loader.ParseEdgeList(strings.NewReader("fim\n"))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestLoad(t *testing.T) {
	g, subs, err := loader.Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	assert.Empty(t, subs)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 9, g.NumEdges())
	assert.True(t, g.Weighted())

	k4, _, err := loader.Load(filepath.Join("testdata", "k4.txt"))
	require.NoError(t, err)
	assert.Equal(t, 6, k4.NumEdges())
	assert.False(t, k4.Weighted())

	_, _, err = loader.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
