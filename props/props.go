// SPDX-License-Identifier: MIT

package props

import (
	"github.com/katalvlaran/graphprops/bfs"
	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/dfs"
)

// DegreeStats holds per-vertex degrees and their extremes.
type DegreeStats struct {
	PerVertex map[string]int
	Max       int
	Min       int
}

// Degrees returns the degree of every vertex together with the max and min.
// Fails with core.ErrEmptyGraph when g has no vertices.
func Degrees(g *core.Graph) (DegreeStats, error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return DegreeStats{}, core.ErrEmptyGraph
	}

	st := DegreeStats{PerVertex: make(map[string]int, len(vertices))}
	for i, v := range vertices {
		d, err := g.Degree(v)
		if err != nil {
			return DegreeStats{}, err
		}
		st.PerVertex[v] = d
		if i == 0 || d > st.Max {
			st.Max = d
		}
		if i == 0 || d < st.Min {
			st.Min = d
		}
	}

	return st, nil
}

// RadiusDiameter returns the minimum and maximum hop eccentricity over all
// vertices. Runs one BFS per vertex: O(V·(V+E)).
func RadiusDiameter(g *core.Graph) (radius, diameter int, err error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return 0, 0, core.ErrEmptyGraph
	}

	for i, v := range vertices {
		ecc, err := bfs.Eccentricity(g, v)
		if err != nil {
			return 0, 0, err
		}
		if i == 0 || ecc < radius {
			radius = ecc
		}
		if ecc > diameter {
			diameter = ecc
		}
	}

	return radius, diameter, nil
}

// IsComplete reports whether every vertex has degree VertexCount()-1.
// The empty graph is complete.
func IsComplete(g *core.Graph) bool {
	want := g.VertexCount() - 1
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d != want {
			return false
		}
	}

	return true
}

// OddVertices lists the vertices of odd degree in insertion order.
func OddVertices(g *core.Graph) []string {
	var odd []string
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d%2 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// IsEulerian reports whether g is connected and every vertex has even degree,
// i.e. g admits a closed walk using every edge exactly once.
// The empty graph is vacuously Eulerian.
func IsEulerian(g *core.Graph) (bool, error) {
	connected, err := dfs.IsConnected(g)
	if err != nil || !connected {
		return false, err
	}

	return len(OddVertices(g)) == 0, nil
}

// HasEulerianPath reports whether g is connected and has zero or two
// odd-degree vertices, i.e. admits an open or closed walk using every edge once.
func HasEulerianPath(g *core.Graph) (bool, error) {
	connected, err := dfs.IsConnected(g)
	if err != nil || !connected {
		return false, err
	}
	odd := len(OddVertices(g))

	return odd == 0 || odd == 2, nil
}
