// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphprops/bfs"
	"github.com/katalvlaran/graphprops/core"
)

// ExampleDistances shows hop counts on a weighted graph: weights are ignored.
func ExampleDistances() {
	g := core.NewGraph(core.WithAutoVertices())
	_ = g.AddEdge("A", "B", 100)
	_ = g.AddEdge("B", "C", 100)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddVertex("Z")

	dist, _ := bfs.Distances(g, "A")
	for _, v := range g.Vertices() {
		fmt.Println(v, dist[v])
	}

	// Output:
	// A 0
	// B 1
	// C 1
	// Z -1
}
