// SPDX-License-Identifier: MIT

package mst_test

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/mst"
)

// ExampleKruskal builds the minimum spanning tree of a small weighted graph.
func ExampleKruskal() {
	g := core.NewGraph(core.WithAutoVertices())
	_ = g.AddEdge("A", "B", 6)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("B", "C", 7)
	_ = g.AddEdge("B", "D", 10)
	_ = g.AddEdge("C", "D", 5)
	_ = g.AddEdge("D", "E", 3)
	_ = g.AddEdge("E", "A", 7)
	_ = g.AddEdge("E", "B", 5)

	res, _ := mst.Kruskal(g)
	for _, e := range res.Edges {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", res.Weight)
	// Output:
	// D-E 3
	// A-C 4
	// C-D 5
	// B-E 5
	// total: 17
}
