// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddUnitEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.NumEdges(), "Weighted:", g.Weighted())
	deg, _ := g.Degree("D")
	fmt.Println("deg(D):", deg)

	err := g.AddUnitEdge("A", "Z")
	fmt.Println("missing endpoint:", errors.Is(err, core.ErrMissingVertex))

	// Output:
	// Vertices: [A B C D]
	// Edges: 3 Weighted: true
	// deg(D): 0
	// missing endpoint: true
}
