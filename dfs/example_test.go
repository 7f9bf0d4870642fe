// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/dfs"
)

// ExampleFindCycle shows connectivity and cycle detection on a small graph.
func ExampleFindCycle() {
	g := core.NewGraph(core.WithAutoVertices())
	_ = g.AddUnitEdge("A", "B")
	_ = g.AddUnitEdge("B", "C")
	_ = g.AddUnitEdge("C", "A")
	_ = g.AddVertex("D")

	connected, _ := dfs.IsConnected(g)
	comps, _ := dfs.Components(g)
	cycle, found, _ := dfs.FindCycle(g)

	fmt.Println("connected:", connected)
	fmt.Println("components:", comps)
	fmt.Println("cycle:", found, cycle)
	// Output:
	// connected: false
	// components: [[A B C] [D]]
	// cycle: true [A B C A]
}
