// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphprops/builder"
)

// ExampleBuildGraph composes a lettered wheel.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Wheel(5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println("edges:", g.NumEdges())
	// Output:
	// [A B C D Center]
	// edges: 8
}
