// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/graphprops/core"
)

// TestGraphInvariants checks the symmetry invariant on random edge sequences:
// NumEdges is always half the adjacency total and each AddEdge grows both
// endpoint lists by exactly one.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every AddEdge grows both endpoints by one", prop.ForAll(
		func(pairs []int) bool {
			g := core.NewGraph(core.WithAutoVertices())
			for i := 0; i+1 < len(pairs); i += 2 {
				u, v := strconv.Itoa(pairs[i]), strconv.Itoa(pairs[i+1])
				if u == v {
					continue
				}
				_ = g.AddVertex(u)
				_ = g.AddVertex(v)
				du, _ := g.Degree(u)
				dv, _ := g.Degree(v)
				if err := g.AddUnitEdge(u, v); err != nil {
					return false
				}
				du2, _ := g.Degree(u)
				dv2, _ := g.Degree(v)
				if du2 != du+1 || dv2 != dv+1 {
					return false
				}
			}

			sum := 0
			for _, id := range g.Vertices() {
				d, _ := g.Degree(id)
				sum += d
			}

			return sum%2 == 0 && g.NumEdges() == sum/2 && g.NumEdges() == len(g.Edges())
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.Property("weighted iff some weight differs from 1", prop.ForAll(
		func(picks []int) bool {
			palette := []float64{1, 1, 2, 0.5}
			g := core.NewGraph(core.WithAutoVertices())
			want := false
			for i, k := range picks {
				w := palette[k]
				if err := g.AddEdge("hub", "v"+strconv.Itoa(i), w); err != nil {
					return false
				}
				if w != core.DefaultWeight {
					want = true
				}
			}

			return g.Weighted() == want
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}
