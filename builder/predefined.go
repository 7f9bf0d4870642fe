// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// Names accepted by Predefined.
const (
	PredefinedK4           = "k4"
	PredefinedTree5        = "tree5"
	PredefinedCycle5       = "cycle5"
	PredefinedDijkstraDemo = "dijkstra-demo"
	PredefinedSpringDemo   = "spring-demo"
)

type fixtureEdge struct {
	u, v string
	w    float64
}

type fixture struct {
	description string
	vertices    []string
	edges       []fixtureEdge
}

// fixtures lists the predefined graphs in menu order.
var fixtures = []struct {
	name string
	fixture
}{
	{PredefinedK4, fixture{
		description: "complete graph K4",
		vertices:    []string{"A", "B", "C", "D"},
		edges: []fixtureEdge{
			{"A", "B", 1}, {"A", "C", 1}, {"A", "D", 1}, {"B", "C", 1}, {"B", "D", 1}, {"C", "D", 1},
		},
	}},
	{PredefinedTree5, fixture{
		description: "tree with 5 vertices",
		vertices:    []string{"1", "2", "3", "4", "5"},
		edges:       []fixtureEdge{{"1", "2", 1}, {"1", "3", 1}, {"3", "4", 1}, {"3", "5", 1}},
	}},
	{PredefinedCycle5, fixture{
		description: "cycle with 5 vertices",
		vertices:    []string{"a", "b", "c", "d", "e"},
		edges:       []fixtureEdge{{"a", "b", 1}, {"b", "c", 1}, {"c", "d", 1}, {"d", "e", 1}, {"e", "a", 1}},
	}},
	{PredefinedDijkstraDemo, fixture{
		description: "weighted road map A..Z",
		vertices:    []string{"A", "B", "C", "D", "E", "Z"},
		edges: []fixtureEdge{
			{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5}, {"C", "D", 8},
			{"C", "E", 10}, {"D", "E", 2}, {"D", "Z", 6}, {"E", "Z", 3},
		},
	}},
	{PredefinedSpringDemo, fixture{
		description: "weighted road map A..E",
		vertices:    []string{"A", "B", "C", "D", "E"},
		edges: []fixtureEdge{
			{"A", "B", 6}, {"A", "C", 4}, {"B", "C", 7}, {"B", "D", 10},
			{"C", "D", 5}, {"D", "E", 3}, {"E", "A", 7}, {"E", "B", 5},
		},
	}},
}

// PredefinedNames returns the registered fixture names in menu order.
func PredefinedNames() []string {
	names := make([]string, len(fixtures))
	for i, f := range fixtures {
		names[i] = f.name
	}

	return names
}

// Describe returns the human-readable description of a fixture.
func Describe(name string) (string, bool) {
	for _, f := range fixtures {
		if f.name == name {
			return f.description, true
		}
	}

	return "", false
}

// Predefined builds a fresh copy of the named fixture.
func Predefined(name string) (*core.Graph, error) {
	for _, f := range fixtures {
		if f.name == name {
			return BuildGraph(nil, nil, fromFixture(name, f.fixture))
		}
	}

	return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPredefined, name, PredefinedNames())
}

// fromFixture declares every vertex first, then adds the edges in order.
// The ID scheme and weight function of cfg are ignored: fixtures are literal.
func fromFixture(name string, f fixture) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, v := range f.vertices {
			if err := g.AddVertex(v); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", name, v, err)
			}
		}
		for _, e := range f.edges {
			if err := g.AddEdge(e.u, e.v, e.w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", name, e.u, e.v, e.w, err)
			}
		}

		return nil
	}
}
