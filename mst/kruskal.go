// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/dsu"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Validate: g != nil. An empty graph has the empty forest.
//  2. Copy the edge catalogue and sort it by weight (stable: ties keep
//     insertion order).
//  3. Seed a dsu.Set with every vertex.
//  4. Keep each edge whose endpoints have different roots and union them.
//     Stop early once V-1 edges are kept.
//  5. Components = V - len(Edges).
func Kruskal(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return Result{Edges: []core.Edge{}}, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	sets := dsu.New(vertices...)
	res := Result{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for _, e := range edges {
		same, err := sets.Same(e.From, e.To)
		if err != nil {
			return Result{}, fmt.Errorf("mst: %w", err)
		}
		if same {
			continue
		}
		if err = sets.Union(e.From, e.To); err != nil {
			return Result{}, fmt.Errorf("mst: %w", err)
		}
		res.Edges = append(res.Edges, oriented(e))
		res.Weight += e.Weight
		if len(res.Edges) == len(vertices)-1 {
			break
		}
	}
	res.Components = sets.Len()

	return res, nil
}

// SpanningTree is Kruskal restricted to connected graphs: a forest with
// more than one tree yields core.ErrDisconnected.
func SpanningTree(g *core.Graph) (Result, error) {
	res, err := Kruskal(g)
	if err != nil {
		return Result{}, err
	}
	if res.Components > 1 {
		return Result{}, fmt.Errorf("%w: %d components", core.ErrDisconnected, res.Components)
	}

	return res, nil
}
