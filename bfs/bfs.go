// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances (edge weights are ignored), parent links and visit
// order, plus the eccentricity helper used for radius and diameter.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph *core.Graph
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID using a FIFO
// frontier. Neighbors are expanded in adjacency order. Every vertex of g
// appears in the result's Depth map; those never reached carry Unreachable.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrUnknownVertex if startID is absent.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("bfs: start %q: %w", startID, core.ErrUnknownVertex)
	}

	vertices := g.Vertices()
	n := len(vertices)
	w := &walker{
		graph: g,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	for _, v := range vertices {
		w.res.Depth[v] = Unreachable
	}

	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id discovered at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		nbrs, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nb := range nbrs {
			if w.res.Depth[nb.ID] == Unreachable {
				w.enqueue(nb.ID, item.depth+1, item.id)
			}
		}
	}

	return nil
}

// Distances returns the hop distance from start to every vertex of g;
// unreachable vertices map to Unreachable.
func Distances(g *core.Graph, start string) (map[string]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// Eccentricity returns the largest hop distance from v to any other vertex.
// A single isolated vertex has eccentricity 0.
//
// Errors:
//   - core.ErrUnknownVertex if v is absent.
//   - core.ErrDisconnected if some vertex is unreachable from v.
func Eccentricity(g *core.Graph, v string) (int, error) {
	dist, err := Distances(g, v)
	if err != nil {
		return 0, err
	}
	ecc := 0
	for _, id := range g.Vertices() {
		d := dist[id]
		if d == Unreachable {
			return 0, fmt.Errorf("bfs: %q unreachable from %q: %w", id, v, core.ErrDisconnected)
		}
		if d > ecc {
			ecc = d
		}
	}

	return ecc, nil
}
