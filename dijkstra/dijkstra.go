// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphprops/core"
)

// ShortestPath returns the minimum-weight path from src to dst.
//
// Returns:
//
//   - Path{[src], 0} when src == dst.
//   - Path{nil, +Inf} and a nil error when dst is unreachable.
//   - core.ErrUnknownVertex if either endpoint is absent.
//   - core.ErrInvalidWeight if any edge of g has a negative weight.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) (Path, error) {
	r, err := newRunner(g, src, opts)
	if err != nil {
		return Path{}, err
	}
	if !g.HasVertex(dst) {
		return Path{}, fmt.Errorf("%w: target %q", core.ErrUnknownVertex, dst)
	}

	if err = r.process(dst); err != nil {
		return Path{}, err
	}

	return r.path(dst), nil
}

// Distances runs Dijkstra from src over the whole graph.
//
// dist holds every vertex of g (+Inf for unreachable ones); prev[v] == u means
// the shortest path to v ends with the edge u-v. The source and unreachable
// vertices have no prev entry.
func Distances(g *core.Graph, src string, opts ...Option) (map[string]float64, map[string]string, error) {
	r, err := newRunner(g, src, opts)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(""); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	source  string
	dist    map[string]float64 // vertex ID → best known distance
	prev    map[string]string  // vertex ID → predecessor on the best path
	visited map[string]bool    // finalized vertices
	pq      nodePQ
}

// newRunner validates inputs and seeds the heap with the source.
func newRunner(g *core.Graph, src string, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %q", core.ErrUnknownVertex, src)
	}

	// Fail fast on negative weights, before any relaxation.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %g on edge %s-%s",
				core.ErrInvalidWeight, e.Weight, e.From, e.To)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		source:  src,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	return r, nil
}

// process pops vertices in distance order until the heap drains, or until
// target (when non-empty) is finalized.
func (r *runner) process(target string) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances to the neighbors of the finalized vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<": the first predecessor to reach a distance keeps it.
		if newDist >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// path rebuilds the source→dst path from the predecessor map.
func (r *runner) path(dst string) Path {
	if !r.visited[dst] {
		return Path{Weight: math.Inf(1)}
	}

	var rev []string
	for v := dst; ; v = r.prev[v] {
		rev = append(rev, v)
		if v == r.source {
			break
		}
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return Path{Vertices: out, Weight: r.dist[dst]}
}

// nodeItem is a heap entry: a vertex and its tentative distance at push time.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
