// SPDX-License-Identifier: MIT

package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// Prim grows a minimum spanning tree from root (the first vertex when root
// is empty). It fails with core.ErrDisconnected when some vertex cannot be
// reached, and with core.ErrUnknownVertex for an absent root.
func Prim(g *core.Graph, root string) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return Result{}, core.ErrEmptyGraph
	}
	if root == "" {
		root = vertices[0]
	}
	if !g.HasVertex(root) {
		return Result{}, fmt.Errorf("%w: root %q", core.ErrUnknownVertex, root)
	}

	visited := make(map[string]bool, n)
	res := Result{Edges: make([]core.Edge, 0, n-1), Components: 1}
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u string) error {
		visited[u] = true
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("mst: %w", err)
		}
		for _, nb := range nbrs {
			if !visited[nb.ID] {
				heap.Push(pq, &edgeItem{from: u, to: nb.ID, weight: nb.Weight, seq: nb.Edge})
			}
		}

		return nil
	}
	if err := push(root); err != nil {
		return Result{}, err
	}

	for pq.Len() > 0 && len(res.Edges) < n-1 {
		it := heap.Pop(pq).(*edgeItem)
		if visited[it.to] {
			continue
		}
		res.Edges = append(res.Edges, oriented(core.Edge{From: it.from, To: it.to, Weight: it.weight}))
		res.Weight += it.weight
		if err := push(it.to); err != nil {
			return Result{}, err
		}
	}

	if len(res.Edges) < n-1 {
		return Result{}, fmt.Errorf("%w: reached %d of %d vertices", core.ErrDisconnected, len(res.Edges)+1, n)
	}

	return res, nil
}

// edgeItem is a frontier edge; seq (the catalogue index) breaks weight ties.
type edgeItem struct {
	from, to string
	weight   float64
	seq      int
}

type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
