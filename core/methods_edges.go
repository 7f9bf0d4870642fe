// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns the catalogue in insertion order.
//   - Each AddEdge appends exactly one entry to each endpoint's adjacency list.

package core

import (
	"fmt"
	"math"
)

// AddEdge adds the undirected edge {u,v} with weight w.
//
// Implementation:
//   - Stage 1: Validate IDs, reject self-loops and NaN/±Inf weights.
//   - Stage 2: Resolve endpoints: create them under WithAutoVertices, otherwise
//     fail with ErrMissingVertex.
//   - Stage 3: Append the edge to the catalogue, then (v,w) to u and (u,w) to v.
//   - Stage 4: Flip the weighted flag when w != DefaultWeight.
//
// Behavior highlights:
//   - No duplicate detection: adding {u,v} twice stores a parallel edge.
//   - Negative weights are stored; shortest-path queries reject them later.
//   - On error the graph is unchanged.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrInvalidWeight, ErrMissingVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %s-%s weight=%v", ErrInvalidWeight, u, v, w)
	}

	// Resolve endpoints before touching any storage so a failure leaves g intact.
	for _, id := range [2]string{u, v} {
		if g.HasVertex(id) {
			continue
		}
		if !g.autoVertices {
			return fmt.Errorf("%w: %q", ErrMissingVertex, id)
		}
	}
	if g.autoVertices {
		_ = g.AddVertex(u)
		_ = g.AddVertex(v)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	g.adj[u] = append(g.adj[u], Neighbor{ID: v, Weight: w, Edge: idx})
	g.adj[v] = append(g.adj[v], Neighbor{ID: u, Weight: w, Edge: idx})

	if w != DefaultWeight {
		g.weighted = true
	}

	return nil
}

// AddUnitEdge adds {u,v} with DefaultWeight.
func (g *Graph) AddUnitEdge(u, v string) error {
	return g.AddEdge(u, v, DefaultWeight)
}

// NumEdges returns half the sum of all adjacency-list lengths. It is derived
// from the adjacency lists on every call and equals len(Edges()).
// Complexity: O(V).
func (g *Graph) NumEdges() int {
	total := 0
	for _, id := range g.order {
		total += len(g.adj[id])
	}

	return total / 2
}

// Edges returns a copy of the edge catalogue in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Weighted reports whether any inserted edge has a weight other than
// DefaultWeight.
func (g *Graph) Weighted() bool { return g.weighted }
