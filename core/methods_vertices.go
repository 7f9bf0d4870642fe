// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; every traversal that picks
//     "the first vertex" relies on this.

package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: If absent, append to the insertion order and allocate an empty adjacency list.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.adj[id]; exists {
		return nil // no-op for existing vertex
	}
	g.order = append(g.order, id)
	g.adj[id] = nil

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.adj[id]

	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns a copy of the adjacency list of id, in the order the
// edges were added. Parallel edges appear once per edge.
//
// Errors:
//   - ErrUnknownVertex: if id is not in the graph.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	out := make([]Neighbor, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Degree returns the length of the adjacency list of id, parallel edges
// included.
//
// Errors:
//   - ErrUnknownVertex: if id is not in the graph.
func (g *Graph) Degree(id string) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return len(nbrs), nil
}
