// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves vertex order, adjacency order and edge indices exactly.

package core

// Clone returns a deep copy of the Graph: options, vertices, edges and
// adjacency. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		autoVertices: g.autoVertices,
		weighted:     g.weighted,
		order:        make([]string, len(g.order)),
		adj:          make(map[string][]Neighbor, len(g.adj)),
		edges:        make([]Edge, len(g.edges)),
	}
	copy(clone.order, g.order)
	copy(clone.edges, g.edges)
	for id, nbrs := range g.adj {
		if nbrs == nil {
			clone.adj[id] = nil
			continue
		}
		cp := make([]Neighbor, len(nbrs))
		copy(cp, nbrs)
		clone.adj[id] = cp
	}

	return clone
}
