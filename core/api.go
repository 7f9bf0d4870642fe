// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters.

package core

// GraphStats is a read-only snapshot of the graph's sizes and flags.
type GraphStats struct {
	VertexCount  int
	EdgeCount    int
	Weighted     bool
	AutoVertices bool
	// ParallelEdges counts edges whose unordered endpoint pair was already
	// used by an earlier edge.
	ParallelEdges int
	// IsolatedVertices counts vertices with an empty adjacency list.
	IsolatedVertices int
}

// Stats produces a snapshot of sizes and flags.
//
// Implementation:
//   - Stage 1: Copy flags and counts.
//   - Stage 2: Scan the edge catalogue once, counting repeated unordered pairs.
//   - Stage 3: Scan vertices once, counting empty adjacency lists.
//
// Complexity:
//   - Time O(V+E), Space O(E) for the pair set.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount:  len(g.order),
		EdgeCount:    g.NumEdges(),
		Weighted:     g.weighted,
		AutoVertices: g.autoVertices,
	}

	seen := make(map[[2]string]struct{}, len(g.edges))
	for _, e := range g.edges {
		key := [2]string{e.From, e.To}
		if key[1] < key[0] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			stats.ParallelEdges++
			continue
		}
		seen[key] = struct{}{}
	}

	for _, id := range g.order {
		if len(g.adj[id]) == 0 {
			stats.IsolatedVertices++
		}
	}

	return stats
}
