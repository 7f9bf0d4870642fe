// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating dense views of a Graph for exponential searches.
// Determinism:
//   - Index i corresponds to Vertices()[i]; Adj[i] keeps adjacency order.

package core

// Index is a dense, integer-addressed snapshot of a Graph. Searches that
// revisit the same adjacency lists millions of times (Hamiltonian cycle,
// exact coloring) work on an Index instead of string-keyed maps.
type Index struct {
	// IDs maps position → vertex ID, in insertion order.
	IDs []string

	// Pos maps vertex ID → position.
	Pos map[string]int

	// Adj[i] lists neighbor positions of IDs[i] in adjacency order,
	// one entry per edge (parallel edges repeat).
	Adj [][]int

	// Linked[i][j] reports whether at least one edge joins i and j.
	Linked [][]bool
}

// NewIndex builds an Index of g.
// Complexity: O(V² + E) time and space (the Linked matrix dominates).
func NewIndex(g *Graph) *Index {
	n := len(g.order)
	ix := &Index{
		IDs:    make([]string, n),
		Pos:    make(map[string]int, n),
		Adj:    make([][]int, n),
		Linked: make([][]bool, n),
	}
	copy(ix.IDs, g.order)
	for i, id := range ix.IDs {
		ix.Pos[id] = i
	}
	for i, id := range ix.IDs {
		nbrs := g.adj[id]
		ix.Adj[i] = make([]int, len(nbrs))
		ix.Linked[i] = make([]bool, n)
		for k, nb := range nbrs {
			j := ix.Pos[nb.ID]
			ix.Adj[i][k] = j
			ix.Linked[i][j] = true
		}
	}

	return ix
}

// Len returns the number of vertices in the Index.
func (ix *Index) Len() int { return len(ix.IDs) }
