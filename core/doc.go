// SPDX-License-Identifier: MIT

// Package core provides the in-memory undirected weighted Graph that every
// analysis package in graphprops reads from.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are non-empty string IDs kept in insertion order.
//   - Each vertex owns an ordered adjacency list of Neighbor{ID, Weight, Edge}
//     records; Edge is the index of the undirected edge in the edge catalogue.
//   - AddEdge(u,v,w) appends to both lists (symmetry invariant), so
//     NumEdges() == Σ len(adj[v]) / 2 always holds.
//   - Parallel edges are tolerated: adding the same pair twice stores two
//     edges. Degrees, cycle detection and MST all observe the duplicate.
//   - Weighted() turns true the first time an edge with weight ≠ 1 is added.
//
// Configuration Options (GraphOption):
//
//	– WithAutoVertices()
//	    AddEdge creates missing endpoints instead of failing with ErrMissingVertex.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1), idempotent
//	HasVertex(id string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) error // O(1) amortized
//	AddUnitEdge(u, v string) error        // AddEdge(u, v, DefaultWeight)
//
//	// Query
//	Vertices() []string                   // O(V), insertion order
//	Neighbors(id string) ([]Neighbor, error)
//	Degree(id string) (int, error)
//	Edges() []Edge                        // O(E), insertion order
//	NumEdges() int                        // O(V), derived
//	Weighted() bool
//
//	// Snapshots
//	Clone() *Graph                        // deep copy
//	NewIndex(g) *Index                    // dense integer view for hot loops
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrUnknownVertex   – query references an absent vertex
//	ErrMissingVertex   – AddEdge endpoint was never declared
//	ErrInvalidWeight   – NaN or infinite weight (Dijkstra also uses it for negatives)
//	ErrLoopNotAllowed  – AddEdge(v, v, ...)
//	ErrEmptyGraph      – statistic requested on a graph with no vertices
//	ErrDisconnected    – query defined only for connected graphs
//
// Concurrency: the Graph holds no locks. Any number of goroutines may run
// analyses on the same Graph as long as nobody mutates it at the same time.
package core
