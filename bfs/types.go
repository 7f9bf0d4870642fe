// SPDX-License-Identifier: MIT

// Package bfs provides result types and sentinels for breadth-first search
// over a core.Graph.
package bfs

import "errors"

// Unreachable is the distance reported for vertices that cannot be reached
// from the start vertex. It is a sentinel, never a real hop count.
const Unreachable = -1

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from every vertex ID to its hop distance from the start,
//     Unreachable for vertices outside the start's component.
//   - Parent: map from each reached non-start vertex to its BFS-tree parent.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id string) bool {
	d, ok := r.Depth[id]

	return ok && d != Unreachable
}
