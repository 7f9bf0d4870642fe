// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative float64 weights.
//
// The algorithm processes vertices in order of increasing tentative distance
// using a binary min-heap and the lazy decrease-key strategy: an improved
// distance pushes a new heap entry, and stale entries are skipped when popped.
//
// Entry points:
//
//   - ShortestPath(g, src, dst): stops as soon as dst is popped and rebuilds
//     the path from the predecessor map. src == dst yields [src] with weight 0.
//     An unreachable dst yields an empty Path with Weight +Inf and a nil error.
//   - Distances(g, src): full single-source run returning the distance and
//     predecessor maps. Unreachable vertices map to +Inf and have no entry in
//     the predecessor map.
//
// Validation (in order):
//
//  1. g must be non-nil (ErrNilGraph).
//  2. Endpoints must exist (core.ErrUnknownVertex).
//  3. No edge may carry a negative weight (core.ErrInvalidWeight). The whole
//     edge catalogue is scanned up front, before any relaxation.
//
// Ties are broken by discovery: relaxation uses strict "<" in adjacency order,
// so the first predecessor that reaches the minimum keeps it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
package dijkstra
