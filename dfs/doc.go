// SPDX-License-Identifier: MIT

// Package dfs implements depth-first connectivity and cycle analysis on a
// core.Graph.
//
// What:
//
//   - IsConnected: iterative DFS from the first vertex in insertion order;
//     true iff every vertex is reached. The empty graph is connected.
//   - Components: every connected component, each listed in discovery order,
//     components ordered by their first vertex.
//   - HasCycle / FindCycle: DFS over every component with an explicit frame
//     stack. The edge used to enter a vertex is never treated as a back-edge,
//     so walking one edge there and back is not a cycle. A second, parallel
//     edge to the parent is a distinct edge and closes the cycle [u, v, u].
//
// All traversals use explicit stacks instead of recursion, so graphs with
// very long paths cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - IsConnected, Components, HasCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil  graph pointer is nil
package dfs
