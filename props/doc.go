// SPDX-License-Identifier: MIT

// Package props computes structural properties of a core.Graph: degree
// statistics, hop-count radius and diameter, completeness and the Eulerian
// circuit criterion.
//
// Degrees count adjacency entries, so parallel edges inflate them. This also
// means a graph with a parallel edge is never complete.
//
// Radius and diameter use BFS hop counts, never weights, even on a weighted
// graph. They are defined only for connected graphs; a disconnected graph
// yields core.ErrDisconnected rather than a partial answer.
package props
