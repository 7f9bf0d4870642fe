// SPDX-License-Identifier: MIT

// Package graphprops is an in-memory engine for answering structural
// questions about small and medium undirected weighted graphs.
//
// The module is organized as focused subpackages:
//
//	core/       Graph model: insertion-ordered vertices, ordered adjacency, edge catalogue
//	dsu/        disjoint-set forest with path compression
//	bfs/, dfs/  hop distances, eccentricity, connectivity, components, cycle witnesses
//	dijkstra/   single-pair and single-source shortest paths
//	mst/        Kruskal spanning forests and Prim spanning trees
//	props/      degrees, radius/diameter, completeness, Eulerian tests
//	hamilton/   backtracking Hamiltonian cycle search (cancellable)
//	coloring/   greedy and exact branch-and-bound chromatic number
//	builder/    deterministic graph families and named fixtures
//	loader/     YAML and edge-list readers
//	config/     YAML configuration with validation
//	metrics/    Prometheus instruments for analysis queries
//	analyzer/   query facade with logging, metrics and whole-graph reports
//
// Quick start:
//
//	g, _ := builder.Predefined(builder.PredefinedDijkstraDemo)
//	p, _ := dijkstra.ShortestPath(g, "A", "Z")
//	fmt.Println(p.Vertices, p.Weight) // [A C B D E Z] 13
//
// The engine packages are synchronous and log-free; they never mutate the
// graph they analyze. The exponential searches (hamilton, coloring) take a
// context.Context and stop with an ErrAborted error when it is done.
//
// See cmd/graphprops for a command-line front end.
package graphprops
