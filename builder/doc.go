// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for canonical graph
// families and the named fixtures used by the CLI and tests.
//
// A Constructor is a closure over its size parameters that populates a
// *core.Graph under a builderConfig. BuildGraph creates the graph from
// core.GraphOption values, resolves BuilderOption values once, and applies
// each Constructor in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Wheel(6))
//
// Families:
//
//   - Complete(n)          K_n, n ≥ 1
//   - Cycle(n)             C_n, n ≥ 3
//   - Path(n)              P_n, n ≥ 2
//   - Star(n)              one hub and n-1 leaves, n ≥ 2
//   - Wheel(n)             C_{n-1} plus a hub, n ≥ 4
//   - CompleteBipartite(a, b)  K_{a,b}, a, b ≥ 1
//   - RandomSparse(n, p)   Erdős–Rényi G(n, p), needs WithSeed or WithRand for 0 < p < 1
//
// Vertices are added in ascending index order and named by the ID scheme
// (DefaultIDFn: "0","1",...). Edges are emitted in a fixed order and weighted
// by the weight function (DefaultWeightFn: constant 1, so the graph stays
// unweighted).
//
// Fixtures: Predefined(name) returns one of the graphs listed by
// PredefinedNames: the K4, five-vertex tree and five-cycle menu graphs, and
// the two weighted road maps used for shortest-path demos.
//
// Errors:
//
//   - ErrTooFewVertices      size parameter below the family minimum
//   - ErrInvalidProbability  p outside [0,1]
//   - ErrNeedRandSource      RandomSparse with 0 < p < 1 and no RNG
//   - ErrConstructFailed     nil constructor or nil graph
//   - ErrUnknownPredefined   Predefined with an unregistered name
package builder
