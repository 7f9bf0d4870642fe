// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees and forests of an undirected
// weighted core.Graph.
//
// Kruskal sorts the edge catalogue by weight with a stable sort, so equal
// weights keep insertion order, then keeps every edge whose endpoints lie in
// different dsu.Set components. Because core.Graph stores exactly one record
// per undirected edge, no (u,v)/(v,u) de-duplication is needed; parallel
// edges compete like any other edge and the cheaper one wins.
//
// On a disconnected graph Kruskal returns the minimum spanning forest and
// reports the number of trees in Result.Components. SpanningTree and Prim
// are the strict variants: they fail with core.ErrDisconnected instead.
//
// Every returned edge is oriented with From < To (string order).
// Negative weights are allowed.
//
// Complexity:
//
//   - Kruskal: Time O(E log E + E·α(V)), Memory O(V + E)
//   - Prim:    Time O(E log E), Memory O(V + E)
package mst
