// SPDX-License-Identifier: MIT

// Package coloring computes vertex colorings of a core.Graph.
//
// Exact finds the chromatic number by branch and bound. Vertices are colored
// in insertion order; each vertex tries every color already in use that no
// colored neighbor holds, then one new color. A branch is pruned as soon as
// it uses at least as many colors as the best complete coloring found so
// far. The incumbent starts from the greedy coloring, so Exact never returns
// more colors than Greedy.
//
// Greedy makes a single pass in insertion order, giving each vertex the
// smallest color free among its colored neighbors. It is not optimal.
//
// ChromaticNumber dispatches between the two with a size threshold supplied
// by the caller (see config.Engine.ExactColoringMaxVertices).
//
// Colors are 0-based. The empty graph needs 0 colors; any other graph at
// least 1.
package coloring
