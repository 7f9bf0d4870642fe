// SPDX-License-Identifier: MIT

// Package core defines the Graph, Neighbor and Edge types, the graph options
// and the sentinel errors shared by every analysis package.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrUnknownVertex  - requested vertex does not exist.
//	ErrMissingVertex  - edge endpoint was not declared before AddEdge.
//	ErrInvalidWeight  - weight is NaN/Inf, or negative where forbidden.
//	ErrLoopNotAllowed - self-loop edge.
//	ErrEmptyGraph     - statistic over zero vertices.
//	ErrDisconnected   - query requires a connected graph.
package core

import "errors"

// DefaultWeight is the weight of an edge added without an explicit weight.
// A graph whose edges all carry DefaultWeight reports Weighted() == false.
const DefaultWeight float64 = 1

// Sentinel errors for graph construction and the analyses built on top of it.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrUnknownVertex indicates a query referenced a vertex absent from the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrMissingVertex indicates AddEdge referenced an undeclared endpoint
	// on a graph built without WithAutoVertices.
	ErrMissingVertex = errors.New("core: edge references undeclared vertex")

	// ErrInvalidWeight indicates a weight that cannot be used (NaN, ±Inf,
	// or a negative weight handed to a shortest-path query).
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyGraph indicates a statistic was requested on a graph with no vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrDisconnected indicates a query that is only defined on connected graphs.
	ErrDisconnected = errors.New("core: graph is disconnected")
)

// Neighbor is one entry of a vertex adjacency list.
type Neighbor struct {
	// ID is the vertex on the other side of the edge.
	ID string

	// Weight is the edge weight.
	Weight float64

	// Edge is the position of the edge in Edges(). Both directions of one
	// undirected edge share the same index; parallel edges get distinct ones.
	Edge int
}

// Edge is one undirected edge in insertion order.
type Edge struct {
	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithAutoVertices makes AddEdge create endpoints that were never added,
// in argument order, instead of failing with ErrMissingVertex.
func WithAutoVertices() GraphOption {
	return func(g *Graph) { g.autoVertices = true }
}

// Graph is an undirected weighted graph with insertion-ordered vertices and
// per-vertex ordered adjacency lists.
//
// order lists vertex IDs in insertion order; adj maps each ID to its
// adjacency list; edges is the catalogue indexed by Neighbor.Edge.
type Graph struct {
	// Configuration flags
	autoVertices bool // create missing endpoints in AddEdge

	// Derived flag
	weighted bool // some edge has weight != DefaultWeight

	// Storage
	order []string              // vertex IDs, insertion order
	adj   map[string][]Neighbor // vertex ID → ordered adjacency
	edges []Edge                // undirected edge catalogue
}

// NewGraph creates an empty Graph with the given options.
// By default, AddEdge rejects undeclared endpoints.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
