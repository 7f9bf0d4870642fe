// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrUnknownMethod indicates that Compute received an unsupported method name.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal and MethodPrim name the algorithms Compute can dispatch to.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// Result is a minimum spanning forest.
type Result struct {
	// Edges in selection order, each oriented From < To.
	Edges []core.Edge

	// Weight is the sum of the selected edge weights.
	Weight float64

	// Components is the number of trees in the forest; 1 for a connected graph.
	Components int
}

// Options selects the algorithm used by Compute.
type Options struct {
	Method string
	Root   string // Prim start vertex; empty means the first vertex
}

// Option represents a functional option for Compute.
type Option func(*Options)

// DefaultOptions selects Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the Prim start vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// Compute runs the selected algorithm. Kruskal returns a forest on
// disconnected input; Prim returns core.ErrDisconnected.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// oriented returns e with From < To.
func oriented(e core.Edge) core.Edge {
	if e.To < e.From {
		e.From, e.To = e.To, e.From
	}

	return e
}
