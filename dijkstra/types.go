// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// ErrBadMaxDistance indicates that WithMaxDistance received a negative or NaN bound.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Path is the result of a single-pair query.
type Path struct {
	// Vertices lists the path from source to target inclusive.
	// Empty when the target is unreachable.
	Vertices []string

	// Weight is the total path weight, or +Inf when unreachable.
	Weight float64
}

// Reachable reports whether the query found a path.
func (p Path) Reachable() bool { return len(p.Vertices) > 0 }

// Hops returns the number of edges on the path, or -1 when unreachable.
func (p Path) Hops() int { return len(p.Vertices) - 1 }

// Options configures a Dijkstra run.
//
// MaxDistance caps exploration: vertices whose distance would exceed it are
// treated as unreachable. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance limits exploration to vertices within d of the source.
// Panics if d is negative or NaN, mirroring a programming error at call site.
func WithMaxDistance(d float64) Option {
	if d < 0 || math.IsNaN(d) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = d
	}
}
