// SPDX-License-Identifier: MIT

package coloring

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("coloring: graph is nil")

// ErrAborted indicates that the context ended before the exact search finished.
var ErrAborted = errors.New("coloring: search aborted")

// Result is a proper vertex coloring.
type Result struct {
	// Colors is the number of distinct colors used.
	Colors int

	// Assignment maps each vertex to its color in [0, Colors).
	Assignment map[string]int

	// Exact reports whether Colors is proven minimal.
	Exact bool
}
