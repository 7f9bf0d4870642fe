// SPDX-License-Identifier: MIT

// Package hamilton searches for a Hamiltonian cycle in a core.Graph by
// backtracking.
//
// The search starts at the first vertex in insertion order and extends the
// current path with unvisited neighbors in adjacency order. When the path
// holds every vertex it checks for an edge back to the start. The first
// cycle met in this order is returned, so results are reproducible.
//
// The search is exponential in the worst case. The context is polled every
// 4096 search nodes; cancellation aborts with ErrAborted wrapping ctx.Err().
package hamilton

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("hamilton: graph is nil")

// ErrAborted indicates that the context ended before the search finished.
var ErrAborted = errors.New("hamilton: search aborted")

// MinVertices is the smallest order for which a Hamiltonian cycle can exist
// in a graph without loops.
const MinVertices = 3

// Cycle returns a Hamiltonian cycle of g as a closed vertex sequence of
// length V+1 (the start repeated at the end), or (nil, false, nil) when none
// exists. Graphs with fewer than MinVertices vertices have no cycle.
func Cycle(ctx context.Context, g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if g.VertexCount() < MinVertices {
		return nil, false, nil
	}

	e := newEngine(ctx, core.NewIndex(g))
	found := e.extend(e.path[0], 1)
	if e.err != nil {
		return nil, false, e.err
	}
	if !found {
		return nil, false, nil
	}

	cycle := make([]string, 0, e.n+1)
	for _, i := range e.path {
		cycle = append(cycle, e.ix.IDs[i])
	}

	return append(cycle, e.ix.IDs[e.path[0]]), true, nil
}

// engine is the per-call search state. visited and path are mutated with a
// strict push/pop discipline.
type engine struct {
	ctx     context.Context
	ix      *core.Index
	n       int
	visited []bool
	path    []int // path[0:depth], path[0] is the start
	steps   int
	err     error
}

func newEngine(ctx context.Context, ix *core.Index) *engine {
	e := &engine{
		ctx:     ctx,
		ix:      ix,
		n:       ix.Len(),
		visited: make([]bool, ix.Len()),
		path:    make([]int, ix.Len()),
	}
	e.path[0] = 0
	e.visited[0] = true

	return e
}

// aborted polls the context every 4096 calls and latches the error.
func (e *engine) aborted() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if e.steps&4095 != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = fmt.Errorf("%w after %d steps: %w", ErrAborted, e.steps, err)

		return true
	}

	return false
}

// extend tries to grow path[0:depth] whose last vertex is last.
func (e *engine) extend(last, depth int) bool {
	if e.aborted() {
		return false
	}
	if depth == e.n {
		return e.ix.Linked[last][e.path[0]]
	}

	for _, next := range e.ix.Adj[last] {
		if e.visited[next] {
			continue
		}
		e.visited[next] = true
		e.path[depth] = next
		if e.extend(next, depth+1) {
			return true
		}
		e.visited[next] = false
	}

	return false
}
