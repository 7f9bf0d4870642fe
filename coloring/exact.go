// SPDX-License-Identifier: MIT

package coloring

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// Exact returns a minimum coloring of g. The context is polled every 4096
// search nodes; cancellation yields ErrAborted wrapping ctx.Err().
func Exact(ctx context.Context, g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	e := newBBEngine(ctx, core.NewIndex(g))
	e.search(0, 0)
	if e.err != nil {
		return Result{}, e.err
	}

	return result(e.ix, e.bestColors, e.best, true), nil
}

// ChromaticNumber runs Exact when exact is true and the graph has at most
// limit vertices (limit <= 0 means no limit), and Greedy otherwise.
func ChromaticNumber(ctx context.Context, g *core.Graph, exact bool, limit int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if exact && (limit <= 0 || g.VertexCount() <= limit) {
		return Exact(ctx, g)
	}

	return Greedy(g), nil
}

// bbEngine owns the branch-and-bound state of one Exact call. The incumbent
// (best, bestColors) replaces any shared running minimum.
type bbEngine struct {
	ctx context.Context
	ix  *core.Index
	n   int

	colors []int // current partial assignment, -1 = uncolored

	best       int   // fewest colors of any complete coloring so far
	bestColors []int // that coloring

	steps int
	err   error
}

func newBBEngine(ctx context.Context, ix *core.Index) *bbEngine {
	n := ix.Len()
	e := &bbEngine{ctx: ctx, ix: ix, n: n, colors: make([]int, n)}
	for i := range e.colors {
		e.colors[i] = -1
	}
	e.bestColors, e.best = greedyIndex(ix)

	return e
}

// aborted polls the context every 4096 calls and latches the error.
func (e *bbEngine) aborted() bool {
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

// conflict reports whether some colored neighbor of v holds color c.
func (e *bbEngine) conflict(v, c int) bool {
	for _, u := range e.ix.Adj[v] {
		if e.colors[u] == c {
			return true
		}
	}

	return false
}

// search colors vertex v given that colors [0, used) are in use.
func (e *bbEngine) search(v, used int) {
	if used >= e.best || e.aborted() {
		return
	}
	if v == e.n {
		e.best = used
		copy(e.bestColors, e.colors)

		return
	}

	for c := 0; c < used; c++ {
		if e.conflict(v, c) {
			continue
		}
		e.colors[v] = c
		e.search(v+1, used)
		e.colors[v] = -1
	}

	e.colors[v] = used
	e.search(v+1, used+1)
	e.colors[v] = -1
}
