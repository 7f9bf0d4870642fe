// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphprops/coloring"
	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/dfs"
	"github.com/katalvlaran/graphprops/dijkstra"
	"github.com/katalvlaran/graphprops/hamilton"
	"github.com/katalvlaran/graphprops/loader"
	"github.com/katalvlaran/graphprops/metrics"
	"github.com/katalvlaran/graphprops/mst"
	"github.com/katalvlaran/graphprops/props"
)

// Analyzer runs graph queries with logging and metrics.
type Analyzer struct {
	opts   Options
	logger *zap.Logger
}

// New builds an Analyzer from DefaultOptions and opts.
func New(opts ...Option) *Analyzer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Analyzer{opts: o, logger: o.Logger}
}

// Options returns the resolved configuration.
func (a *Analyzer) Options() Options { return a.opts }

// with returns a shallow copy whose logger carries extra fields.
func (a *Analyzer) with(fields ...zap.Field) *Analyzer {
	c := *a
	c.logger = a.logger.With(fields...)

	return &c
}

// run times fn, logs its outcome and records metrics under q.
func (a *Analyzer) run(q Query, fn func() error) error {
	start := time.Now()
	a.logger.Debug("query started", zap.String("query", string(q)))

	err := fn()
	elapsed := time.Since(start)

	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
		a.logger.Error("query failed", zap.String("query", string(q)), zap.Duration("elapsed", elapsed), zap.Error(err))
		if errors.Is(err, hamilton.ErrAborted) || errors.Is(err, coloring.ErrAborted) {
			if a.opts.Metrics != nil {
				a.opts.Metrics.RecordAbort(string(q))
			}
		}
	} else {
		a.logger.Debug("query finished", zap.String("query", string(q)), zap.Duration("elapsed", elapsed))
	}
	if a.opts.Metrics != nil {
		a.opts.Metrics.RecordQuery(string(q), status, elapsed)
	}

	return err
}

// skip logs and counts a query that was not run.
func (a *Analyzer) skip(q Query, reason string) {
	a.logger.Info("query skipped", zap.String("query", string(q)), zap.String("reason", reason))
	if a.opts.Metrics != nil {
		a.opts.Metrics.RecordQuery(string(q), metrics.StatusSkipped, 0)
	}
}

// NoteSubstitutions logs weight substitutions reported by the loader.
func (a *Analyzer) NoteSubstitutions(subs []loader.Substitution) {
	for _, s := range subs {
		a.logger.Warn("invalid edge weight replaced",
			zap.Int("line", s.Line),
			zap.String("from", s.From),
			zap.String("to", s.To),
			zap.String("raw", s.Raw),
			zap.Float64("weight", core.DefaultWeight))
	}
	if a.opts.Metrics != nil && len(subs) > 0 {
		a.opts.Metrics.RecordSubstitutions(len(subs))
	}
}

// Vertices returns the vertex IDs in insertion order.
func (a *Analyzer) Vertices(g *core.Graph) []string {
	var out []string
	_ = a.run(QueryVertices, func() error {
		out = g.Vertices()
		return nil
	})

	return out
}

// NumEdges returns the number of undirected edges.
func (a *Analyzer) NumEdges(g *core.Graph) int {
	var n int
	_ = a.run(QueryNumEdges, func() error {
		n = g.NumEdges()
		return nil
	})

	return n
}

// Degrees returns degree statistics.
func (a *Analyzer) Degrees(g *core.Graph) (props.DegreeStats, error) {
	var st props.DegreeStats
	err := a.run(QueryDegrees, func() (err error) {
		st, err = props.Degrees(g)
		return err
	})

	return st, err
}

// IsConnected reports whether g is connected.
func (a *Analyzer) IsConnected(g *core.Graph) (bool, error) {
	var ok bool
	err := a.run(QueryIsConnected, func() (err error) {
		ok, err = dfs.IsConnected(g)
		return err
	})

	return ok, err
}

// RadiusDiameter returns the hop radius and diameter of a connected graph.
func (a *Analyzer) RadiusDiameter(g *core.Graph) (int, int, error) {
	var r, d int
	err := a.run(QueryRadiusDiameter, func() (err error) {
		r, d, err = props.RadiusDiameter(g)
		return err
	})

	return r, d, err
}

// MST returns the minimum spanning forest.
func (a *Analyzer) MST(g *core.Graph) (mst.Result, error) {
	var res mst.Result
	err := a.run(QueryMST, func() (err error) {
		res, err = mst.Kruskal(g)
		return err
	})

	return res, err
}

// ShortestPath returns the minimum-weight path between from and to.
func (a *Analyzer) ShortestPath(g *core.Graph, from, to string) (dijkstra.Path, error) {
	var p dijkstra.Path
	err := a.run(QueryShortestPath, func() (err error) {
		p, err = dijkstra.ShortestPath(g, from, to)
		return err
	})

	return p, err
}

// IsComplete reports whether g is complete.
func (a *Analyzer) IsComplete(g *core.Graph) bool {
	var ok bool
	_ = a.run(QueryIsComplete, func() error {
		ok = props.IsComplete(g)
		return nil
	})

	return ok
}

// IsEulerian reports whether g has an Eulerian circuit.
func (a *Analyzer) IsEulerian(g *core.Graph) (bool, error) {
	var ok bool
	err := a.run(QueryIsEulerian, func() (err error) {
		ok, err = props.IsEulerian(g)
		return err
	})

	return ok, err
}

// HasCycle reports whether g contains a cycle and returns one.
func (a *Analyzer) HasCycle(g *core.Graph) ([]string, bool, error) {
	var (
		cycle []string
		found bool
	)
	err := a.run(QueryHasCycle, func() (err error) {
		cycle, found, err = dfs.FindCycle(g)
		return err
	})

	return cycle, found, err
}

// HamiltonianCycle searches for a Hamiltonian cycle within the configured
// timeout.
func (a *Analyzer) HamiltonianCycle(ctx context.Context, g *core.Graph) ([]string, bool, error) {
	if a.opts.HamiltonTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.HamiltonTimeout)
		defer cancel()
	}

	var (
		cycle []string
		found bool
	)
	err := a.run(QueryHamiltonianCycle, func() (err error) {
		cycle, found, err = hamilton.Cycle(ctx, g)
		return err
	})

	return cycle, found, err
}

// ChromaticNumber colors g exactly when exact is set and g is within the
// configured size limit, greedily otherwise.
func (a *Analyzer) ChromaticNumber(ctx context.Context, g *core.Graph, exact bool) (coloring.Result, error) {
	var res coloring.Result
	err := a.run(QueryChromaticNumber, func() (err error) {
		res, err = coloring.ChromaticNumber(ctx, g, exact, a.opts.ExactColoringLimit)
		return err
	})
	if err == nil && exact && !res.Exact {
		a.logger.Warn("exact coloring replaced by greedy",
			zap.Int("vertices", g.VertexCount()),
			zap.Int("limit", a.opts.ExactColoringLimit),
			zap.Int("colors", res.Colors))
		if a.opts.Metrics != nil {
			a.opts.Metrics.RecordFallback()
		}
	}

	return res, err
}
