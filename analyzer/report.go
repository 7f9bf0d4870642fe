// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphprops/coloring"
	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/dfs"
	"github.com/katalvlaran/graphprops/dijkstra"
	"github.com/katalvlaran/graphprops/mst"
	"github.com/katalvlaran/graphprops/props"
)

// Report collects the answers of one Analyze call. A nil pointer field
// means the query was not requested, skipped or failed; see Skipped and
// Errors for the latter two.
type Report struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time

	Queries []Query         // requested queries, in execution order
	Graph   core.GraphStats // size snapshot taken before the queries ran

	Vertices       []string
	NumEdges       *int
	Degrees        *props.DegreeStats
	Connected      *bool
	Components     [][]string // set when the graph is disconnected
	Radius         *int
	Diameter       *int
	MST            *mst.Result
	ShortestPath   *dijkstra.Path
	PathFrom       string
	PathTo         string
	Complete       *bool
	Eulerian       *bool
	OddVertices    []string // set with Eulerian
	HasCycle       *bool
	CycleWitness   []string
	Hamiltonian    []string // closed cycle when found
	HamiltonianRan bool
	Coloring       *coloring.Result

	Skipped map[Query]string
	Errors  map[Query]error
}

// Failed reports whether any query returned an error.
func (r *Report) Failed() bool { return len(r.Errors) > 0 }

// Elapsed returns the wall time of the whole Analyze call.
func (r *Report) Elapsed() time.Duration { return r.FinishedAt.Sub(r.StartedAt) }

// Analyze runs queries (all of them when none is given) against g.
// It fails only for a nil graph; per-query failures land in Report.Errors.
func (a *Analyzer) Analyze(ctx context.Context, g *core.Graph, queries ...Query) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(queries) == 0 {
		queries = AllQueries()
	}

	rep := &Report{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Queries:   queries,
		Graph:     g.Stats(),
		PathFrom:  a.opts.PathFrom,
		PathTo:    a.opts.PathTo,
		Skipped:   make(map[Query]string),
		Errors:    make(map[Query]error),
	}
	run := a.with(zap.String("report_id", rep.ID.String()))
	run.logger.Info("analysis started",
		zap.Int("vertices", rep.Graph.VertexCount),
		zap.Int("edges", rep.Graph.EdgeCount),
		zap.Int("queries", len(queries)))
	if a.opts.Metrics != nil {
		a.opts.Metrics.RecordGraph(rep.Graph.VertexCount, rep.Graph.EdgeCount)
	}

	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			rep.Errors[q] = err
			continue
		}
		if q.needsConnected() {
			if connected, ok := run.connectivity(g, rep); ok && !connected {
				rep.Skipped[q] = "graph is disconnected"
				run.skip(q, rep.Skipped[q])
				continue
			}
		}
		run.execute(ctx, g, q, rep)
	}

	rep.FinishedAt = time.Now()
	run.logger.Info("analysis finished",
		zap.Duration("elapsed", rep.Elapsed()),
		zap.Int("errors", len(rep.Errors)),
		zap.Int("skipped", len(rep.Skipped)))

	return rep, nil
}

// connectivity returns the cached connectivity answer, computing it once
// through the is_connected query. ok is false when it could not be decided.
func (a *Analyzer) connectivity(g *core.Graph, rep *Report) (connected, ok bool) {
	if rep.Connected == nil {
		if _, failed := rep.Errors[QueryIsConnected]; failed {
			return false, false
		}
		a.execute(context.Background(), g, QueryIsConnected, rep)
		if rep.Connected == nil {
			return false, false
		}
	}

	return *rep.Connected, true
}

// execute runs one query and stores its answer or error in rep.
func (a *Analyzer) execute(ctx context.Context, g *core.Graph, q Query, rep *Report) {
	var err error
	switch q {
	case QueryVertices:
		rep.Vertices = a.Vertices(g)
	case QueryNumEdges:
		n := a.NumEdges(g)
		rep.NumEdges = &n
	case QueryDegrees:
		var st props.DegreeStats
		if st, err = a.Degrees(g); err == nil {
			rep.Degrees = &st
		}
	case QueryIsConnected:
		if rep.Connected != nil {
			return
		}
		var ok bool
		if ok, err = a.IsConnected(g); err == nil {
			rep.Connected = &ok
			if !ok {
				rep.Components, _ = dfs.Components(g)
			}
		}
	case QueryRadiusDiameter:
		var r, d int
		if r, d, err = a.RadiusDiameter(g); err == nil {
			rep.Radius, rep.Diameter = &r, &d
		}
	case QueryMST:
		var res mst.Result
		if res, err = a.MST(g); err == nil {
			rep.MST = &res
		}
	case QueryShortestPath:
		if a.opts.PathFrom == "" || a.opts.PathTo == "" {
			rep.Skipped[q] = "no endpoints configured"
			a.skip(q, rep.Skipped[q])
			return
		}
		var p dijkstra.Path
		if p, err = a.ShortestPath(g, a.opts.PathFrom, a.opts.PathTo); err == nil {
			rep.ShortestPath = &p
		}
	case QueryIsComplete:
		ok := a.IsComplete(g)
		rep.Complete = &ok
	case QueryIsEulerian:
		var ok bool
		if ok, err = a.IsEulerian(g); err == nil {
			rep.Eulerian = &ok
			rep.OddVertices = props.OddVertices(g)
		}
	case QueryHasCycle:
		var (
			cycle []string
			found bool
		)
		if cycle, found, err = a.HasCycle(g); err == nil {
			rep.HasCycle, rep.CycleWitness = &found, cycle
		}
	case QueryHamiltonianCycle:
		var cycle []string
		if cycle, _, err = a.HamiltonianCycle(ctx, g); err == nil {
			rep.Hamiltonian, rep.HamiltonianRan = cycle, true
		}
	case QueryChromaticNumber:
		var res coloring.Result
		if res, err = a.ChromaticNumber(ctx, g, a.opts.ExactColoring); err == nil {
			rep.Coloring = &res
		}
	default:
		_, err = ParseQuery(string(q))
	}
	if err != nil {
		rep.Errors[q] = err
	}
}
