// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for analysis queries.
//
// Every Registry owns a private prometheus.Registry, so independent
// analyzers and tests never share global state.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query status label values.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Registry holds the analyzer instruments.
type Registry struct {
	registry *prometheus.Registry

	QueriesTotal         *prometheus.CounterVec   // {query, status}
	QueryDuration        *prometheus.HistogramVec // {query}
	SearchAbortsTotal    *prometheus.CounterVec   // {query}
	GreedyFallbacksTotal prometheus.Counter
	SubstitutionsTotal   prometheus.Counter
	GraphVertices        prometheus.Gauge
	GraphEdges           prometheus.Gauge
}

// NewRegistry creates a registry with every instrument registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initQueryMetrics()
	r.initGraphMetrics()

	return r
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphprops_queries_total",
			Help: "Total number of analysis queries executed",
		},
		[]string{"query", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphprops_query_duration_seconds",
			Help:    "Analysis query duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"query"},
	)

	r.SearchAbortsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphprops_search_aborts_total",
			Help: "Exponential searches stopped by timeout or cancellation",
		},
		[]string{"query"},
	)

	r.GreedyFallbacksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphprops_greedy_coloring_fallbacks_total",
			Help: "Exact coloring requests answered greedily because the graph exceeded the size limit",
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.SubstitutionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphprops_weight_substitutions_total",
			Help: "Unparsable edge weights replaced by the default weight while loading",
		},
	)

	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphprops_graph_vertices",
			Help: "Vertex count of the most recently analyzed graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphprops_graph_edges",
			Help: "Edge count of the most recently analyzed graph",
		},
	)
}

// RecordQuery records one query execution.
func (r *Registry) RecordQuery(query, status string, d time.Duration) {
	r.QueriesTotal.WithLabelValues(query, status).Inc()
	if status != StatusSkipped {
		r.QueryDuration.WithLabelValues(query).Observe(d.Seconds())
	}
}

// RecordAbort counts a search stopped by its context.
func (r *Registry) RecordAbort(query string) {
	r.SearchAbortsTotal.WithLabelValues(query).Inc()
}

// RecordFallback counts a greedy answer to an exact coloring request.
func (r *Registry) RecordFallback() {
	r.GreedyFallbacksTotal.Inc()
}

// RecordSubstitutions adds n weight substitutions.
func (r *Registry) RecordSubstitutions(n int) {
	r.SubstitutionsTotal.Add(float64(n))
}

// RecordGraph sets the size gauges.
func (r *Registry) RecordGraph(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// Gatherer returns the underlying registry for exposition.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics in text exposition format to path.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
