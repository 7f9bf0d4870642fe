// SPDX-License-Identifier: MIT

package analyzer

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphprops/config"
	"github.com/katalvlaran/graphprops/metrics"
)

// Options configures an Analyzer.
type Options struct {
	Logger  *zap.Logger       // default zap.NewNop()
	Metrics *metrics.Registry // nil disables metrics

	// ExactColoringLimit is the largest vertex count for an exact
	// chromatic number; 0 means always exact.
	ExactColoringLimit int

	// ExactColoring selects exact (true) or greedy coloring in Analyze.
	ExactColoring bool

	// HamiltonTimeout bounds the Hamiltonian search; 0 means no bound.
	HamiltonTimeout time.Duration

	// PathFrom and PathTo are the shortest_path endpoints used by Analyze.
	PathFrom, PathTo string
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return Options{
		Logger:             zap.NewNop(),
		ExactColoringLimit: config.DefaultExactColoringMaxVertices,
		ExactColoring:      true,
		HamiltonTimeout:    config.DefaultHamiltonianTimeout,
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables metric recording into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithExactColoringLimit sets the exact coloring size limit (0 = no limit).
// Panics on a negative limit.
func WithExactColoringLimit(n int) Option {
	if n < 0 {
		panic("analyzer: WithExactColoringLimit(n<0)")
	}

	return func(o *Options) { o.ExactColoringLimit = n }
}

// WithExactColoring chooses exact or greedy coloring for Analyze.
func WithExactColoring(exact bool) Option {
	return func(o *Options) { o.ExactColoring = exact }
}

// WithHamiltonTimeout bounds the Hamiltonian search (0 = unbounded).
// Panics on a negative duration.
func WithHamiltonTimeout(d time.Duration) Option {
	if d < 0 {
		panic("analyzer: WithHamiltonTimeout(d<0)")
	}

	return func(o *Options) { o.HamiltonTimeout = d }
}

// WithPathEndpoints sets the shortest_path endpoints used by Analyze.
func WithPathEndpoints(from, to string) Option {
	return func(o *Options) { o.PathFrom, o.PathTo = from, to }
}

// FromConfig applies the engine section of cfg.
func FromConfig(cfg config.Config) Option {
	return func(o *Options) {
		o.ExactColoringLimit = cfg.Engine.ExactColoringMaxVertices
		o.HamiltonTimeout = cfg.Engine.HamiltonianTimeout.Std()
	}
}
