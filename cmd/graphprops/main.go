// SPDX-License-Identifier: MIT

// Command graphprops loads an undirected graph from a file or a built-in
// fixture, runs the structural analyses on it and prints a styled report.
//
// Usage:
//
//	graphprops -predefined dijkstra-demo -from A -to Z
//	graphprops -graph roads.yaml -config graphprops.yaml -queries mst,shortest_path
//	graphprops -list
//
// Exit status is 0 on success, 1 when loading or any query failed and 2 on
// usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphprops/analyzer"
	"github.com/katalvlaran/graphprops/builder"
	"github.com/katalvlaran/graphprops/config"
	"github.com/katalvlaran/graphprops/core"
	"github.com/katalvlaran/graphprops/loader"
	"github.com/katalvlaran/graphprops/metrics"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

type cliFlags struct {
	config     string
	graph      string
	predefined string
	from, to   string
	logLevel   string
	queries    []analyzer.Query
	greedy     bool
	metricsOut string
	list       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var (
		f       cliFlags
		queries string
	)
	fs := flag.NewFlagSet("graphprops", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.graph, "graph", "", "graph file (.yaml, .yml or edge-list text)")
	fs.StringVar(&f.predefined, "predefined", "", "built-in graph name (see -list)")
	fs.StringVar(&f.from, "from", "", "shortest path source")
	fs.StringVar(&f.to, "to", "", "shortest path target")
	fs.StringVar(&f.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	fs.StringVar(&queries, "queries", "", "comma-separated queries to run (default all)")
	fs.BoolVar(&f.greedy, "greedy", false, "use greedy coloring instead of the exact search")
	fs.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics in text format to this file (overrides metrics.textfile)")
	fs.BoolVar(&f.list, "list", false, "list built-in graphs and exit")
	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if f.list {
		return f, nil
	}
	if (f.graph == "") == (f.predefined == "") {
		return f, fmt.Errorf("%w: exactly one of -graph and -predefined is required", errUsage)
	}
	if (f.from == "") != (f.to == "") {
		return f, fmt.Errorf("%w: -from and -to go together", errUsage)
	}
	for _, name := range strings.Split(queries, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		q, err := analyzer.ParseQuery(name)
		if err != nil {
			return f, fmt.Errorf("%w: %w", errUsage, err)
		}
		f.queries = append(f.queries, q)
	}

	return f, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "graphprops:", err)
		}
		return exitUsage
	}
	if f.list {
		for _, name := range builder.PredefinedNames() {
			desc, _ := builder.Describe(name)
			fmt.Fprintf(stdout, "%-14s %s\n", name, desc)
		}
		return exitOK
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(stderr, "graphprops:", err)
		return exitUsage
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(stderr, "graphprops:", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	var reg *metrics.Registry
	if cfg.Metrics.Textfile != "" {
		reg = metrics.NewRegistry()
	}

	g, subs, source, err := loadGraph(f)
	if err != nil {
		logger.Error("cannot load graph", zap.String("source", source), zap.Error(err))
		fmt.Fprintln(stderr, "graphprops:", err)
		return exitFailure
	}

	a := analyzer.New(
		analyzer.WithLogger(logger),
		analyzer.FromConfig(cfg),
		analyzer.WithMetrics(reg),
		analyzer.WithExactColoring(!f.greedy),
		analyzer.WithPathEndpoints(f.from, f.to),
	)
	a.NoteSubstitutions(subs)

	rep, err := a.Analyze(ctx, g, f.queries...)
	if err != nil {
		fmt.Fprintln(stderr, "graphprops:", err)
		return exitFailure
	}
	fmt.Fprintln(stdout, render(source, rep, subs))

	if reg != nil {
		if err := reg.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Error("cannot write metrics", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
			return exitFailure
		}
	}
	if rep.Failed() {
		return exitFailure
	}

	return exitOK
}

// loadConfig reads -config over the defaults and applies -log-level and
// -metrics-out.
func loadConfig(f cliFlags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return cfg, err
		}
	}
	if f.metricsOut != "" {
		cfg.Metrics.Textfile = f.metricsOut
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// loadGraph returns the graph named by -graph or -predefined and a label
// for the report header.
func loadGraph(f cliFlags) (*core.Graph, []loader.Substitution, string, error) {
	if f.predefined != "" {
		source := "predefined " + f.predefined
		if desc, ok := builder.Describe(f.predefined); ok {
			source += " (" + desc + ")"
		}
		g, err := builder.Predefined(f.predefined)

		return g, nil, source, err
	}
	g, subs, err := loader.Load(f.graph)

	return g, subs, f.graph, err
}
