// SPDX-License-Identifier: MIT

// Package analyzer is the engine facade: one Analyzer runs any subset of
// the graph queries, logs them through zap, records Prometheus metrics and
// assembles a Report.
//
// Queries mirror the engine surface:
//
//	vertices, num_edges, degrees, is_connected, radius_diameter, mst,
//	shortest_path, is_complete, is_eulerian, has_cycle,
//	hamiltonian_cycle, chromatic_number
//
// Each Analyzer method runs one query and returns its typed result. Analyze
// runs a list of queries (all of them when none is given) and never stops
// at the first failure: every error is recorded in Report.Errors against
// its query. Queries that need a connected graph (radius_diameter,
// hamiltonian_cycle) are skipped on disconnected input with a note in
// Report.Skipped, as is shortest_path when no endpoints were configured.
//
// The Analyzer holds configuration only. It never mutates the graph and
// keeps no per-call state, so one Analyzer may serve concurrent callers
// on graphs that are not being mutated.
package analyzer
