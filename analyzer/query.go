// SPDX-License-Identifier: MIT

package analyzer

import (
	"errors"
	"fmt"
)

// Query names one analysis.
type Query string

// Supported queries.
const (
	QueryVertices         Query = "vertices"
	QueryNumEdges         Query = "num_edges"
	QueryDegrees          Query = "degrees"
	QueryIsConnected      Query = "is_connected"
	QueryRadiusDiameter   Query = "radius_diameter"
	QueryMST              Query = "mst"
	QueryShortestPath     Query = "shortest_path"
	QueryIsComplete       Query = "is_complete"
	QueryIsEulerian       Query = "is_eulerian"
	QueryHasCycle         Query = "has_cycle"
	QueryHamiltonianCycle Query = "hamiltonian_cycle"
	QueryChromaticNumber  Query = "chromatic_number"
)

// ErrUnknownQuery indicates that ParseQuery received an unsupported name.
var ErrUnknownQuery = errors.New("analyzer: unknown query")

// ErrNilGraph indicates that a nil *core.Graph was passed to Analyze.
var ErrNilGraph = errors.New("analyzer: graph is nil")

var allQueries = []Query{
	QueryVertices, QueryNumEdges, QueryDegrees, QueryIsConnected,
	QueryRadiusDiameter, QueryMST, QueryShortestPath, QueryIsComplete,
	QueryIsEulerian, QueryHasCycle, QueryHamiltonianCycle, QueryChromaticNumber,
}

// AllQueries returns every query in report order.
func AllQueries() []Query {
	out := make([]Query, len(allQueries))
	copy(out, allQueries)

	return out
}

// ParseQuery validates a query name.
func ParseQuery(s string) (Query, error) {
	for _, q := range allQueries {
		if string(q) == s {
			return q, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownQuery, s)
}

// needsConnected reports whether q is skipped on disconnected graphs.
func (q Query) needsConnected() bool {
	return q == QueryRadiusDiameter || q == QueryHamiltonianCycle
}
