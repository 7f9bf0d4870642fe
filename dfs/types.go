// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/graphprops/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// frame is one level of the explicit DFS stack.
type frame struct {
	id        string          // vertex being expanded
	enterEdge int             // edge index used to reach id; -1 for a root
	nbrs      []core.Neighbor // adjacency of id, fetched once on push
	next      int             // next position in nbrs to inspect
}
