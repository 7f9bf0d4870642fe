// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}. Left vertices are
// named leftPrefix+i, right ones rightPrefix+j; all left IDs are added
// before the right ones and edges are emitted left-major.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := cfg
		left.idFn = SymbolNumberIDFn(cfg.leftPrefix)
		leftIDs, err := addVertices(g, left, methodCompleteBipartite, n1)
		if err != nil {
			return err
		}
		right := cfg
		right.idFn = SymbolNumberIDFn(cfg.rightPrefix)
		rightIDs, err := addVertices(g, right, methodCompleteBipartite, n2)
		if err != nil {
			return err
		}

		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if err = addEdge(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
