// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star on n vertices: the hub (WithHubID,
// default "Center") is added first, then n-1 leaves named by the ID scheme,
// each joined to the hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(cfg.hubID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, cfg.hubID, err)
		}
		leaves, err := addVertices(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, methodStar, cfg.hubID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
