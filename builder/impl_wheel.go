// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim C_{n-1} needs at least 3 vertices
)

// Wheel returns a Constructor for W_n: the rim Cycle(n-1), then the hub
// joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(cfg.hubID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, cfg.hubID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, cfg.hubID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
