// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// HasCycle reports whether g contains a cycle in any component.
func HasCycle(g *core.Graph) (bool, error) {
	_, found, err := FindCycle(g)

	return found, err
}

// FindCycle returns the first cycle met by a DFS that starts from every
// unvisited vertex in insertion order. The cycle is closed: its first and
// last elements are equal. A pair of parallel edges yields [u, v, u].
//
// Returns (nil, false, nil) for forests, including the empty graph.
func FindCycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	vertices := g.Vertices()
	state := make(map[string]int, len(vertices))
	for _, root := range vertices {
		if state[root] != White {
			continue
		}
		cycle, err := walk(g, root, state)
		if err != nil {
			return nil, false, err
		}
		if cycle != nil {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// walk explores root's component with an explicit frame stack. It returns
// the closed cycle on the first back-edge, or nil when the component is a tree.
func walk(g *core.Graph, root string, state map[string]int) ([]string, error) {
	var stack []frame
	push := func(id string, enterEdge int) error {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		state[id] = Gray
		stack = append(stack, frame{id: id, enterEdge: enterEdge, nbrs: nbrs})

		return nil
	}
	if err := push(root, -1); err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			// All edges inspected: pop and finish.
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		nb := top.nbrs[top.next]
		top.next++
		if nb.Edge == top.enterEdge {
			continue // the tree edge we arrived by
		}

		switch state[nb.ID] {
		case White:
			if err := push(nb.ID, nb.Edge); err != nil {
				return nil, err
			}
		case Gray:
			return closeCycle(stack, nb.ID), nil
		}
		// Black neighbors cannot occur through a non-tree edge in an
		// undirected DFS: that edge would have been seen from the Black side.
	}

	return nil, nil
}

// closeCycle extracts the stack segment from target to the top and closes it.
func closeCycle(stack []frame, target string) []string {
	idx := len(stack) - 1
	for idx >= 0 && stack[idx].id != target {
		idx--
	}
	cycle := make([]string, 0, len(stack)-idx+1)
	for _, f := range stack[idx:] {
		cycle = append(cycle, f.id)
	}

	return append(cycle, target)
}
