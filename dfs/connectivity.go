// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphprops/core"
)

// IsConnected reports whether every vertex of g is reachable from the first
// vertex in insertion order. The empty graph is vacuously connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return true, nil
	}

	visited := make(map[string]bool, len(vertices))
	reached, err := collect(g, vertices[0], visited)
	if err != nil {
		return false, err
	}

	return len(reached) == len(vertices), nil
}

// Components returns the connected components of g. Components are ordered
// by their first vertex in insertion order; vertices inside a component are
// listed in DFS discovery order.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	visited := make(map[string]bool, len(vertices))
	var comps [][]string
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		comp, err := collect(g, v, visited)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// collect runs an iterative DFS from start, marking visited and returning
// the vertices in discovery order. Neighbors are pushed in reverse adjacency
// order so they are popped in adjacency order.
func collect(g *core.Graph, start string, visited map[string]bool) ([]string, error) {
	var out []string
	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		out = append(out, v)

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", v, err)
		}
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i].ID] {
				stack = append(stack, nbrs[i].ID)
			}
		}
	}

	return out, nil
}
