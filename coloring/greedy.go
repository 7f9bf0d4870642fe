// SPDX-License-Identifier: MIT

package coloring

import "github.com/katalvlaran/graphprops/core"

// Greedy colors g in one pass over the vertices in insertion order.
// Complexity: O(V + E) time, O(V) space.
func Greedy(g *core.Graph) Result {
	ix := core.NewIndex(g)
	colors, used := greedyIndex(ix)

	return result(ix, colors, used, false)
}

// greedyIndex returns per-position colors and the number of colors used.
func greedyIndex(ix *core.Index) ([]int, int) {
	n := ix.Len()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	taken := make([]bool, n+1)
	used := 0
	for v := 0; v < n; v++ {
		for _, u := range ix.Adj[v] {
			if colors[u] >= 0 {
				taken[colors[u]] = true
			}
		}
		c := 0
		for taken[c] {
			c++
		}
		colors[v] = c
		if c+1 > used {
			used = c + 1
		}
		for _, u := range ix.Adj[v] {
			if colors[u] >= 0 {
				taken[colors[u]] = false
			}
		}
	}

	return colors, used
}

func result(ix *core.Index, colors []int, used int, exact bool) Result {
	res := Result{Colors: used, Assignment: make(map[string]int, len(colors)), Exact: exact}
	for i, c := range colors {
		res.Assignment[ix.IDs[i]] = c
	}

	return res
}
