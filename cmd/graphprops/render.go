// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphprops/analyzer"
	"github.com/katalvlaran/graphprops/loader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	resultsStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))
)

// render formats rep as a titled header followed by a bordered box with
// one line per query in execution order.
func render(source string, rep *analyzer.Report, subs []loader.Substitution) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("graphprops report"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("source: %s\nreport: %s\ngraph:  %d vertices, %d edges (%d parallel, %d isolated)",
		source, rep.ID, rep.Graph.VertexCount, rep.Graph.EdgeCount,
		rep.Graph.ParallelEdges, rep.Graph.IsolatedVertices)))
	s.WriteString("\n")

	for _, sub := range subs {
		s.WriteString(skipStyle.Render("warning: " + sub.String()))
		s.WriteString("\n")
	}

	lines := make([]string, 0, len(rep.Queries))
	for _, q := range rep.Queries {
		lines = append(lines, renderQuery(rep, q))
	}
	s.WriteString(resultsStyle.Render(strings.Join(lines, "\n")))
	s.WriteString("\n")

	summary := fmt.Sprintf("%d queries in %s", len(rep.Queries), rep.Elapsed().Round(time.Microsecond))
	if rep.Failed() {
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s, %d failed", summary, len(rep.Errors))))
	} else {
		s.WriteString(successStyle.Render("✓ " + summary))
	}

	return s.String()
}

func renderQuery(rep *analyzer.Report, q analyzer.Query) string {
	label := labelStyle.Render(string(q) + ":")
	if err, ok := rep.Errors[q]; ok {
		return label + " " + errorStyle.Render("error: "+err.Error())
	}
	if reason, ok := rep.Skipped[q]; ok {
		return label + " " + skipStyle.Render("skipped ("+reason+")")
	}

	return label + " " + answer(rep, q)
}

// answer formats the stored result of a successful query.
func answer(rep *analyzer.Report, q analyzer.Query) string {
	switch q {
	case analyzer.QueryVertices:
		return strings.Join(rep.Vertices, " ")
	case analyzer.QueryNumEdges:
		return fmt.Sprint(*rep.NumEdges)
	case analyzer.QueryDegrees:
		parts := make([]string, 0, len(rep.Degrees.PerVertex))
		for _, v := range vertexOrder(rep) {
			if d, ok := rep.Degrees.PerVertex[v]; ok {
				parts = append(parts, fmt.Sprintf("%s=%d", v, d))
			}
		}
		return fmt.Sprintf("max %d, min %d [%s]", rep.Degrees.Max, rep.Degrees.Min, strings.Join(parts, " "))
	case analyzer.QueryIsConnected:
		if *rep.Connected {
			return "yes"
		}
		comps := make([]string, len(rep.Components))
		for i, c := range rep.Components {
			comps[i] = "{" + strings.Join(c, " ") + "}"
		}
		return fmt.Sprintf("no, %d components %s", len(rep.Components), strings.Join(comps, " "))
	case analyzer.QueryRadiusDiameter:
		return fmt.Sprintf("radius %d, diameter %d", *rep.Radius, *rep.Diameter)
	case analyzer.QueryMST:
		edges := make([]string, len(rep.MST.Edges))
		for i, e := range rep.MST.Edges {
			edges[i] = fmt.Sprintf("%s-%s(%g)", e.From, e.To, e.Weight)
		}
		return fmt.Sprintf("weight %g, components %d [%s]", rep.MST.Weight, rep.MST.Components, strings.Join(edges, " "))
	case analyzer.QueryShortestPath:
		p := rep.ShortestPath
		if !p.Reachable() {
			return fmt.Sprintf("%s -> %s unreachable", rep.PathFrom, rep.PathTo)
		}
		return fmt.Sprintf("%s (weight %g, %d hops)", strings.Join(p.Vertices, " "), p.Weight, p.Hops())
	case analyzer.QueryIsComplete:
		return yesNo(*rep.Complete)
	case analyzer.QueryIsEulerian:
		if *rep.Eulerian || len(rep.OddVertices) == 0 {
			return yesNo(*rep.Eulerian)
		}
		return "no, odd vertices " + strings.Join(rep.OddVertices, " ")
	case analyzer.QueryHasCycle:
		if !*rep.HasCycle {
			return "no"
		}
		return "yes " + strings.Join(rep.CycleWitness, " ")
	case analyzer.QueryHamiltonianCycle:
		if len(rep.Hamiltonian) == 0 {
			return "none"
		}
		return strings.Join(rep.Hamiltonian, " ")
	case analyzer.QueryChromaticNumber:
		kind := "exact"
		if !rep.Coloring.Exact {
			kind = "greedy upper bound"
		}
		return fmt.Sprintf("%d (%s)", rep.Coloring.Colors, kind)
	}

	return "?"
}

// vertexOrder prefers the insertion order captured by the vertices query.
func vertexOrder(rep *analyzer.Report) []string {
	if len(rep.Vertices) > 0 {
		return rep.Vertices
	}
	out := make([]string, 0, len(rep.Degrees.PerVertex))
	for v := range rep.Degrees.PerVertex {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
