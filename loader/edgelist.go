// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphprops/core"
)

// ParseEdgeList reads the line-oriented edge format from r.
func ParseEdgeList(r io.Reader) (*core.Graph, []Substitution, error) {
	doc, err := scanEdgeList(r)
	if err != nil {
		return nil, nil, err
	}

	return Build(doc)
}

// scanEdgeList tokenizes r into a Document, keeping line numbers on weights.
func scanEdgeList(r io.Reader) (Document, error) {
	var doc Document
	sc := bufio.NewScanner(r)
	declared := false
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if isTerminator(text) {
			break
		}
		fields := strings.Fields(text)
		if !declared {
			doc.Vertices = fields
			declared = true
			continue
		}
		if len(fields) < 2 {
			return Document{}, fmt.Errorf("%w: line %d: %q: want \"u v [w]\"", ErrInvalidLine, line, text)
		}
		e := EdgeDoc{From: fields[0], To: fields[1]}
		if len(fields) >= 3 {
			e.Weight = yaml.Node{Kind: yaml.ScalarNode, Value: fields[2], Line: line}
		}
		if !slices.Contains(doc.Vertices, e.From) || !slices.Contains(doc.Vertices, e.To) {
			return Document{}, fmt.Errorf("loader: line %d: edge %s-%s: %w", line, e.From, e.To, core.ErrMissingVertex)
		}
		doc.Edges = append(doc.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return Document{}, fmt.Errorf("loader: read edge list: %w", err)
	}

	return doc, nil
}

func isTerminator(text string) bool {
	return strings.EqualFold(text, "fim") || strings.EqualFold(text, "end")
}
