// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphprops/core"
)

var (
	// ErrInvalidDocument indicates a malformed or invalid graph document.
	ErrInvalidDocument = errors.New("loader: invalid document")

	// ErrInvalidLine indicates an edge-list line with fewer than two tokens.
	ErrInvalidLine = errors.New("loader: invalid line")
)

var validate = validator.New()

// Document is the decoded form shared by both input formats.
type Document struct {
	Vertices []string  `yaml:"vertices" validate:"dive,required"`
	Edges    []EdgeDoc `yaml:"edges" validate:"dive"`
}

// EdgeDoc is one edge entry. Weight keeps the raw YAML node so that its
// source line and text survive until the weight is parsed.
type EdgeDoc struct {
	From   string    `yaml:"from" validate:"required"`
	To     string    `yaml:"to" validate:"required"`
	Weight yaml.Node `yaml:"weight" validate:"-"`
}

// Substitution records a weight that could not be parsed and was replaced
// by core.DefaultWeight.
type Substitution struct {
	Line int    // 1-based source line, 0 when unknown
	From string // edge endpoints
	To   string
	Raw  string // the rejected text
}

func (s Substitution) String() string {
	return fmt.Sprintf("line %d: edge %s-%s: invalid weight %q, using %g", s.Line, s.From, s.To, s.Raw, core.DefaultWeight)
}

// Build validates doc and turns it into a graph with strict endpoint checks.
func Build(doc Document) (*core.Graph, []Substitution, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidDocument, formatValidationError(err))
	}

	g := core.NewGraph()
	for _, v := range doc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, nil, fmt.Errorf("loader: vertex %q: %w", v, err)
		}
	}

	var subs []Substitution
	for i, e := range doc.Edges {
		w, ok := parseWeight(e.Weight)
		if !ok {
			subs = append(subs, Substitution{Line: e.Weight.Line, From: e.From, To: e.To, Raw: rawText(e.Weight)})
		}
		if err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, nil, fmt.Errorf("loader: edge #%d %s-%s%s: %w", i+1, e.From, e.To, lineSuffix(e.Weight.Line), err)
		}
	}

	return g, subs, nil
}

// parseWeight returns the weight carried by n, or (DefaultWeight, false)
// when n is present but not a finite number. An absent node is the default
// weight and not a substitution.
func parseWeight(n yaml.Node) (float64, bool) {
	if n.Kind == 0 {
		return core.DefaultWeight, true
	}
	if n.Kind != yaml.ScalarNode {
		return core.DefaultWeight, false
	}
	w, err := strconv.ParseFloat(n.Value, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return core.DefaultWeight, false
	}

	return w, true
}

func rawText(n yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}

	return "<non-scalar>"
}

func lineSuffix(line int) string {
	if line == 0 {
		return ""
	}

	return fmt.Sprintf(" (line %d)", line)
}

// formatValidationError reports the first failing field in a short form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", e.Namespace())
		default:
			return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
		}
	}

	return err
}
