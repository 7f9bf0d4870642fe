// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphprops/core"
)

// ParseYAML decodes a YAML graph document from r. Unknown keys are rejected.
// An empty input yields an empty graph.
func ParseYAML(r io.Reader) (*core.Graph, []Substitution, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return Build(doc)
}
