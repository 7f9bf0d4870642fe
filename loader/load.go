// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphprops/core"
)

// Load reads path as YAML when its extension is .yaml or .yml and as an
// edge list otherwise.
func Load(path string) (*core.Graph, []Substitution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseEdgeList(f)
	}
}
