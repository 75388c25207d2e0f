// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/word2md/pkg/types"
)

const outlineFile = "outline.yaml"

// BuildOutline collects the heading items in order, with levels as rendered.
func BuildOutline(source string, items []types.Item) types.Outline {
	o := types.Outline{Source: source, Sections: []types.OutlineEntry{}}
	for _, it := range items {
		if it.Kind != types.ItemHeading {
			continue
		}
		o.Sections = append(o.Sections, types.OutlineEntry{
			Level: it.HeadingLevel(),
			Title: it.Text,
		})
	}
	return o
}

// WriteOutline writes o to path as YAML.
func WriteOutline(path string, o types.Outline) error {
	data, err := yaml.Marshal(&o)
	if err != nil {
		return fmt.Errorf("marshaling outline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
