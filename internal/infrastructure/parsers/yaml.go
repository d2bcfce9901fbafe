package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// YAMLParser parses story records from a YAML sequence of mappings.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed records.
// Scalars are taken as written, so a tag like 007 is not turned into a number.
func (p *YAMLParser) Parse(r io.Reader) ([]entities.StoryRecord, error) {
	var items []map[string]yaml.Node

	if err := yaml.NewDecoder(r).Decode(&items); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	fields := make([]map[string]string, 0, len(items))
	for _, item := range items {
		m := make(map[string]string, len(item))
		for k, node := range item {
			m[k] = scalarValue(node)
		}
		fields = append(fields, m)
	}

	return recordsFromMaps(fields)
}

// scalarValue returns the source text of a scalar node. Null and non-scalar
// values are empty.
func scalarValue(node yaml.Node) string {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}
