package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// JSONParser parses story records from a JSON array of objects.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed records.
func (p *JSONParser) Parse(r io.Reader) ([]entities.StoryRecord, error) {
	var items []map[string]any

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	fields := make([]map[string]string, 0, len(items))
	for _, item := range items {
		m := make(map[string]string, len(item))
		for k, v := range item {
			m[k] = stringValue(v)
		}
		fields = append(fields, m)
	}

	return recordsFromMaps(fields)
}
