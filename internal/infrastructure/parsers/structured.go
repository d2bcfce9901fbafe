package parsers

import (
	"fmt"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// requiredKeys are the keys every structured record must carry.
var requiredKeys = []string{"kind", "tag", "text"}

// recordsFromMaps converts decoded JSON or YAML objects, with every value
// kept as its source text, into story records.
// A missing life_delta is allowed and counts as 0.
func recordsFromMaps(items []map[string]string) ([]entities.StoryRecord, error) {
	records := make([]entities.StoryRecord, 0, len(items))
	for i, item := range items {
		for _, key := range requiredKeys {
			if _, ok := item[key]; !ok {
				return nil, fmt.Errorf("record %d: %w: missing %q", i+1, entities.ErrTooFewFields, key)
			}
		}

		rec, err := entities.NewStoryRecord([]string{
			item["kind"],
			item["tag"],
			item["text"],
			item["life_delta"],
		})
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		rec.Line = i + 1
		records = append(records, rec)
	}
	return records, nil
}

// stringValue renders a decoded JSON scalar as text.
// Numbers must be decoded as json.Number so their source digits survive.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
