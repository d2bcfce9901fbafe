package handlers

import (
	"fmt"
	"os"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/services"
	"github.com/ersonp/lore-story/internal/infrastructure/parsers"
)

// SourceOptions controls how a story file is read.
type SourceOptions struct {
	Format    string // "csv", "json", "yaml", or "auto"
	Delimiter rune   // CSV field separator
}

// LoadRecords reads every record of a story file.
// Any parse failure aborts the load; no partial story is returned.
func LoadRecords(filePath string, opts SourceOptions) ([]entities.StoryRecord, error) {
	parserOpts := parsers.Options{Delimiter: opts.Delimiter}

	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath, parserOpts)
	} else {
		parser = parsers.ForFormat(opts.Format, parserOpts)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	records, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}

	return records, nil
}

// startTagOrDefault returns the engine default start tag when tag is empty.
func startTagOrDefault(tag string) string {
	if tag == "" {
		return services.DefaultStartTag
	}
	return tag
}
