// Package parsers provides parsers for reading story records from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// DefaultDelimiter separates fields in delimited story files.
const DefaultDelimiter = ';'

// Parser defines the interface for parsing story records from various formats.
// Records are returned in source order with their line numbers set.
type Parser interface {
	Parse(r io.Reader) ([]entities.StoryRecord, error)
}

// Options tunes parser construction.
type Options struct {
	Delimiter rune // Field separator for CSV, DefaultDelimiter when zero
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "csv", "json", "yaml".
func ForFormat(format string, opts Options) Parser {
	switch strings.ToLower(format) {
	case "csv":
		return NewCSVParser(opts.Delimiter)
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string, opts Options) Parser {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "txt" {
		ext = "csv"
	}
	return ForFormat(ext, opts)
}
