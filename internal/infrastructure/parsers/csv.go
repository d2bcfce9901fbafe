package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// CSVParser parses delimited story rows: kind, tag, text, life delta.
// There is no header row; the first row is data.
type CSVParser struct {
	delimiter rune
}

// NewCSVParser creates a parser for the given field delimiter.
func NewCSVParser(delimiter rune) *CSVParser {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVParser{delimiter: delimiter}
}

// Parse reads all rows. Any row with fewer than four fields fails the whole parse.
func (p *CSVParser) Parse(r io.Reader) ([]entities.StoryRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []entities.StoryRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}

		lineNum, _ := reader.FieldPos(0)
		rec, err := entities.NewStoryRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rec.Line = lineNum
		records = append(records, rec)
	}

	return records, nil
}
