// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// RecordKind classifies a story record.
type RecordKind string

// Known record kinds. Any other kind is carried through parsing and ignored by the builder.
const (
	KindSituation RecordKind = "SITUACION"
	KindOption    RecordKind = "OPCION"
)

// RecordFields is the number of positional fields a story row must carry.
const RecordFields = 4

// ErrTooFewFields is returned when a row carries fewer than RecordFields fields.
var ErrTooFewFields = errors.New("too few fields")

// StoryRecord is one parsed story row.
// For a situation the tag is the node key; for an option it is the key of the node it leads to.
type StoryRecord struct {
	Kind      RecordKind `json:"kind" yaml:"kind"`
	Tag       string     `json:"tag" yaml:"tag"`
	Text      string     `json:"text" yaml:"text"`
	LifeDelta int        `json:"life_delta" yaml:"life_delta"`
	Line      int        `json:"-" yaml:"-"` // Line number in source file (set by parser)
}

// NewStoryRecord builds a record from positional fields: kind, tag, text, life delta.
// Fields are trimmed. An unparsable life delta becomes 0; a short row is an error.
func NewStoryRecord(fields []string) (StoryRecord, error) {
	if len(fields) < RecordFields {
		return StoryRecord{}, fmt.Errorf("%w: expected %d, got %d", ErrTooFewFields, RecordFields, len(fields))
	}

	return StoryRecord{
		Kind:      RecordKind(strings.TrimSpace(fields[0])),
		Tag:       strings.TrimSpace(fields[1]),
		Text:      strings.TrimSpace(fields[2]),
		LifeDelta: ParseIntOr(fields[3], 0),
	}, nil
}

// IsSituation reports whether the record defines a node.
func (r StoryRecord) IsSituation() bool {
	return r.Kind == KindSituation
}

// IsOption reports whether the record defines a choice.
func (r StoryRecord) IsOption() bool {
	return r.Kind == KindOption
}
