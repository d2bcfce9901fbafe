package entities

import "time"

// StoredStory describes a story kept in the local story library.
type StoredStory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"` // Path the story was imported from
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}
