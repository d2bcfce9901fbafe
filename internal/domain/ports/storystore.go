package ports

import (
	"context"
	"errors"

	"github.com/ersonp/lore-story/internal/domain/entities"
)

// ErrStoryNotFound is returned when a named story is not in the library.
var ErrStoryNotFound = errors.New("story not found")

// StoryStore keeps parsed stories so they can be played without the source file.
// Only story content is stored; play state never is.
type StoryStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error

	// SaveStory stores records under story.Name, replacing any previous story of that name.
	SaveStory(ctx context.Context, story *entities.StoredStory, records []entities.StoryRecord) error

	// FindStory returns the story metadata, or nil if not found.
	FindStory(ctx context.Context, name string) (*entities.StoredStory, error)

	// LoadStory returns the records of a story in their original order.
	// Returns ErrStoryNotFound if the story does not exist.
	LoadStory(ctx context.Context, name string) ([]entities.StoryRecord, error)

	// ListStories lists all stories ordered by name.
	ListStories(ctx context.Context) ([]entities.StoredStory, error)

	// DeleteStory removes a story and its records.
	// Returns ErrStoryNotFound if the story does not exist.
	DeleteStory(ctx context.Context, name string) error
}
