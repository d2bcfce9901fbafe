package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/ports"
)

// validStoryNameRegex allows lowercase alphanumerics, hyphens and underscores.
var validStoryNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// LibraryService manages stories kept in the local story library.
type LibraryService struct {
	store ports.StoryStore
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(store ports.StoryStore) *LibraryService {
	return &LibraryService{store: store}
}

// NormalizeStoryName lowercases and trims a story name.
func NormalizeStoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Import stores records under name, replacing any story with the same name.
func (s *LibraryService) Import(ctx context.Context, name, source string, records []entities.StoryRecord) (*entities.StoredStory, error) {
	name = NormalizeStoryName(name)
	if !validStoryNameRegex.MatchString(name) {
		return nil, errors.New("invalid story name: must be lowercase alphanumeric with hyphens or underscores")
	}
	if len(records) == 0 {
		return nil, errors.New("story has no records")
	}

	story := &entities.StoredStory{
		ID:          uuid.New().String(),
		Name:        name,
		Source:      source,
		RecordCount: len(records),
		CreatedAt:   timeNow(),
	}

	if err := s.store.SaveStory(ctx, story, records); err != nil {
		return nil, fmt.Errorf("saving story: %w", err)
	}
	return story, nil
}

// Load returns the records of a stored story.
func (s *LibraryService) Load(ctx context.Context, name string) ([]entities.StoryRecord, error) {
	records, err := s.store.LoadStory(ctx, NormalizeStoryName(name))
	if err != nil {
		return nil, fmt.Errorf("loading story %q: %w", name, err)
	}
	return records, nil
}

// List returns all stored stories.
func (s *LibraryService) List(ctx context.Context) ([]entities.StoredStory, error) {
	return s.store.ListStories(ctx)
}

// Delete removes a stored story.
func (s *LibraryService) Delete(ctx context.Context, name string) error {
	if err := s.store.DeleteStory(ctx, NormalizeStoryName(name)); err != nil {
		return fmt.Errorf("deleting story %q: %w", name, err)
	}
	return nil
}
