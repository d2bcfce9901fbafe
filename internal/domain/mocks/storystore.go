package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/ports"
)

// StoryStore is a mock implementation of ports.StoryStore.
type StoryStore struct {
	Stories map[string]*entities.StoredStory
	Records map[string][]entities.StoryRecord
	Err     error

	// Call tracking
	SaveStoryCallCount int
}

// NewStoryStore creates a new mock StoryStore.
func NewStoryStore() *StoryStore {
	return &StoryStore{
		Stories: make(map[string]*entities.StoredStory),
		Records: make(map[string][]entities.StoryRecord),
	}
}

// EnsureSchema returns the configured error.
func (m *StoryStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close does nothing.
func (m *StoryStore) Close() error {
	return nil
}

// SaveStory stores the story in memory.
func (m *StoryStore) SaveStory(_ context.Context, story *entities.StoredStory, records []entities.StoryRecord) error {
	m.SaveStoryCallCount++
	if m.Err != nil {
		return m.Err
	}
	stored := *story
	stored.RecordCount = len(records)
	m.Stories[story.Name] = &stored
	m.Records[story.Name] = append([]entities.StoryRecord(nil), records...)
	return nil
}

// FindStory returns the stored metadata or nil.
func (m *StoryStore) FindStory(_ context.Context, name string) (*entities.StoredStory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Stories[name], nil
}

// LoadStory returns the stored records.
func (m *StoryStore) LoadStory(_ context.Context, name string) ([]entities.StoryRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	records, ok := m.Records[name]
	if !ok {
		return nil, ports.ErrStoryNotFound
	}
	return records, nil
}

// ListStories returns all stories sorted by name.
func (m *StoryStore) ListStories(_ context.Context) ([]entities.StoredStory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.StoredStory, 0, len(m.Stories))
	for _, s := range m.Stories {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// DeleteStory removes a story.
func (m *StoryStore) DeleteStory(_ context.Context, name string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Stories[name]; !ok {
		return ports.ErrStoryNotFound
	}
	delete(m.Stories, name)
	delete(m.Records, name)
	return nil
}
