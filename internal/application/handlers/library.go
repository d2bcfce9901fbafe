package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/services"
)

// LibraryHandler handles importing and managing stored stories.
type LibraryHandler struct {
	library *services.LibraryService
	logger  *log.Logger
}

// NewLibraryHandler creates a new library handler.
func NewLibraryHandler(library *services.LibraryService, logger *log.Logger) *LibraryHandler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LibraryHandler{
		library: library,
		logger:  logger,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Name     string // Library name, defaults to the file name without extension
	Source   SourceOptions
	StartTag string // Used for the lint report only
}

// ImportResult contains the result of an import.
type ImportResult struct {
	Story  *entities.StoredStory
	Report services.LintReport
}

// Import parses a story file and stores it in the library.
// Lint warnings are reported but never block the import.
func (h *LibraryHandler) Import(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	records, err := LoadRecords(filePath, opts.Source)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	story, err := h.library.Import(ctx, name, filePath, records)
	if err != nil {
		return nil, fmt.Errorf("importing story: %w", err)
	}
	h.logger.Printf("imported %s as %q (%d records)", filePath, story.Name, story.RecordCount)

	return &ImportResult{
		Story:  story,
		Report: services.Lint(records, startTagOrDefault(opts.StartTag)),
	}, nil
}

// List returns all stored stories.
func (h *LibraryHandler) List(ctx context.Context) ([]entities.StoredStory, error) {
	stories, err := h.library.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	return stories, nil
}

// Delete removes a stored story.
func (h *LibraryHandler) Delete(ctx context.Context, name string) error {
	return h.library.Delete(ctx, name)
}
