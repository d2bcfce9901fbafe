package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/ports"
	"github.com/ersonp/lore-story/internal/domain/services"
)

// PlayHandler loads a story and plays it through a console.
type PlayHandler struct {
	library *services.LibraryService
	logger  *log.Logger
}

// NewPlayHandler creates a new play handler.
// library may be nil when stories are only played from files.
func NewPlayHandler(library *services.LibraryService, logger *log.Logger) *PlayHandler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &PlayHandler{
		library: library,
		logger:  logger,
	}
}

// PlayOptions controls a play session.
type PlayOptions struct {
	File    string // Story file, used when Story is empty
	Source  SourceOptions
	Story   string // Name of a story in the library
	Engine  services.EngineOptions
	DumpTag string // Node to return for inspection after the session
}

// PlayResult contains the result of a play session.
type PlayResult struct {
	Outcome entities.Outcome
	Dump    *entities.StoryNode
}

// Handle builds the story graph and runs the engine until the session ends.
func (h *PlayHandler) Handle(ctx context.Context, opts PlayOptions, console ports.Console) (*PlayResult, error) {
	records, source, err := h.loadRecords(ctx, opts)
	if err != nil {
		return nil, err
	}

	graph := services.BuildGraph(records)
	h.logger.Printf("loaded %s: %d records, %d situations, %d options", source, len(records), len(graph), graph.OptionCount())

	engine := services.NewEngine(graph, opts.Engine)
	outcome, err := engine.Run(ctx, console)
	if err != nil {
		return nil, fmt.Errorf("playing story: %w", err)
	}
	h.logger.Printf("session ended: %s at %q with life %d after %d turns",
		outcome.Reason, outcome.State.Tag, outcome.State.Life, outcome.Turns)

	result := &PlayResult{Outcome: outcome}
	if opts.DumpTag != "" {
		if node, ok := graph.Lookup(opts.DumpTag); ok {
			result.Dump = &node
		}
	}
	return result, nil
}

func (h *PlayHandler) loadRecords(ctx context.Context, opts PlayOptions) ([]entities.StoryRecord, string, error) {
	if opts.Story == "" {
		if opts.File == "" {
			return nil, "", errors.New("no story file given (pass a file or set story.file in config)")
		}
		records, err := LoadRecords(opts.File, opts.Source)
		return records, opts.File, err
	}

	if h.library == nil {
		return nil, "", errors.New("story library is not available")
	}
	records, err := h.library.Load(ctx, opts.Story)
	return records, "library story " + opts.Story, err
}
