package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ersonp/lore-story/internal/application/handlers"
	"github.com/ersonp/lore-story/internal/domain/services"
	"github.com/ersonp/lore-story/internal/infrastructure/config"
	"github.com/ersonp/lore-story/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	BasePath     string
	Config       *config.Config
	Logger       *log.Logger
	PlayHandler  *handlers.PlayHandler
	CheckHandler *handlers.CheckHandler
}

// libraryDeps adds the story library to Deps.
type libraryDeps struct {
	Deps
	LibraryHandler *handlers.LibraryHandler
}

// newLogger returns a stderr logger when --verbose is set, otherwise a silent one.
func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "story: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// withDeps loads config and builds dependencies, then calls the provided function.
// Stories are read from files only; the library database is not opened.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger()

	return fn(&Deps{
		BasePath:     cwd,
		Config:       cfg,
		Logger:       logger,
		PlayHandler:  handlers.NewPlayHandler(nil, logger),
		CheckHandler: handlers.NewCheckHandler(logger),
	})
}

// withLibraryDeps opens the story library and provides handlers backed by it.
// It handles cleanup automatically.
func withLibraryDeps(fn func(*libraryDeps) error) error {
	return withDeps(func(d *Deps) error {
		if err := os.MkdirAll(filepath.Dir(d.Config.SQLite.Path), 0755); err != nil {
			return fmt.Errorf("creating library directory: %w", err)
		}

		repo, err := sqlite.NewRepository(d.Config.SQLite)
		if err != nil {
			return fmt.Errorf("creating sqlite repository: %w", err)
		}
		defer repo.Close()

		// Ensure schema exists
		if err := repo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensuring sqlite schema: %w", err)
		}

		library := services.NewLibraryService(repo)
		deps := &libraryDeps{
			Deps:           *d,
			LibraryHandler: handlers.NewLibraryHandler(library, d.Logger),
		}
		deps.PlayHandler = handlers.NewPlayHandler(library, d.Logger)

		return fn(deps)
	})
}

// sourceOptions returns the story source options from config, with an optional format override.
func sourceOptions(cfg *config.Config, format string) handlers.SourceOptions {
	if format == "" {
		format = cfg.Story.Format
	}
	return handlers.SourceOptions{
		Format:    format,
		Delimiter: cfg.DelimiterRune(),
	}
}
