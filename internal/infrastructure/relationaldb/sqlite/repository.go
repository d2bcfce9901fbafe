// Package sqlite provides a SQLite implementation of the StoryStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/ports"
	"github.com/ersonp/lore-story/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// Repository implements ports.StoryStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Records are removed with their story
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Stories (one per imported source)
	CREATE TABLE IF NOT EXISTS stories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		source TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Story records in source order
	CREATE TABLE IF NOT EXISTS story_records (
		id TEXT PRIMARY KEY,
		story_id TEXT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		kind TEXT NOT NULL,
		tag TEXT NOT NULL,
		text TEXT NOT NULL,
		life_delta INTEGER NOT NULL DEFAULT 0,
		line INTEGER NOT NULL DEFAULT 0,
		UNIQUE(story_id, position)
	);
	CREATE INDEX IF NOT EXISTS idx_story_records_story ON story_records(story_id);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveStory stores records under story.Name, replacing any previous story of that name.
func (r *Repository) SaveStory(ctx context.Context, story *entities.StoredStory, records []entities.StoryRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM stories WHERE name = ?`, story.Name); err != nil {
		return fmt.Errorf("replacing story: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO stories (id, name, source, created_at) VALUES (?, ?, ?, ?)`,
		story.ID, story.Name, story.Source, story.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving story: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO story_records (id, story_id, position, kind, tag, text, life_delta, line)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.ExecContext(ctx,
			generateUUID(), story.ID, i, string(rec.Kind), rec.Tag, rec.Text, rec.LifeDelta, rec.Line,
		)
		if err != nil {
			return fmt.Errorf("saving record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing story: %w", err)
	}
	story.RecordCount = len(records)
	return nil
}

// FindStory returns the story metadata, or nil if not found.
func (r *Repository) FindStory(ctx context.Context, name string) (*entities.StoredStory, error) {
	query := `
		SELECT s.id, s.name, COALESCE(s.source, ''), s.created_at, COUNT(rec.id)
		FROM stories s
		LEFT JOIN story_records rec ON rec.story_id = s.id
		WHERE s.name = ?
		GROUP BY s.id
	`
	row := r.db.QueryRowContext(ctx, query, name)

	story, err := scanStory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning story: %w", err)
	}
	return story, nil
}

// LoadStory returns the records of a story in their original order.
func (r *Repository) LoadStory(ctx context.Context, name string) ([]entities.StoryRecord, error) {
	story, err := r.FindStory(ctx, name)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ports.ErrStoryNotFound
	}

	query := `
		SELECT kind, tag, text, life_delta, line
		FROM story_records
		WHERE story_id = ?
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, story.ID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]entities.StoryRecord, 0, story.RecordCount)
	for rows.Next() {
		var rec entities.StoryRecord
		var kind string
		if err := rows.Scan(&kind, &rec.Tag, &rec.Text, &rec.LifeDelta, &rec.Line); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec.Kind = entities.RecordKind(kind)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// ListStories lists all stories ordered by name.
func (r *Repository) ListStories(ctx context.Context) ([]entities.StoredStory, error) {
	query := `
		SELECT s.id, s.name, COALESCE(s.source, ''), s.created_at, COUNT(rec.id)
		FROM stories s
		LEFT JOIN story_records rec ON rec.story_id = s.id
		GROUP BY s.id
		ORDER BY s.name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stories: %w", err)
	}
	defer rows.Close()

	var stories []entities.StoredStory
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning story: %w", err)
		}
		stories = append(stories, *story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stories: %w", err)
	}
	return stories, nil
}

// DeleteStory removes a story and its records.
func (r *Repository) DeleteStory(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting story: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return ports.ErrStoryNotFound
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStory(s scanner) (*entities.StoredStory, error) {
	var story entities.StoredStory
	err := s.Scan(
		&story.ID,
		&story.Name,
		&story.Source,
		&story.CreatedAt,
		&story.RecordCount,
	)
	if err != nil {
		return nil, err
	}
	return &story, nil
}
