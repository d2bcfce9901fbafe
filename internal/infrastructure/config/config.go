// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for story configuration.
	DefaultConfigDir = ".story"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultLibraryFile is the default story library database name.
	DefaultLibraryFile = "library.db"
	// DefaultStoryFile is the story played when none is given.
	DefaultStoryFile = "history.csv"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Story  StoryConfig  `yaml:"story,omitempty"`
	Engine EngineConfig `yaml:"engine,omitempty"`
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
}

// StoryConfig describes where stories are read from.
type StoryConfig struct {
	File      string `yaml:"file,omitempty" env:"STORY_FILE"`
	Format    string `yaml:"format,omitempty" env:"STORY_FORMAT"` // csv, json, yaml or auto
	Delimiter string `yaml:"delimiter,omitempty" env:"STORY_DELIMITER"`
}

// EngineConfig holds the initial play state.
type EngineConfig struct {
	StartTag         string `yaml:"start_tag,omitempty" env:"STORY_START_TAG"`
	StartLife        int    `yaml:"start_life,omitempty" env:"STORY_START_LIFE"`
	InvalidSelection int    `yaml:"invalid_selection,omitempty" env:"STORY_INVALID_SELECTION"`
}

// SQLiteConfig holds configuration for the story library database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	// When empty, LibraryPath is used.
	Path string `yaml:"path,omitempty" env:"STORY_DB_PATH"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Story: StoryConfig{
			File:      DefaultStoryFile,
			Format:    "auto",
			Delimiter: ";",
		},
		Engine: EngineConfig{
			StartTag:         "LUZ",
			StartLife:        100,
			InvalidSelection: 99,
		},
	}
}

// Load loads configuration from the .story directory in the given path.
// A missing config file is not an error; defaults and environment apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = LibraryPath(basePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if len(c.Story.Delimiter) != 1 {
		return fmt.Errorf("story delimiter must be a single byte, got %q", c.Story.Delimiter)
	}
	return nil
}

// DelimiterRune returns the configured field delimiter.
func (c *Config) DelimiterRune() rune {
	if len(c.Story.Delimiter) != 1 {
		return ';'
	}
	return rune(c.Story.Delimiter[0])
}

// ConfigDir returns the path to the .story config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// LibraryPath returns the default story library database path.
func LibraryPath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultLibraryFile)
}
