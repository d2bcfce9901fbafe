package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "history.csv", cfg.Story.File)
	assert.Equal(t, "auto", cfg.Story.Format)
	assert.Equal(t, ";", cfg.Story.Delimiter)
	assert.Equal(t, "LUZ", cfg.Engine.StartTag)
	assert.Equal(t, 100, cfg.Engine.StartLife)
	assert.Equal(t, 99, cfg.Engine.InvalidSelection)
	assert.Equal(t, ';', cfg.DelimiterRune())
}

func TestLoad_NoConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "LUZ", cfg.Engine.StartTag)
	assert.Equal(t, filepath.Join(tmpDir, ".story", "library.db"), cfg.SQLite.Path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `story:
  file: tale.json
engine:
  start_tag: INICIO
`)

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "tale.json", cfg.Story.File)
	assert.Equal(t, ";", cfg.Story.Delimiter)
	assert.Equal(t, "INICIO", cfg.Engine.StartTag)
	assert.Equal(t, 100, cfg.Engine.StartLife)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "engine:\n  start_tag: INICIO\n  start_life: 50\n")
	t.Setenv("STORY_START_LIFE", "30")
	t.Setenv("STORY_DB_PATH", "/tmp/other.db")

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "INICIO", cfg.Engine.StartTag)
	assert.Equal(t, 30, cfg.Engine.StartLife)
	assert.Equal(t, "/tmp/other.db", cfg.SQLite.Path)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		errMsg  string
	}{
		{name: "invalid yaml", content: "engine: [", errMsg: "parsing config file"},
		{name: "long delimiter", content: "story:\n  delimiter: \";;\"\n", errMsg: "single byte"},
		{name: "bad env number", content: "", env: map[string]string{"STORY_START_LIFE": "many"}, errMsg: "parsing environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.content)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tmpDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, Default().Story, cfg.Story)
	assert.Equal(t, Default().Engine, cfg.Engine)

	err = WriteDefault(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoad_NonPositiveStartLife(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "engine:\n  start_life: -5\n")

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, -5, cfg.Engine.StartLife)

	t.Setenv("STORY_START_LIFE", "0")

	cfg, err = Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Engine.StartLife)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/user/project/.story", ConfigDir("/home/user/project"))
	assert.Equal(t, "/home/user/project/.story/config.yaml", ConfigFilePath("/home/user/project"))
	assert.Equal(t, "/home/user/project/.story/library.db", LibraryPath("/home/user/project"))
}

func writeConfig(t *testing.T, basePath, content string) {
	t.Helper()
	dir := filepath.Join(basePath, DefaultConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0600))
}
