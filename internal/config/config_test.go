package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "date", cfg.DefaultSort)
	assert.Empty(t, cfg.DataDir)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "data_dir = \"/tmp/deck\"\ntheme = \"neon\"\ndefault_sort = \"priority\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/deck", cfg.DataDir)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "priority", cfg.DefaultSort)
}

func TestLoadMalformedFileErrsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = ["), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, "classic", cfg.Theme)
}

func TestDataPathHonorsOverride(t *testing.T) {
	cfg := Config{DataDir: "/var/data"}
	p, err := cfg.DataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/data", "tasks.json"), p)
}

func TestDataPathDefault(t *testing.T) {
	p, err := Config{}.DataPath()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".taskdeck", "tasks.json"), p)
}
