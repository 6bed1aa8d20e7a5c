package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	appDirName     = ".taskdeck"
	configFileName = "config.toml"
	dataFileName   = "tasks.json"
)

// Config holds the optional settings read from ~/.taskdeck/config.toml.
// Every field has a working default; the file may be absent entirely.
type Config struct {
	// DataDir overrides where the task data file lives.
	DataDir string `toml:"data_dir"`
	// Theme selects the CLI color theme (classic, neon, mono).
	Theme string `toml:"theme"`
	// DefaultSort is used when no sort preference has been persisted yet
	// (date, priority, alpha).
	DefaultSort string `toml:"default_sort"`
}

func defaults() Config {
	return Config{Theme: "classic", DefaultSort: "date"}
}

func appDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// DefaultPath is where Load looks when no -config flag is given.
func DefaultPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error the caller can report and ignore.
func Load(path string) (Config, error) {
	cfg := defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return defaults(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = "classic"
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "date"
	}
	return cfg, nil
}

// DataPath resolves the task data file, honoring the DataDir override.
func (c Config) DataPath() (string, error) {
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, dataFileName), nil
	}
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dataFileName), nil
}
