package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// KV is the minimal string-keyed storage the persistence layer needs.
// Get reports whether the key was present at all.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileKV keeps all keys in one JSON object file. Single file,
// human-readable, portable. No locking; fine for a local
// single-user tool.
type FileKV struct {
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) read() (map[string]string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return entries, nil
}

func (f *FileKV) Get(key string) (string, bool, error) {
	entries, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	entries, err := f.read()
	if err != nil {
		// A corrupt file should not make the tool unusable; start over
		// with just the key being written.
		entries = map[string]string{}
	}
	entries[key] = value
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Path exposes the backing file, for the TUI's change watcher.
func (f *FileKV) Path() string { return f.path }

// MemKV is an in-memory KV for tests.
type MemKV struct {
	entries map[string]string

	// FailSet, when set, is returned from every Set call.
	FailSet error
}

func NewMemKV() *MemKV {
	return &MemKV{entries: map[string]string{}}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	m.entries[key] = value
	return nil
}
