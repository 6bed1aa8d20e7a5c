package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVMissingFile(t *testing.T) {
	f := NewFileKV(filepath.Join(t.TempDir(), "tasks.json"))

	_, ok, err := f.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKVRoundTrip(t *testing.T) {
	f := NewFileKV(filepath.Join(t.TempDir(), "tasks.json"))

	require.NoError(t, f.Set("tasks", `[{"id":"1"}]`))
	require.NoError(t, f.Set("sortOption", "priority"))

	v, ok, err := f.Get("tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	v, ok, err = f.Get("sortOption")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "priority", v)
}

func TestFileKVCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	f := NewFileKV(path)

	require.NoError(t, f.Set("tasks", "[]"))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileKVCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	f := NewFileKV(path)

	_, _, err := f.Get("tasks")
	assert.Error(t, err)

	// Writing recovers by starting over with a fresh object.
	require.NoError(t, f.Set("tasks", "[]"))
	v, ok, err := f.Get("tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestMemKV(t *testing.T) {
	m := NewMemKV()

	_, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("k", "v"))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
