package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	defer fs.Close()

	_, ok, err := fs.Get("students")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fs.Set("students", `[{"id":1}]`))
	value, ok, err := fs.Get("students")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)

	// Overwrite
	require.NoError(t, fs.Set("students", "[]"))
	value, ok, err = fs.Get("students")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestFileStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	fs, err := NewFileStorage(dir)
	require.NoError(t, err)
	defer fs.Close()

	require.NoError(t, fs.Set("internships", "[]"))
	_, err = os.Stat(filepath.Join(dir, "internships.json"))
	assert.NoError(t, err)
}

func TestFileStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewFileStorage("  ")
	assert.Error(t, err)
}

func TestFileStorageKeyForPath(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	defer fs.Close()

	key, ok := fs.KeyForPath(filepath.Join(fs.Dir(), "students.json"))
	require.True(t, ok)
	assert.Equal(t, "students", key)

	_, ok = fs.KeyForPath(filepath.Join(fs.Dir(), "students.json.tmp"))
	assert.False(t, ok)
}

func TestFileStorageKeySanitization(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	defer fs.Close()

	require.NoError(t, fs.Set("../escape", "x"))
	_, err = os.Stat(filepath.Join(fs.Dir(), "escape.json"))
	assert.NoError(t, err, "key must be confined to the data directory")
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	ms := NewMemoryStorage()
	defer ms.Close()

	_, ok, err := ms.Get("students")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ms.Set("students", "[]"))
	value, ok, err := ms.Get("students")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", value)
}
