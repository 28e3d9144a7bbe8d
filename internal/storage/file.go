package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage persists each key as a JSON file inside a data directory.
// Writes go through a temp file and rename so readers (including the
// change watcher) never observe a half-written payload.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the data directory if needed and returns the driver
func NewFileStorage(dir string) (*FileStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStorage{dir: cleanDir}, nil
}

// Dir returns the data directory, used to point the change watcher at it
func (s *FileStorage) Dir() string {
	return s.dir
}

// KeyForPath maps a file path inside the data directory back to its key.
// Returns false for paths that do not look like payload files.
func (s *FileStorage) KeyForPath(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".json") {
		return "", false
	}
	return strings.TrimSuffix(base, ".json"), true
}

// Get reads the payload stored under key
func (s *FileStorage) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the payload for key atomically
func (s *FileStorage) Set(key, value string) error {
	path := s.pathFor(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file driver
func (s *FileStorage) Close() error {
	return nil
}

func (s *FileStorage) pathFor(key string) string {
	// Keys are fixed collection names; Base guards against path separators anyway.
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}
