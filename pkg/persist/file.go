package persist

import (
	"context"
	"os"
	"path/filepath"
)

// FileKV stores values as files in a directory, one file per key. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated payload behind.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

// Get retrieves the value for key.
func (s *FileKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value under key atomically.
func (s *FileKV) Set(ctx context.Context, key string, data []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the value for key.
func (s *FileKV) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file store.
func (s *FileKV) Close() error { return nil }

// path converts a key to a file path. Keys are hashed so arbitrary key
// strings never become hostile filenames.
func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, Hash([]byte(key))+".json")
}

// Ensure FileKV implements KV.
var _ KV = (*FileKV)(nil)
