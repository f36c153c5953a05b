package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key in its own file under a state directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated payload behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore: create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("localstore: read %s: %w", key, err)
	}
	return string(data), nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(f.dir, sanitizeKey(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) Remove(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// sanitizeKey strips anything that could escape the state dir. Keys are
// well-known names ("cart", "token").
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
}
