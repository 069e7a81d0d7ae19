package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todolist/internal/debug"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// Store keeps the snapshot in <dir>/<key>.json.
type Store struct {
	path string
}

func New(dir, key string) (*Store, error) {
	if key == "" {
		return nil, errors.New("jsonstore: key required")
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return &Store{path: filepath.Join(dir, key+".json")}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) ReadSnapshot() (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			debug.Log("jsonstore: read file: %v", err)
		}
		return "", false
	}
	return string(b), true
}

func (s *Store) WriteSnapshot(serialized string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(serialized), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
