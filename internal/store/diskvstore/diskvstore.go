// Package diskvstore keeps the snapshot as a single diskv record.
package diskvstore

import (
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/idilsaglam/todolist/internal/debug"
)

type Store struct {
	d   *diskv.Diskv
	key string
}

// New opens a flat diskv keyspace rooted at dir.
func New(dir, key string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("diskvstore: base path required")
	}
	if key == "" {
		return nil, errors.New("diskvstore: key required")
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		key: key,
	}, nil
}

func flatTransform(string) []string { return []string{} }

func (s *Store) ReadSnapshot() (string, bool) {
	if !s.d.Has(s.key) {
		return "", false
	}
	val, err := s.d.Read(s.key)
	if err != nil {
		debug.Log("diskvstore: read %s: %v", s.key, err)
		return "", false
	}
	return string(val), true
}

func (s *Store) WriteSnapshot(serialized string) error {
	if err := s.d.Write(s.key, []byte(serialized)); err != nil {
		return fmt.Errorf("diskv write %s: %w", s.key, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
