// Package store selects and opens a snapshot backend.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/debug"
	"github.com/idilsaglam/todolist/internal/store/diskvstore"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/store/memstore"
	"github.com/idilsaglam/todolist/internal/store/sqlitestore"
)

const (
	BackendDiskv  = "diskv"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// DefaultKey matches the record name the browser version used.
	DefaultKey = "todo_app_v1"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Backend is a snapshot adapter that may hold resources.
type Backend interface {
	ReadSnapshot() (string, bool)
	WriteSnapshot(serialized string) error
	Close() error
}

type Options struct {
	Backend string
	Dir     string
	Key     string
}

// Open returns the backend named by opts.Backend (diskv when empty).
func Open(opts Options) (Backend, error) {
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	name := strings.ToLower(strings.TrimSpace(opts.Backend))
	if name == "" {
		name = BackendDiskv
	}
	debug.Log("store: opening %s backend at %q (key %s)", name, opts.Dir, key)

	var (
		b   Backend
		err error
	)
	switch name {
	case BackendDiskv:
		b, err = diskvstore.New(opts.Dir, key)
	case BackendJSON:
		b, err = jsonstore.New(opts.Dir, key)
	case BackendSQLite:
		b, err = sqlitestore.New(opts.Dir, key)
	case BackendMemory:
		b = memstore.New()
	default:
		return nil, fmt.Errorf("%w: %q (want diskv, json, sqlite or memory)", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", name, err)
	}
	return b, nil
}
