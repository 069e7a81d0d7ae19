// Package sqlitestore keeps snapshots in a small SQLite key/value table.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/todolist/internal/debug"
)

const fileName = "todo.sqlite"

const schema = `CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at_unixms INTEGER NOT NULL
)`

type Store struct {
	db  *sql.DB
	key string
}

// New opens (creating if needed) dir/todo.sqlite.
func New(dir, key string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("sqlitestore: dir required")
	}
	if key == "" {
		return nil, errors.New("sqlitestore: key required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	path := filepath.Join(dir, fileName)
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	// One writer, one connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, key: key}, nil
}

func (s *Store) ReadSnapshot() (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, s.key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			debug.Log("sqlitestore: read %s: %v", s.key, err)
		}
		return "", false
	}
	return value, true
}

func (s *Store) WriteSnapshot(serialized string) error {
	_, err := s.db.Exec(`INSERT INTO snapshots (key, value, updated_at_unixms) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at_unixms = excluded.updated_at_unixms`,
		s.key, serialized, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", s.key, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
