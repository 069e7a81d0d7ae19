// Package entries owns the authoritative entry collection. Every mutation
// writes the full collection back through a Snapshotter.
package entries

import (
	"slices"
	"time"

	"github.com/idilsaglam/todolist/internal/debug"
	"github.com/idilsaglam/todolist/internal/model"
)

// Snapshotter reads and writes the serialized collection under one key.
type Snapshotter interface {
	// ReadSnapshot returns false when nothing is stored or the store is unavailable.
	ReadSnapshot() (string, bool)
	WriteSnapshot(serialized string) error
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides time.Now for created timestamps and ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id generation.
func WithIDFunc(fn func(time.Time) string) Option {
	return func(s *Store) { s.newID = fn }
}

// Store is single-writer and not safe for concurrent use.
type Store struct {
	snap  Snapshotter
	items []model.Entry
	now   func() time.Time
	newID func(time.Time) string
}

func New(snap Snapshotter, opts ...Option) *Store {
	s := &Store{snap: snap, now: time.Now, newID: model.NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with the stored snapshot. Missing or
// unreadable data yields an empty collection.
func (s *Store) Load() []model.Entry {
	s.items = nil
	raw, ok := s.snap.ReadSnapshot()
	if !ok {
		return s.items
	}
	items, err := model.UnmarshalSnapshot(raw)
	if err != nil {
		debug.Log("entries: discarding unreadable snapshot: %v", err)
		return s.items
	}
	s.items = items
	return s.items
}

// Entries returns the collection newest first. Callers must not modify it.
func (s *Store) Entries() []model.Entry { return s.items }

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Get(id string) (model.Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	return s.items[i], true
}

// Add inserts a new entry at the front. Blank text is ignored.
func (s *Store) Add(raw string) (model.Entry, bool) {
	text := model.NormalizeText(raw)
	if text == "" {
		return model.Entry{}, false
	}
	now := s.now()
	e := model.NewEntry(s.uniqueID(now), text, now)
	s.items = slices.Insert(s.items, 0, e)
	s.persist()
	return e, true
}

// Toggle flips the completed flag of id.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	s.persist()
	return true
}

// Edit replaces the text of id. Blank text leaves the entry untouched and
// reports false.
func (s *Store) Edit(id, raw string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	text := model.NormalizeText(raw)
	if text == "" {
		return false
	}
	s.items[i].Text = text
	s.persist()
	return true
}

// Remove deletes id and reports whether it existed.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.persist()
	return true
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(e model.Entry) bool { return e.ID == id })
}

func (s *Store) uniqueID(now time.Time) string {
	for {
		id := s.newID(now)
		if id != "" && s.index(id) < 0 {
			return id
		}
	}
}

// persist writes the whole collection. Failures are dropped: the in-memory
// collection stays authoritative for the session.
func (s *Store) persist() {
	start := time.Now()
	raw, err := model.MarshalSnapshot(s.items)
	if err != nil {
		debug.Log("entries: encode snapshot: %v", err)
		return
	}
	if err := s.snap.WriteSnapshot(raw); err != nil {
		debug.Log("entries: write snapshot: %v", err)
		return
	}
	debug.LogTiming("entries: persist", time.Since(start))
}
