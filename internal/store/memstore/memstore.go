// Package memstore is a process-local snapshot store.
package memstore

// Store holds at most one snapshot. WriteErr, when set, is returned by every
// write so callers can exercise failing storage.
type Store struct {
	value    string
	ok       bool
	Writes   int
	WriteErr error
}

// New returns an empty store, or one seeded with a snapshot when given.
func New(seed ...string) *Store {
	s := &Store{}
	if len(seed) > 0 {
		s.value, s.ok = seed[0], true
	}
	return s
}

func (s *Store) ReadSnapshot() (string, bool) { return s.value, s.ok }

func (s *Store) WriteSnapshot(serialized string) error {
	s.Writes++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.value, s.ok = serialized, true
	return nil
}

func (s *Store) Close() error { return nil }
