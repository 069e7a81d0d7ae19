// Package session turns user intents into store and filter changes and hands
// back view models. A Session is driven from a single goroutine.
package session

import (
	"github.com/idilsaglam/todolist/internal/debug"
	"github.com/idilsaglam/todolist/internal/entries"
	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/view"
)

type Session struct {
	store   *entries.Store
	filter  filter.Controller
	editID  string
	editing bool
}

// New loads the collection once from snap and starts on filter.All.
func New(snap entries.Snapshotter, opts ...entries.Option) *Session {
	st := entries.New(snap, opts...)
	st.Load()
	debug.Log("session: loaded %d entries", st.Len())
	return &Session{store: st}
}

// Store exposes the underlying entry store for read-only callers.
func (s *Session) Store() *entries.Store { return s.store }

func (s *Session) Filter() filter.Filter { return s.filter.Current() }

func (s *Session) View() view.ViewModel {
	return view.Project(s.store.Entries(), s.filter.Current())
}

// Submit adds new text; blank text is ignored.
func (s *Session) Submit(text string) (model.Entry, bool) {
	return s.store.Add(text)
}

func (s *Session) Toggle(id string) bool {
	return s.store.Toggle(id)
}

// BeginEdit marks id as being edited and returns its current text.
func (s *Session) BeginEdit(id string) (string, bool) {
	e, ok := s.store.Get(id)
	if !ok {
		return "", false
	}
	s.editID, s.editing = id, true
	return e.Text, true
}

// Editing reports the id under edit, if any.
func (s *Session) Editing() (string, bool) {
	return s.editID, s.editing
}

// CommitEdit applies text to the entry under edit and leaves edit mode.
// Blank text keeps the previous text and reports false.
func (s *Session) CommitEdit(text string) bool {
	if !s.editing {
		return false
	}
	id := s.editID
	s.CancelEdit()
	return s.store.Edit(id, text)
}

func (s *Session) CancelEdit() {
	s.editID, s.editing = "", false
}

// Delete removes id, ending an edit of the same entry.
func (s *Session) Delete(id string) bool {
	if s.editing && s.editID == id {
		s.CancelEdit()
	}
	return s.store.Remove(id)
}

func (s *Session) SelectFilter(f filter.Filter) {
	s.filter.Set(f)
}
