package session

import (
	"testing"

	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/memstore"
)

func TestScenarioActiveFilter(t *testing.T) {
	s := New(memstore.New())

	a, _ := s.Submit("a")
	s.Submit("b")
	if !s.Toggle(a.ID) {
		t.Fatalf("toggle a failed")
	}
	s.SelectFilter(filter.Active)

	vm := s.View()
	if len(vm.Entries) != 1 || vm.Entries[0].Text != "b" || vm.Entries[0].Completed {
		t.Fatalf("unexpected visible entries: %+v", vm.Entries)
	}
	if vm.ActiveCount != 1 || vm.CompletedCount != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", vm.ActiveCount, vm.CompletedCount)
	}
}

func TestNewSessionLoadsSnapshotAndResetsFilter(t *testing.T) {
	raw, err := model.MarshalSnapshot([]model.Entry{{ID: "x1", Text: "persisted"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := New(memstore.New(raw))
	if s.Filter() != filter.All {
		t.Fatalf("fresh session should start on all, got %v", s.Filter())
	}
	vm := s.View()
	if len(vm.Entries) != 1 || vm.Entries[0].ID != "x1" {
		t.Fatalf("snapshot not loaded: %+v", vm.Entries)
	}
}

func TestEditFlow(t *testing.T) {
	s := New(memstore.New())
	e, _ := s.Submit("draft")

	if _, ok := s.BeginEdit("missing"); ok {
		t.Fatalf("begin edit of unknown id should fail")
	}
	if s.CommitEdit("x") {
		t.Fatalf("commit without begin should report false")
	}

	text, ok := s.BeginEdit(e.ID)
	if !ok || text != "draft" {
		t.Fatalf("BeginEdit = %q, %v", text, ok)
	}
	if id, editing := s.Editing(); !editing || id != e.ID {
		t.Fatalf("expected edit of %s in progress", e.ID)
	}
	if s.CommitEdit("   ") {
		t.Fatalf("blank commit should report false")
	}
	if _, editing := s.Editing(); editing {
		t.Fatalf("commit must end edit mode")
	}
	if got, _ := s.Store().Get(e.ID); got.Text != "draft" {
		t.Fatalf("blank commit should revert, got %q", got.Text)
	}

	s.BeginEdit(e.ID)
	if !s.CommitEdit(" final ") {
		t.Fatalf("commit failed")
	}
	if got, _ := s.Store().Get(e.ID); got.Text != "final" {
		t.Fatalf("expected final, got %q", got.Text)
	}
}

func TestCancelEdit(t *testing.T) {
	s := New(memstore.New())
	e, _ := s.Submit("keep me")
	s.BeginEdit(e.ID)
	s.CancelEdit()
	if _, editing := s.Editing(); editing {
		t.Fatalf("cancel should leave edit mode")
	}
	if got, _ := s.Store().Get(e.ID); got.Text != "keep me" {
		t.Fatalf("cancel changed text to %q", got.Text)
	}
}

func TestDeleteEndsEditOfSameEntry(t *testing.T) {
	s := New(memstore.New())
	a, _ := s.Submit("a")
	b, _ := s.Submit("b")

	s.BeginEdit(a.ID)
	s.Delete(b.ID)
	if id, editing := s.Editing(); !editing || id != a.ID {
		t.Fatalf("deleting another entry must not cancel the edit")
	}
	if !s.Delete(a.ID) {
		t.Fatalf("delete failed")
	}
	if _, editing := s.Editing(); editing {
		t.Fatalf("deleting the edited entry must cancel the edit")
	}
	if s.Delete(a.ID) {
		t.Fatalf("second delete should report false")
	}
	if !s.View().IsEmpty {
		t.Fatalf("expected empty view")
	}
}

func TestSelectFilterRejectsInvalid(t *testing.T) {
	s := New(memstore.New())
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	s.SelectFilter(filter.Filter(-1))
}
