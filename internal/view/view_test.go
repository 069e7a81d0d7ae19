package view

import (
	"reflect"
	"testing"

	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
)

func sample() []model.Entry {
	return []model.Entry{
		{ID: "c", Text: "call mom"},
		{ID: "b", Text: "walk dog", Completed: true},
		{ID: "a", Text: "buy milk"},
	}
}

func TestProjectCountsCoverFullCollection(t *testing.T) {
	for _, f := range filter.Filters {
		vm := Project(sample(), f)
		if vm.ActiveCount != 2 || vm.CompletedCount != 1 {
			t.Fatalf("%v: counts = %d/%d, want 2/1", f, vm.ActiveCount, vm.CompletedCount)
		}
		if vm.Total() != 3 {
			t.Fatalf("%v: total = %d", f, vm.Total())
		}
		if vm.Filter != f {
			t.Fatalf("filter not carried: %v", vm.Filter)
		}
	}
}

func TestProjectVisibleEntries(t *testing.T) {
	vm := Project(sample(), filter.Completed)
	if len(vm.Entries) != 1 || vm.Entries[0].Text != "walk dog" {
		t.Fatalf("unexpected visible entries: %+v", vm.Entries)
	}
	if vm.IsEmpty {
		t.Fatalf("expected non-empty view")
	}
}

func TestProjectEmptyState(t *testing.T) {
	vm := Project(nil, filter.All)
	if !vm.IsEmpty || vm.Total() != 0 {
		t.Fatalf("expected empty view, got %+v", vm)
	}

	onlyActive := []model.Entry{{ID: "a", Text: "a"}}
	vm = Project(onlyActive, filter.Completed)
	if !vm.IsEmpty {
		t.Fatalf("completed view of active-only list should be empty")
	}
	if vm.ActiveCount != 1 {
		t.Fatalf("counts must stay global, got active=%d", vm.ActiveCount)
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	entries := sample()
	first := Project(entries, filter.Active)
	second := Project(entries, filter.Active)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("projection not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestProjectIsolatedFromLaterMutation(t *testing.T) {
	entries := sample()
	vm := Project(entries, filter.All)
	entries[0].Text = "changed"
	if vm.Entries[0].Text != "call mom" {
		t.Fatalf("view model shares storage with the collection")
	}
}

func TestSummary(t *testing.T) {
	vm := Project(sample(), filter.All)
	if got, want := vm.Summary(), "2 active • 1 completed"; got != want {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}
}
