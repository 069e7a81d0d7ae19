// Package view projects entries and the current filter into a render-ready
// snapshot. Counts always cover the full collection; the filter only decides
// which entries are listed.
package view

import (
	"fmt"

	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
)

// ViewModel is what a presentation layer draws.
type ViewModel struct {
	Filter         filter.Filter
	Entries        []model.Entry
	ActiveCount    int
	CompletedCount int
	IsEmpty        bool
}

// Project builds a ViewModel. It copies the visible entries so later store
// mutations never show through a view model already handed out.
func Project(entries []model.Entry, f filter.Filter) ViewModel {
	visible := filter.Visible(entries, f)
	vm := ViewModel{
		Filter:  f,
		Entries: append([]model.Entry{}, visible...),
		IsEmpty: len(visible) == 0,
	}
	for _, e := range entries {
		if e.Completed {
			vm.CompletedCount++
		} else {
			vm.ActiveCount++
		}
	}
	return vm
}

func (vm ViewModel) Total() int { return vm.ActiveCount + vm.CompletedCount }

// Summary renders the counts line, e.g. "2 active • 1 completed".
func (vm ViewModel) Summary() string {
	return fmt.Sprintf("%d active • %d completed", vm.ActiveCount, vm.CompletedCount)
}
