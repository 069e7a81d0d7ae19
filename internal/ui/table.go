package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/view"
)

var (
	doneText  = color.New(color.Faint, color.CrossedOut).SprintFunc()
	faintText = color.New(color.Faint).SprintFunc()
	boldText  = color.New(color.Bold).SprintFunc()
)

// FilterTabs renders "all · active · completed" with the selected one marked.
func FilterTabs(selected filter.Filter) string {
	t := Current()
	tabs := make([]string, 0, len(filter.Filters))
	for _, f := range filter.Filters {
		if f == selected {
			tabs = append(tabs, t.Selected.Render("["+f.String()+"]"))
			continue
		}
		tabs = append(tabs, t.Muted.Render(f.String()))
	}
	return strings.Join(tabs, " ")
}

// PrintView writes a view model as a plain table: id, box, text.
func PrintView(w io.Writer, vm view.ViewModel) {
	t := Current()
	fmt.Fprintf(w, "%s  %s\n", boldText("Todos"), FilterTabs(vm.Filter))

	if vm.IsEmpty {
		fmt.Fprintln(w, faintText("  nothing here yet"))
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 80
		tbl.Wrap = true
		for _, e := range vm.Entries {
			text := e.Text
			if e.Completed {
				text = doneText(text)
			}
			tbl.AddRow(faintText(e.ID), t.Box(e.Completed), text)
		}
		fmt.Fprintln(w, tbl)
	}

	fmt.Fprintf(w, "%s  %s\n", vm.Summary(), ProgressBar(vm.CompletedCount, vm.Total(), 20))
}
