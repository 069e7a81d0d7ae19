package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/view"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        string
	}{
		{0, 0, "░░░░░   0%"},
		{1, 2, "█████░░░░░  50%"},
		{3, 3, "██████████ 100%"},
	}
	for _, tt := range tests {
		width := 10
		if tt.total == 0 {
			width = 1
		}
		if got := ProgressBar(tt.done, tt.total, width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d) = %q, want %q", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestPrintView(t *testing.T) {
	SetTheme("mono")
	SetNoColor(true)
	t.Cleanup(func() { SetTheme("classic") })

	entries := []model.Entry{
		{ID: "b1", Text: "walk dog"},
		{ID: "a1", Text: "buy milk", Completed: true},
	}
	var buf bytes.Buffer
	PrintView(&buf, view.Project(entries, filter.Active))
	out := buf.String()
	if !strings.Contains(out, "walk dog") || strings.Contains(out, "buy milk") {
		t.Fatalf("active view printed wrong rows:\n%s", out)
	}
	if !strings.Contains(out, "[active]") || !strings.Contains(out, "1 active • 1 completed") {
		t.Fatalf("missing tabs or summary:\n%s", out)
	}

	buf.Reset()
	PrintView(&buf, view.Project(nil, filter.All))
	if !strings.Contains(buf.String(), "nothing here yet") {
		t.Fatalf("missing empty state:\n%s", buf.String())
	}
}
