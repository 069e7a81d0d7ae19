// Package filter selects which entries are visible.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

// Filter is the closed set of list views.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists every valid filter in display order.
var Filters = []Filter{All, Active, Completed}

var ErrUnknownFilter = errors.New("unknown filter")

func (f Filter) String() string {
	switch f {
	case All:
		return "all"
	case Active:
		return "active"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Valid reports whether f is one of All, Active, Completed.
func (f Filter) Valid() bool {
	return f >= All && f <= Completed
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return (f + 1) % Filter(len(Filters))
}

// Parse reads a filter name from user input.
func Parse(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "active":
		return Active, nil
	case "completed", "done":
		return Completed, nil
	}
	return All, fmt.Errorf("%w: %q (want all, active or completed)", ErrUnknownFilter, s)
}

// Controller holds the current selection. The zero value selects All.
type Controller struct {
	current Filter
}

// Set changes the current filter. Callers only ever pass the constants above,
// so an out-of-range value is a bug and panics.
func (c *Controller) Set(f Filter) {
	if !f.Valid() {
		panic(fmt.Sprintf("filter: invalid filter %d", int(f)))
	}
	c.current = f
}

func (c *Controller) Current() Filter { return c.current }

// Visible returns the entries matching f in their stored order. The input
// slice is never modified; for All it is returned as is.
func Visible(entries []model.Entry, f Filter) []model.Entry {
	switch f {
	case Active:
		return keep(entries, func(e model.Entry) bool { return !e.Completed })
	case Completed:
		return keep(entries, func(e model.Entry) bool { return e.Completed })
	}
	return entries
}

func keep(entries []model.Entry, pred func(model.Entry) bool) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
