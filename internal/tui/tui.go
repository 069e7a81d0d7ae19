// Package tui is the interactive list. Every key press becomes one session
// intent; the list is rebuilt from the resulting view model.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/debug"
	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

// listItem adapts model.Entry to bubbles/list.Item
type listItem struct {
	entry model.Entry
}

func (i listItem) FilterValue() string { return i.entry.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := it.entry.Text
	if it.entry.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
)

type keyMap struct {
	Add, Edit, Toggle, Delete, NextFilter, Quit key.Binding
	All, Active, Completed                     key.Binding
}

var keys = keyMap{
	Add:        key.NewBinding(key.WithKeys("/", "a"), key.WithHelp("/", "add")),
	Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
	All:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
	Active:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
	Completed:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model for the list screen.
type Model struct {
	sess   *session.Session
	list   list.Model
	ti     textinput.Model
	mode   inputMode
	vm     view.ViewModel
	width  int
	height int
}

// New builds the model around an already-loaded session.
func New(sess *session.Session) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	// The all/active/completed tabs replace fuzzy filtering.
	l.SetFilteringEnabled(false)
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Delete, keys.NextFilter}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Delete, keys.NextFilter, keys.All, keys.Active, keys.Completed}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{sess: sess, list: l, ti: ti, width: 80, height: 24}
	m.refresh()
	m.resize()
	return m
}

// Run starts the program. Changes are persisted as they happen.
func Run(sess *session.Session) error {
	_, err := tea.NewProgram(New(sess), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.mode != modeBrowse {
		return m.updateInput(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Quit):
			return m, tea.Quit
		case key.Matches(km, keys.Add):
			m.openInput(modeAdd, "", "New item title...")
			return m, textinput.Blink
		case key.Matches(km, keys.Edit):
			if e, ok := m.selected(); ok {
				if text, ok := m.sess.BeginEdit(e.ID); ok {
					m.openInput(modeEdit, text, "Edit item title...")
					return m, textinput.Blink
				}
			}
			return m, nil
		case key.Matches(km, keys.Toggle):
			if e, ok := m.selected(); ok {
				m.sess.Toggle(e.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(km, keys.Delete):
			if e, ok := m.selected(); ok {
				m.sess.Delete(e.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(km, keys.NextFilter):
			m.selectFilter(m.sess.Filter().Next())
			return m, nil
		case key.Matches(km, keys.All):
			m.selectFilter(filter.All)
			return m, nil
		case key.Matches(km, keys.Active):
			m.selectFilter(filter.Active)
			return m, nil
		case key.Matches(km, keys.Completed):
			m.selectFilter(filter.Completed)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			value := m.ti.Value()
			if m.mode == modeAdd {
				if e, ok := m.sess.Submit(value); ok {
					debug.Log("tui: added %s", e.ID)
				}
			} else {
				m.sess.CommitEdit(value)
			}
			m.closeInput()
			m.refresh()
			return m, nil
		case tea.KeyEsc:
			if m.mode == modeEdit {
				m.sess.CancelEdit()
			}
			m.closeInput()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) openInput(mode inputMode, value, placeholder string) {
	m.mode = mode
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Placeholder = placeholder
	m.ti.Focus()
	m.resize()
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) selectFilter(f filter.Filter) {
	m.sess.SelectFilter(f)
	m.refresh()
	m.list.Select(0)
}

func (m Model) selected() (model.Entry, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Entry{}, false
	}
	return it.entry, true
}

// refresh re-projects the session and keeps the cursor in range.
func (m *Model) refresh() {
	m.vm = m.sess.View()
	items := make([]list.Item, 0, len(m.vm.Entries))
	for _, e := range m.vm.Entries {
		items = append(items, listItem{entry: e})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) resize() {
	listHeight := m.height - 6
	if m.mode != modeBrowse {
		listHeight -= 4
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)
}

func (m Model) header() string {
	t := ui.Current()
	return fmt.Sprintf("%s   %s %d  %s %d   %s\n%s",
		t.Title.Render("Todos"),
		t.Pending.Render(t.SymPending), m.vm.ActiveCount,
		t.Success.Render(t.SymOK), m.vm.CompletedCount,
		ui.FilterTabs(m.vm.Filter),
		t.Muted.Render(m.vm.Summary()+"  "+ui.ProgressBar(m.vm.CompletedCount, m.vm.Total(), 20)),
	)
}

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	if m.vm.IsEmpty {
		b.WriteString(t.Muted.Render(emptyMessage(m.vm.Filter)))
		b.WriteString("\n")
	}
	b.WriteString(m.list.View())

	if m.mode != modeBrowse {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new item"
		if m.mode == modeEdit {
			title = "Edit item " + t.Muted.Render("(enter to save, esc to cancel)")
		}
		b.WriteString("\n")
		b.WriteString(bar.Render(title + "\n" + m.ti.View()))
	}
	return ui.Panel(b.String())
}

func emptyMessage(f filter.Filter) string {
	switch f {
	case filter.Active:
		return "Nothing active. Press / to add an item."
	case filter.Completed:
		return "Nothing completed yet."
	}
	return "No items yet. Press / to add one."
}
