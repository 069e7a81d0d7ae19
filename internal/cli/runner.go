package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todolist/internal/filter"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add <text...>",
		Short:   "Add a new item (text can be multiple words)",
		Example: `  todo add "Buy milk"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usage("usage: todo add <text...>")
			}
			return doAdd(app, cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var (
		filterName string
		output     string
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(filterName)
			if err != nil {
				return usage(err.Error())
			}
			return doList(app, cmd.OutOrStdout(), f, output)
		},
	}
	cmd.Flags().StringVarP(&filterName, "filter", "f", "all", "Which items to show (all|active|completed)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table|json|yaml)")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle done for an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usage("usage: todo done <id>")
			}
			return doToggle(app, cmd.OutOrStdout(), args[0])
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace the text of an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usage("usage: todo edit <id> <text...>")
			}
			return doEdit(app, cmd.OutOrStdout(), args[0], strings.Join(args[1:], " "))
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usage("usage: todo rm <id>")
			}
			return doRemove(app, cmd.OutOrStdout(), args[0])
		},
	}
}

func doAdd(app *App, w io.Writer, text string) error {
	sess, err := app.session()
	if err != nil {
		return err
	}
	e, ok := sess.Submit(text)
	if !ok {
		ui.Note(w, "nothing to add")
		return nil
	}
	ui.OK(w, "added "+e.ID)
	return nil
}

func doList(app *App, w io.Writer, f filter.Filter, output string) error {
	sess, err := app.session()
	if err != nil {
		return err
	}
	sess.SelectFilter(f)
	vm := sess.View()

	switch strings.ToLower(output) {
	case "", "table":
		ui.PrintView(w, vm)
		return nil
	case "json":
		b, err := json.MarshalIndent(newListOutput(vm), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(newListOutput(vm))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	return usage(fmt.Sprintf("unknown output %q (want table, json or yaml)", output))
}

func doToggle(app *App, w io.Writer, ref string) error {
	sess, err := app.session()
	if err != nil {
		return err
	}
	e, err := resolveID(sess.Store().Entries(), ref)
	if err != nil {
		return err
	}
	sess.Toggle(e.ID)
	if e.Completed {
		ui.OK(w, "reopened "+e.ID)
	} else {
		ui.OK(w, "completed "+e.ID)
	}
	return nil
}

func doEdit(app *App, w io.Writer, ref, text string) error {
	sess, err := app.session()
	if err != nil {
		return err
	}
	e, err := resolveID(sess.Store().Entries(), ref)
	if err != nil {
		return err
	}
	if _, ok := sess.BeginEdit(e.ID); !ok {
		return fmt.Errorf("no entry matches %q", ref)
	}
	if !sess.CommitEdit(text) {
		ui.Note(w, "kept previous text: "+e.Text)
		return nil
	}
	ui.OK(w, "edited "+e.ID)
	return nil
}

func doRemove(app *App, w io.Writer, ref string) error {
	sess, err := app.session()
	if err != nil {
		return err
	}
	e, err := resolveID(sess.Store().Entries(), ref)
	if err != nil {
		return err
	}
	sess.Delete(e.ID)
	ui.OK(w, "removed "+e.ID)
	return nil
}

// resolveID matches a full id first, then a unique id prefix.
func resolveID(entries []model.Entry, ref string) (model.Entry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Entry{}, usage("empty id")
	}
	var matches []model.Entry
	for _, e := range entries {
		if e.ID == ref {
			return e, nil
		}
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return model.Entry{}, fmt.Errorf("no entry matches %q", ref)
	case 1:
		return matches[0], nil
	}
	return model.Entry{}, fmt.Errorf("%q is ambiguous (matches %d entries)", ref, len(matches))
}

type entryOutput struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Completed bool      `json:"completed" yaml:"completed"`
	Created   time.Time `json:"created" yaml:"created"`
}

type listOutput struct {
	Filter    string        `json:"filter" yaml:"filter"`
	Entries   []entryOutput `json:"entries" yaml:"entries"`
	Active    int           `json:"active" yaml:"active"`
	Completed int           `json:"completed" yaml:"completed"`
	Empty     bool          `json:"empty" yaml:"empty"`
}

func newListOutput(vm view.ViewModel) listOutput {
	out := listOutput{
		Filter:    vm.Filter.String(),
		Entries:   make([]entryOutput, 0, len(vm.Entries)),
		Active:    vm.ActiveCount,
		Completed: vm.CompletedCount,
		Empty:     vm.IsEmpty,
	}
	for _, e := range vm.Entries {
		out.Entries = append(out.Entries, entryOutput{
			ID:        e.ID,
			Text:      e.Text,
			Completed: e.Completed,
			Created:   e.CreatedAt,
		})
	}
	return out
}
