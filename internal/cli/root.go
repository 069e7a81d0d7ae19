package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/debug"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// App carries resolved config and the lazily opened session for one run.
type App struct {
	v       *viper.Viper
	backend store.Backend
	sess    *session.Session
}

// usageError marks bad invocations; they exit with status 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usage(msg string) error { return usageError{msg: msg} }

// Execute runs the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string, stdout, stderr io.Writer) int {
	app := &App{v: config.New()}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if cerr := app.Close(); cerr != nil {
		debug.Log("cli: close backend: %v", cerr)
	}
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A tiny filterable todo list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  todo

  todo add "Buy milk"
  todo ls --filter active
  todo done lz3k
  todo edit lz3k "Buy oat milk"
  todo rm lz3k
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeyBackend, "", "Storage backend (diskv|json|sqlite|memory)")
	flags.String(config.KeyDir, "", "Data directory (default ~/.todo)")
	flags.String(config.KeyKey, "", "Snapshot key")
	flags.String(config.KeyTheme, "", "Color theme (classic|neon|mono)")
	flags.Bool(config.KeyNoColor, false, "Disable colors")
	for _, name := range []string{config.KeyBackend, config.KeyDir, config.KeyKey, config.KeyTheme, config.KeyNoColor} {
		_ = app.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	sess, err := app.session()
	if err != nil {
		return err
	}
	return tui.Run(sess)
}

// session resolves config, applies the theme and opens the backend once.
func (a *App) session() (*session.Session, error) {
	if a.sess != nil {
		return a.sess, nil
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetNoColor(true)
	}
	b, err := store.Open(cfg.StoreOptions())
	if err != nil {
		return nil, err
	}
	a.backend = b
	a.sess = session.New(b)
	return a.sess, nil
}

func (a *App) Close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend, a.sess = nil, nil
	return err
}
