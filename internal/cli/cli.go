// Package cli wires config, storage, logging and the form controller behind
// the resumeform commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/resumeform/internal/config"
	"github.com/Makepad-fr/resumeform/internal/form"
	"github.com/Makepad-fr/resumeform/internal/logging"
	"github.com/Makepad-fr/resumeform/internal/nav"
	"github.com/Makepad-fr/resumeform/internal/render"
	"github.com/Makepad-fr/resumeform/internal/store/jsonstore"
	"github.com/Makepad-fr/resumeform/internal/tui"
	"github.com/Makepad-fr/resumeform/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks bad invocations; Run maps it to ExitUsage.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// runTUI is swapped out in tests.
var runTUI = tui.Run

// env is what every command needs once flags are parsed.
type env struct {
	cfg   *config.Config
	store *jsonstore.Store
	log   *slog.Logger
}

type rootOptions struct {
	configPath string
}

// Run executes args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	ui.Fail(err.Error())
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ui.Muted("Run `resumeform --help` for usage."))
		return ExitUsage
	}
	return ExitError
}

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "resumeform",
		Short:         "Terminal resume builder",
		Long:          "resumeform edits a resume in the terminal: personal info, education, experience and skills, saved locally and printable as text.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEdit(opts)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(
		newEditCmd(opts),
		newPrintCmd(opts),
		newExportCmd(opts),
		newResetCmd(opts),
		newWhereCmd(opts),
	)
	return root
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// setup loads config and opens the store. Logs go to w.
func setup(opts *rootOptions, w io.Writer) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)
	return &env{
		cfg:   cfg,
		store: jsonstore.New(cfg.DataDir),
		log:   logging.Setup(w, cfg.LogLevel),
	}, nil
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the resume form (default)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEdit(opts)
		},
	}
}

func runEdit(opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}
	ui.SetTheme(cfg.Theme)

	log, closer, err := logging.OpenFile(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	scroll := &tui.ScrollBridge{}
	reg := form.BuildPage()
	ctrl := form.New(form.Options{
		Registry: reg,
		Storage:  jsonstore.New(cfg.DataDir),
		Tracker:  nav.New(reg, nav.WithThreshold(cfg.ScrollThreshold), nav.WithScroller(scroll)),
		Printer:  render.FilePrinter{Path: cfg.PrintPath},
		Logger:   log,
	})
	ctrl.Restore()
	prev := slog.Default()
	slog.SetDefault(log)
	defer slog.SetDefault(prev)
	log.Info("form opened", "dir", cfg.DataDir, "scroll_threshold", ctrl.Tracker().Threshold())

	if err := runTUI(tui.New(ctrl, scroll, ui.Current(), log)); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
