// Package cli is the reel command tree.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/reel/internal/catalog"
	"github.com/Makepad-fr/reel/internal/config"
	"github.com/Makepad-fr/reel/internal/seed"
	"github.com/Makepad-fr/reel/internal/tui"
	"github.com/Makepad-fr/reel/internal/ui"
)

// usageError marks bad invocations so Run can exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	color      bool
	noColor    bool
	flags      config.Config

	cfg    *config.Config
	logger *zap.Logger
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, out io.Writer) int {
	root := newRootCmd(&app{})
	root.SetArgs(args)
	root.SetOut(out)
	ui.Stdout = out
	if err := root.Execute(); err != nil {
		ui.Fail(err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(ui.Stderr, ui.Dim("Run `reel --help` for usage"))
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "reel",
		Short: "reel - browse and rate a small film catalog",
		Long: `reel shows a catalog of films with their average rating.

Run without arguments to open the interactive browser:
  enter / r   review the highlighted film
  f / F       cycle the genre filter
  q           quit

Ratings and reviews live only for the session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			a.logger.Info("browser starting", zap.Int("items", store.Len()), zap.String("category", a.cfg.Category))
			final, err := tui.Run(tui.New(store, a.cfg.Category, a.logger))
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			ui.OK(fmt.Sprintf("%d review(s) this session (not saved)", final.Submitted()))
			return nil
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.SeedPath, "seed", "", "catalog seed file (.json, .yaml)")
	pf.StringVar(&a.flags.Theme, "theme", "", "color theme: classic, neon, mono")
	pf.StringVar(&a.flags.LogPath, "log", "", "write logs to this file")
	pf.StringVar(&a.flags.Category, "category", "", `genre to show ("all" for every film)`)
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.color, "color", false, "force colored output even when not a terminal")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newListCmd(a), newCategoriesCmd(a))
	return root
}

// setup resolves configuration: file and environment first, explicit flags last.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.SeedPath = a.flags.SeedPath
	}
	if flags.Changed("theme") {
		cfg.Theme = a.flags.Theme
	}
	if flags.Changed("log") {
		cfg.LogPath = a.flags.LogPath
	}
	if flags.Changed("category") {
		cfg.Category = a.flags.Category
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(a.color, a.noColor)

	a.logger, err = newLogger(cfg.LogPath, a.verbose)
	return err
}

func (a *app) loadStore() (*catalog.Store, error) {
	items, err := seed.Load(a.cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	store, err := catalog.New(items)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	a.logger.Debug("catalog loaded", zap.String("seed", a.cfg.SeedPath), zap.Int("items", store.Len()))
	return store, nil
}
