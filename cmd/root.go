// Package cmd wires the tablero command tree.
package cmd

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/card"
	"github.com/thenoetrevino/tablero/internal/cli/setup"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/cli/tutorial"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/launcher"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

var (
	// cfg is loaded by initRuntime before any command runs
	cfg *config.Config

	// logCloser is the open log file, closed once the command finishes
	logCloser io.Closer
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a kanban board with WIP limits",
		Long: `Tablero is a terminal kanban board. Cards move between lists, and a list
with a WIP limit refuses cards once it is full.

Run without arguments to open the interactive board.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initRuntime,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
		RunE: runTUI,
	}

	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(board.BoardCmd())

	// setup must work even when the existing config does not load
	setupCmd := setup.SetupCmd()
	setupCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		RunE:  runTUI,
	})

	return rootCmd
}

// Execute runs the command tree; main maps the error to an exit code
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	closeLog()

	var coded *cli.CodedError
	if err != nil && !errors.As(err, &coded) {
		// flag and argument errors from cobra itself
		rootCmd.PrintErrln("Error:", err)
		return &cli.CodedError{Code: cli.ExitUsage, Err: err}
	}
	return err
}

// initRuntime loads the configuration once to start logging and apply the theme
func initRuntime(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		formatter := cli.NewFormatter(cmd)
		return cli.InitError(formatter, err)
	}
	cfg = loaded

	closer, err := logging.Init(cfg.Log.Level)
	if err != nil {
		slog.Warn("file logging unavailable", "error", err)
	} else {
		logCloser = closer
	}

	styles.Init(cfg.ColorScheme)
	theme.Init(cfg.ColorScheme)
	components.InitStyles()
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := launcher.Launch(cmd.Context(), cfg); err != nil {
		slog.Error("tui exited with error", "error", err)
		return &cli.CodedError{Code: cli.ExitError, Err: err}
	}
	return nil
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		slog.Error("failed to close log file", "error", err)
	}
	logCloser = nil
}
