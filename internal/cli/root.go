// Package cli implements the cobra-based CLI commands for gitstatus.
//
// Each subcommand (status, summary, branch) is defined in its own file
// within this package. This file defines the root command, the global
// flags, and the shared wiring: config loading, logger setup, and the
// translation of OS paths into paths within the library's filesystem root.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	billyfs "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/input-output-hk/catalyst-forge-libs/gitstatus"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput switches command output to JSON for machine consumption.
	jsonOutput bool

	// verbose enables debug-level logging on stderr.
	verbose bool

	// noColor disables colored markers regardless of config.
	noColor bool
)

// version, commit, and date are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// cfg is the loaded configuration, populated before any subcommand runs.
var cfg Config

// logger is the CLI-wide logger, populated before any subcommand runs.
var logger = slog.New(slog.DiscardHandler)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitstatus",
		Short: "Cached Git status queries for file listings",
		Long: `gitstatus answers Git status questions for sets of paths: per-file and
per-directory staged/unstaged markers, repository summaries for
subdirectories, and the current branch.

Repositories are discovered once per invocation and scanned once each,
so querying many paths stays cheap.`,

		// Errors are formatted by Execute; cobra must not double-print.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig()
			if err != nil {
				return err
			}

			logger = newLogger(verbose)

			switch {
			case noColor || cfg.Color == ColorNever:
				color.NoColor = true
			case cfg.Color == ColorAlways:
				color.NoColor = false
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewSummaryCommand())
	rootCmd.AddCommand(NewBranchCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger: debug level text output on stderr when
// verbose, warnings only otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newOptions builds the library options on an OS filesystem rooted at the
// filesystem root, so any absolute path can be queried.
func newOptions() *gitstatus.Options {
	return &gitstatus.Options{
		FS:     billyfs.NewOSFS("/"),
		Logger: logger,
	}
}

// toFSPath translates an OS path argument into a path within the
// filesystem root used by newOptions.
func toFSPath(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", arg, err)
	}
	return strings.TrimPrefix(filepath.ToSlash(abs), "/"), nil
}

// argsOrCwd returns the arguments, or the current directory when none are
// given.
func argsOrCwd(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
