// Package cli — status.go implements the "gitstatus status" command.
//
// The status command discovers the repositories covering the given paths,
// scans each once, and prints a two-character staged/unstaged marker per
// path. Directories can be queried as aggregates with --dirs.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus"
)

// statusFlags holds the flag values for the status command.
type statusFlags struct {
	// dirs treats every argument as a directory and reports the aggregate
	// status of everything underneath it.
	dirs bool

	// submodules annotates paths that fall inside a submodule.
	submodules bool
}

// NewStatusCommand creates the "status" cobra command.
func NewStatusCommand() *cobra.Command {
	flags := &statusFlags{}

	cmd := &cobra.Command{
		Use:   "status [paths...]",
		Short: "Show staged/unstaged status markers for paths",
		Long: `Show the Git status of each path as a two-character marker column:
the first character is the staged (index) state, the second the unstaged
(working tree) state.

Examples:
  gitstatus status src/main.go README.md
  gitstatus status --dirs src internal
  gitstatus status --json .`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), flags, argsOrCwd(args))
		},
	}

	cmd.Flags().BoolVar(&flags.dirs, "dirs", false, "Treat paths as directories and aggregate their contents")
	cmd.Flags().BoolVar(&flags.submodules, "submodules", false, "Annotate paths inside submodules")

	return cmd
}

// statusResult pairs a queried path with its resolved status.
type statusResult struct {
	arg         string
	status      gitstatus.Status
	tracked     bool
	inSubmodule bool
}

// runStatus is the main logic for the status command.
func runStatus(ctx context.Context, flags *statusFlags, args []string) error {
	opts := newOptions()

	fsPaths := make([]string, 0, len(args))
	for _, arg := range args {
		p, err := toFSPath(arg)
		if err != nil {
			return err
		}
		fsPaths = append(fsPaths, p)
	}

	cache, err := gitstatus.ScanPaths(ctx, opts, fsPaths...)
	if err != nil {
		return fmt.Errorf("scanning repositories: %w", err)
	}

	results := make([]statusResult, 0, len(args))
	for i, arg := range args {
		res := statusResult{
			arg:     arg,
			tracked: cache.HasAnythingFor(fsPaths[i]),
		}
		if res.tracked {
			res.status = cache.Get(ctx, fsPaths[i], flags.dirs)
			if flags.submodules {
				res.inSubmodule = cache.HasInSubmodule(fsPaths[i])
			}
		}
		results = append(results, res)
	}

	printStatusResults(results)
	return nil
}

// printStatusResults outputs results in text or JSON format.
func printStatusResults(results []statusResult) {
	if jsonOutput {
		printStatusResultsJSON(results)
		return
	}

	for _, res := range results {
		line := renderStatus(cfg, res.status) + " " + res.arg
		if !res.tracked {
			line = "-- " + res.arg
		}
		if res.inSubmodule {
			line += " (submodule)"
		}
		fmt.Println(line)
	}
}

// statusJSON is the JSON output structure for a single path.
type statusJSON struct {
	Path        string `json:"path"`
	Tracked     bool   `json:"tracked"`
	Staged      string `json:"staged,omitempty"`
	Unstaged    string `json:"unstaged,omitempty"`
	InSubmodule bool   `json:"inSubmodule,omitempty"`
}

// printStatusResultsJSON outputs the results as a JSON array under a
// top-level "paths" key.
func printStatusResultsJSON(results []statusResult) {
	type resultJSON struct {
		Paths []statusJSON `json:"paths"`
	}

	out := resultJSON{Paths: make([]statusJSON, 0, len(results))}
	for _, res := range results {
		entry := statusJSON{
			Path:        res.arg,
			Tracked:     res.tracked,
			InSubmodule: res.inSubmodule,
		}
		if res.tracked {
			entry.Staged = res.status.Staged.String()
			entry.Unstaged = res.status.Unstaged.String()
		}
		out.Paths = append(out.Paths, entry)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
