// Package cli — summary.go implements the "gitstatus summary" command.
//
// The summary command treats each argument as a potential repository root
// and reports its branch and whether the working tree is clean or dirty.
// This is the view a listing shows for a directory that is itself a
// repository.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus"
)

// summaryFlags holds the flag values for the summary command.
type summaryFlags struct {
	// noState skips the working tree scan and resolves only the branch.
	noState bool
}

// NewSummaryCommand creates the "summary" cobra command.
func NewSummaryCommand() *cobra.Command {
	flags := &summaryFlags{}

	cmd := &cobra.Command{
		Use:   "summary [dirs...]",
		Short: "Summarize directories that are repository roots",
		Long: `Report, for each directory, whether it is a Git repository root and if
so its checked out branch and working tree state (clean or dirty).

Scanning the state costs a full status walk per repository; use
--no-state when only the branch is needed.

Examples:
  gitstatus summary ~/projects/app ~/projects/lib
  gitstatus summary --no-state .`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), flags, argsOrCwd(args))
		},
	}

	cmd.Flags().BoolVar(&flags.noState, "no-state", false, "Resolve only the branch, skip the status scan")

	return cmd
}

// summaryResult pairs a queried directory with its summary.
type summaryResult struct {
	arg     string
	summary gitstatus.SubdirSummary
}

// runSummary is the main logic for the summary command.
func runSummary(ctx context.Context, flags *summaryFlags, args []string) error {
	opts := newOptions()

	results := make([]summaryResult, 0, len(args))
	for _, arg := range args {
		p, err := toFSPath(arg)
		if err != nil {
			return err
		}

		summary, err := gitstatus.Summarize(ctx, opts, p, !flags.noState)
		if err != nil {
			return fmt.Errorf("summarizing %q: %w", arg, err)
		}
		results = append(results, summaryResult{arg: arg, summary: summary})
	}

	printSummaryResults(results)
	return nil
}

// printSummaryResults outputs results in text or JSON format.
func printSummaryResults(results []summaryResult) {
	if jsonOutput {
		printSummaryResultsJSON(results)
		return
	}

	fmt.Printf("%-8s %-16s %s\n", "STATE", "BRANCH", "DIR")
	for _, res := range results {
		branch := res.summary.Branch
		if branch == "" {
			branch = "-"
		}
		fmt.Printf("%-8s %-16s %s\n",
			res.summary.State.String(),
			gitstatus.ShortenBranch(branch),
			res.arg,
		)
	}
}

// summaryJSON is the JSON output structure for a single directory.
type summaryJSON struct {
	Dir    string `json:"dir"`
	State  string `json:"state"`
	Branch string `json:"branch,omitempty"`
}

// printSummaryResultsJSON outputs the summaries as a JSON array under a
// top-level "dirs" key.
func printSummaryResultsJSON(results []summaryResult) {
	type resultJSON struct {
		Dirs []summaryJSON `json:"dirs"`
	}

	out := resultJSON{Dirs: make([]summaryJSON, 0, len(results))}
	for _, res := range results {
		out.Dirs = append(out.Dirs, summaryJSON{
			Dir:    res.arg,
			State:  res.summary.State.String(),
			Branch: res.summary.Branch,
		})
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
