// Package cli — branch.go implements the "gitstatus branch" command.
//
// The branch command discovers the repository covering a directory and
// prints the checked out branch name.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus"
)

// branchFlags holds the flag values for the branch command.
type branchFlags struct {
	// short truncates long branch names for narrow display columns.
	short bool
}

// NewBranchCommand creates the "branch" cobra command.
func NewBranchCommand() *cobra.Command {
	flags := &branchFlags{}

	cmd := &cobra.Command{
		Use:   "branch [dir]",
		Short: "Show the checked out branch for a directory",
		Long: `Discover the repository covering the directory (searching rootward) and
print the name of the checked out branch. A repository with no commits
prints nothing; a detached HEAD is an error.

Examples:
  gitstatus branch
  gitstatus branch --short ~/projects/app`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runBranch(cmd.Context(), flags, dir)
		},
	}

	cmd.Flags().BoolVar(&flags.short, "short", false, "Truncate long branch names for display")

	return cmd
}

// runBranch is the main logic for the branch command.
func runBranch(ctx context.Context, flags *branchFlags, dir string) error {
	opts := newOptions()

	p, err := toFSPath(dir)
	if err != nil {
		return err
	}

	cache, err := gitstatus.ScanPaths(ctx, opts, p)
	if err != nil {
		return fmt.Errorf("scanning repositories: %w", err)
	}

	repos := cache.Repos()
	if len(repos) == 0 {
		return fmt.Errorf("%q: %w", dir, gitstatus.ErrNoRepository)
	}

	branch, err := repos[0].Branch(ctx)
	if err != nil {
		if errors.Is(err, gitstatus.ErrDetachedHead) {
			return fmt.Errorf("%q: %w", dir, gitstatus.ErrDetachedHead)
		}
		return fmt.Errorf("resolving branch for %q: %w", dir, err)
	}

	if flags.short {
		branch = gitstatus.ShortenBranch(branch)
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(map[string]string{"branch": branch}, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	if branch != "" {
		fmt.Println(branch)
	}
	return nil
}
