// Package gitstatus provides cached Git status queries for file listings.
// This file contains per-subdirectory repository summaries, used when a
// listing shows a directory that is itself a repository root.
package gitstatus

import "context"

// RepoState classifies a subdirectory repository for summary display.
type RepoState int

const (
	// NoRepo indicates the directory is not a repository root.
	NoRepo RepoState = iota

	// Clean indicates the repository has no uncommitted changes.
	Clean

	// Dirty indicates the repository has at least one uncommitted change.
	Dirty
)

// String returns a human-readable name for the RepoState.
func (s RepoState) String() string {
	switch s {
	case NoRepo:
		return "no-repo"
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// SubdirSummary describes a repository rooted exactly at a subdirectory:
// its overall working tree state and the checked out branch.
type SubdirSummary struct {
	// State is Clean or Dirty when the directory is a repository root,
	// NoRepo otherwise. It stays NoRepo when the state scan is skipped.
	State RepoState

	// Branch is the checked out branch name, empty when unavailable
	// (no repository, detached HEAD, or no commits yet).
	Branch string
}

// Summarize inspects the directory as a repository root, without any
// rootward search, and reports its branch and optionally its working tree
// state. Scanning the state costs a full status walk, so callers that only
// show the branch should pass includeState=false.
//
// A directory that is not a repository root yields a NoRepo summary, not
// an error; errors are reserved for invalid options and cancellation.
func Summarize(ctx context.Context, opts *Options, dir string, includeState bool) (SubdirSummary, error) {
	if err := opts.Validate(); err != nil {
		return SubdirSummary{}, WrapError(err, "invalid options")
	}
	opts.applyDefaults()

	if err := ctx.Err(); err != nil {
		return SubdirSummary{}, WrapError(err, "context cancelled")
	}

	dir = normalizePath(dir)
	gitDir := joinPath(dir, ".git")
	info, err := opts.FS.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return SubdirSummary{State: NoRepo}, nil
	}

	repo, err := openRepoAt(opts, gitDir, dir, dir)
	if err != nil {
		opts.Logger.Debug("failed to open subdirectory repository", "dir", dir, "error", err)
		return SubdirSummary{State: NoRepo}, nil
	}

	summary := SubdirSummary{State: NoRepo}

	branch, err := repo.Branch(ctx)
	if err != nil {
		opts.Logger.Debug("failed to resolve branch", "dir", dir, "error", err)
	} else {
		summary.Branch = branch
	}

	if !includeState {
		return summary, nil
	}

	// Dirty means any scanned entry beyond the ignored ones; the aggregate
	// Status is not used here because ignored entries would mask conflicts.
	summary.State = Clean
	table, err := repo.load()
	if err != nil {
		opts.Logger.Debug("failed to scan subdirectory repository", "dir", dir, "error", err)
		return summary, nil
	}
	for _, e := range table.entries {
		if e.flags&^flagIgnored != 0 {
			summary.State = Dirty
			break
		}
	}

	return summary, nil
}
