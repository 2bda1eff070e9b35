// Package gitstatus answers Git status questions for file listings.
//
// The package discovers the repositories covering a set of queried paths,
// scans each repository's working tree status exactly once, and then
// answers per-file and per-directory staged/unstaged status lookups from
// the cached result. It is built for tools that render many paths per
// invocation (directory listings, tree views) where the expected number of
// repositories is zero or one and repeated status scans would dominate the
// runtime.
//
// All repository I/O goes through the project's native filesystem
// abstraction, so everything works against both on-disk and in-memory
// repositories.
//
// # Basic Usage
//
// Build a cache for the paths you are about to list, then query it:
//
//	import (
//	    "context"
//	    billyfs "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
//	    "github.com/input-output-hk/catalyst-forge-libs/gitstatus"
//	)
//
//	fs := billyfs.NewOSFS("/home/user")
//
//	cache, err := gitstatus.ScanPaths(ctx, &gitstatus.Options{FS: fs},
//	    "projects/app")
//
//	// Per-file status: staged and unstaged axes.
//	st := cache.Get(ctx, "projects/app/main.go", false)
//	fmt.Printf("%c%c\n", st.Staged.Rune(), st.Unstaged.Rune())
//
//	// Per-directory status: aggregate of everything underneath.
//	st = cache.Get(ctx, "projects/app/internal", true)
//
// # Discovery
//
// Each queried path is searched rootward for a .git directory. Paths that
// resolve to an already-known repository are merged into it, and paths
// confirmed to have no repository are remembered so they are never
// searched again. When the GIT_DIR environment variable is set, that
// location is opened first without a search, consistent with git itself.
//
// # Directory Aggregation
//
// A directory lookup ORs the raw states of every path under the prefix
// and then reports the most significant state per axis, so a directory
// containing one untracked and one modified file reports "new" on the
// unstaged axis. Ignored status works the other way around: a path under
// an ignored directory is itself ignored. The .git directory is always
// treated as ignored.
//
// # Submodules
//
// Cache.HasInSubmodule reports whether a path falls inside a submodule of
// its covering repository, letting callers skip submodule contents when
// listing recursively. Submodule paths are fetched once per repository and
// cached, including the failure case.
//
// # Subdirectory Summaries
//
// Summarize classifies a directory that is itself a repository root,
// reporting its branch and whether the working tree is clean or dirty:
//
//	summary, err := gitstatus.Summarize(ctx, opts, "projects/app", true)
//	if summary.State == gitstatus.Dirty { ... }
//
// # Error Handling
//
// The package provides sentinel errors for common conditions:
//
//	_, err := repo.Branch(ctx)
//	if errors.Is(err, gitstatus.ErrDetachedHead) {
//	    // Handle detached HEAD
//	}
//
// Discovery failures are deliberately not errors: a path with no
// repository is an expected input for a listing tool, so it is recorded
// as a miss and lookups return the zero Status.
//
// # Thread Safety
//
// A Cache is built once and then read-only; Repo lookups synchronize
// internally, so a Cache may be shared across goroutines rendering a
// listing in parallel.
package gitstatus
