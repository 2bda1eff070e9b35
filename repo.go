// Package gitstatus provides cached Git status queries for file listings.
// This file contains the repository handle and its lazily built status table.
package gitstatus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus/internal/fsbridge"
)

// shortBranchLimit is the display length above which branch names are
// truncated by ShortenBranch.
const shortBranchLimit = 10

// Repo is a Git repository discovered somewhere within the filesystem.
//
// Querying the repository for the mapping of paths to Git statuses is done
// once and cached, so later lookups never touch the object store again.
// A Repo is safe for concurrent use.
type Repo struct {
	// mu guards the go-git handle, which is not safe for concurrent use.
	mu         sync.Mutex
	repo       *git.Repository
	worktree   *git.Worktree
	worktreeFS billy.Filesystem

	// statusMu guards table; table stays nil until the first status query.
	statusMu sync.RWMutex
	table    *statusTable

	// subMu guards the cached submodule paths. A failed lookup is cached
	// too: it answers "no" thereafter without retrying.
	subMu      sync.RWMutex
	subLoaded  bool
	subErr     error
	submodules []string

	// workdir is the repository working directory within the filesystem.
	// Used to check whether two discoveries hit the same repository.
	workdir string

	// originalPath is the path whose discovery produced this repository.
	// It is checked before extraPaths and kept separate so the common
	// single-path case stays allocation free.
	originalPath string

	// extraPaths are other queried paths that resolved to this same
	// repository.
	extraPaths []string

	logger *slog.Logger
}

// statusTable holds the path to state mapping of a scanned repository.
// Entries use a slice rather than a map: lookups OR flags over matching
// entries and ignored entries match by prefix, so iteration is needed
// either way.
type statusTable struct {
	entries []statusEntry
	matcher gitignore.Matcher
	// tracked holds the paths present in the index. Ignore patterns only
	// apply to untracked paths: a committed file listed in .gitignore is
	// still tracked and reports as unmodified.
	tracked map[string]struct{}
	workdir string
}

type statusEntry struct {
	path  string
	flags stateFlags
}

// openRepoAt opens the repository whose Git directory is at gitDir and
// whose working tree is rooted at workdir, both within opts.FS.
// Options must already be validated and defaulted.
func openRepoAt(opts *Options, gitDir, workdir, queriedPath string) (*Repo, error) {
	billyFS, err := fsbridge.ToBillyFilesystem(opts.FS)
	if err != nil {
		return nil, WrapError(err, "filesystem conversion failed")
	}

	gitFS, err := billyFS.Chroot(gitDir)
	if err != nil {
		return nil, WrapErrorf(err, "failed to chroot to git dir %q", gitDir)
	}

	worktreeFS, err := billyFS.Chroot(workdir)
	if err != nil {
		return nil, WrapErrorf(err, "failed to chroot to workdir %q", workdir)
	}

	storage := fsbridge.NewStorage(gitFS, opts.StorerCacheSize)

	repo, err := git.Open(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to open repository")
	}

	cfg, err := repo.Config()
	if err == nil && cfg.Core.IsBare {
		return nil, WrapErrorf(ErrBareRepository, "repository at %q", gitDir)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, WrapErrorf(ErrBareRepository, "repository at %q", gitDir)
		}
		return nil, WrapError(err, "failed to get worktree")
	}

	return &Repo{
		repo:         repo,
		worktree:     worktree,
		worktreeFS:   worktreeFS,
		workdir:      workdir,
		originalPath: queriedPath,
		logger:       opts.Logger,
	}, nil
}

// Workdir returns the repository working directory within the filesystem.
func (r *Repo) Workdir() string {
	return r.workdir
}

// ContainsPath reports whether this repository was discovered for the given
// path, i.e. the path lives under the original or any extra queried path.
func (r *Repo) ContainsPath(p string) bool {
	p = normalizePath(p)
	if isPathPrefix(r.originalPath, p) {
		return true
	}
	for _, extra := range r.extraPaths {
		if isPathPrefix(extra, p) {
			return true
		}
	}
	return false
}

// addExtraPath records another queried path that resolved to this repository.
func (r *Repo) addExtraPath(p string) {
	r.extraPaths = append(r.extraPaths, p)
}

// Status returns the Git status of a path within the filesystem.
//
// With prefixLookup set, it reports the aggregate status of every path
// starting with the given prefix (in other words, a directory).
//
// The underlying repository scan runs at most once per Repo; the first
// call pays for it and later calls hit the cached table.
//
// Context timeout/cancellation is honored before the scan starts.
func (r *Repo) Status(ctx context.Context, p string, prefixLookup bool) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, WrapError(err, "context cancelled")
	}

	if p == "" {
		return Status{}, WrapError(ErrInvalidPath, "path cannot be empty")
	}

	table, err := r.load()
	if err != nil {
		return Status{}, err
	}

	p = normalizePath(p)
	if prefixLookup {
		return statusFromFlags(table.dirFlags(p)), nil
	}
	return statusFromFlags(table.fileFlags(p)), nil
}

// load returns the cached status table, scanning the repository on first use.
func (r *Repo) load() (*statusTable, error) {
	r.statusMu.RLock()
	table := r.table
	r.statusMu.RUnlock()
	if table != nil {
		r.logger.Debug("status table found in cache", "workdir", r.workdir)
		return table, nil
	}

	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	if r.table != nil {
		r.logger.Debug("status table found in cache", "workdir", r.workdir)
		return r.table, nil
	}

	r.logger.Info("scanning repository", "workdir", r.workdir)

	r.mu.Lock()
	status, err := r.worktree.Status()
	r.mu.Unlock()
	if err != nil {
		return nil, WrapError(err, "failed to scan worktree status")
	}

	table = &statusTable{workdir: r.workdir}
	for rel, fileStatus := range status {
		flags := flagsForFile(fileStatus)
		if flags == 0 {
			continue
		}
		table.entries = append(table.entries, statusEntry{
			path:  joinPath(r.workdir, rel),
			flags: flags,
		})
	}

	// The .git directory at the repository root is recorded as ignored so
	// that recursive listings never surface its contents.
	table.entries = append(table.entries, statusEntry{
		path:  joinPath(r.workdir, ".git"),
		flags: flagIgnored,
	})

	// Ignore patterns let lookups report paths that Git excludes entirely;
	// the worktree status scan omits them.
	patterns, err := gitignore.ReadPatterns(r.worktreeFS, nil)
	if err != nil {
		r.logger.Debug("failed to read ignore patterns", "workdir", r.workdir, "error", err)
	} else if len(patterns) > 0 {
		table.matcher = gitignore.NewMatcher(patterns)
	}

	// Tracked paths are exempt from the ignore patterns.
	if table.matcher != nil {
		idx, err := r.repo.Storer.Index()
		if err != nil {
			r.logger.Debug("failed to read index", "workdir", r.workdir, "error", err)
		} else {
			table.tracked = make(map[string]struct{}, len(idx.Entries))
			for _, entry := range idx.Entries {
				table.tracked[joinPath(r.workdir, entry.Name)] = struct{}{}
			}
		}
	}

	r.table = table
	return table, nil
}

// fileFlags accumulates the flags that apply to a single file. Ignored
// entries match by prefix (a file under an ignored directory is ignored);
// all other entries must match exactly.
func (t *statusTable) fileFlags(p string) stateFlags {
	var flags stateFlags
	for _, e := range t.entries {
		if e.flags&flagIgnored != 0 {
			if isPathPrefix(e.path, p) {
				flags |= e.flags
			}
		} else if e.path == p {
			flags |= e.flags
		}
	}

	if _, tracked := t.tracked[p]; !tracked && t.matcher != nil {
		if rel, ok := t.relative(p); ok && t.matcher.Match(splitPath(rel), false) {
			flags |= flagIgnored
		}
	}

	return flags
}

// dirFlags accumulates the flags of every path under the given prefix.
// Ignored status is the exception: it applies downward, so a directory
// under an ignored path is itself ignored.
func (t *statusTable) dirFlags(p string) stateFlags {
	var flags stateFlags
	for _, e := range t.entries {
		if e.flags&flagIgnored != 0 {
			if isPathPrefix(e.path, p) {
				flags |= e.flags
			}
		} else if isPathPrefix(p, e.path) {
			flags |= e.flags
		}
	}

	if t.matcher != nil && !t.hasTrackedUnder(p) {
		if rel, ok := t.relative(p); ok && t.matcher.Match(splitPath(rel), true) {
			flags |= flagIgnored
		}
	}

	return flags
}

// hasTrackedUnder reports whether any index entry lives at or under p.
// A directory holding tracked files is not ignorable as a whole, no
// matter what the ignore patterns say.
func (t *statusTable) hasTrackedUnder(p string) bool {
	for tracked := range t.tracked {
		if isPathPrefix(p, tracked) {
			return true
		}
	}
	return false
}

// relative rebases a filesystem path onto the repository working directory.
func (t *statusTable) relative(p string) (string, bool) {
	return relativeTo(t.workdir, p)
}

// HasInSubmodule reports whether the path falls inside one of the
// repository's submodules. Submodule paths are listed once and cached,
// including the failure case.
func (r *Repo) HasInSubmodule(p string) bool {
	p = normalizePath(p)

	r.subMu.RLock()
	loaded, subErr, subs := r.subLoaded, r.subErr, r.submodules
	r.subMu.RUnlock()

	if !loaded {
		r.subMu.Lock()
		if !r.subLoaded {
			r.loadSubmodulesLocked()
		}
		subErr, subs = r.subErr, r.submodules
		r.subMu.Unlock()
	}

	if subErr != nil {
		return false
	}

	rel, ok := relativeTo(r.workdir, p)
	if !ok {
		return false
	}
	for _, sub := range subs {
		if isPathPrefix(sub, rel) {
			return true
		}
	}
	return false
}

// loadSubmodulesLocked fetches submodule paths; callers hold subMu.
func (r *Repo) loadSubmodulesLocked() {
	r.subLoaded = true

	r.mu.Lock()
	subs, err := r.worktree.Submodules()
	r.mu.Unlock()
	if err != nil {
		r.logger.Debug("failed to list submodules", "workdir", r.workdir, "error", err)
		r.subErr = err
		return
	}

	for _, sub := range subs {
		r.submodules = append(r.submodules, normalizePath(sub.Config().Path))
	}
}

// Branch returns the name of the currently checked out branch.
// It returns an empty name without error when the repository has no
// commits yet, and ErrDetachedHead when HEAD is not on a branch.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) Branch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", WrapError(err, "context cancelled")
	}

	r.mu.Lock()
	head, err := r.repo.Head()
	r.mu.Unlock()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			// Unborn branch: the repository exists but has no commits.
			return "", nil
		}
		return "", WrapError(err, "failed to get HEAD reference")
	}

	if !head.Name().IsBranch() {
		return "", WrapError(ErrDetachedHead, "cannot resolve branch name")
	}

	return head.Name().Short(), nil
}

// ShortenBranch truncates long branch names for display: names longer than
// ten runes keep their first eight followed by "..".
func ShortenBranch(name string) string {
	runes := []rune(name)
	if len(runes) > shortBranchLimit {
		return string(runes[:8]) + ".."
	}
	return name
}

// relativeTo rebases p onto base. It returns false when p does not live
// under base.
func relativeTo(base, p string) (string, bool) {
	if base == "." {
		return p, true
	}
	if p == base {
		return ".", true
	}
	if !isPathPrefix(base, p) {
		return "", false
	}
	return p[len(base)+1:], true
}
