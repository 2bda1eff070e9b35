// Package gitstatus provides cached Git status queries for file listings.
// This file contains repository discovery and the per-invocation cache.
package gitstatus

import (
	"context"
	"log/slog"
	"os"
)

// Cache holds the repositories discovered for a set of queried paths.
//
// It uses slices to avoid the overhead of hashing: the expected number of
// repositories per invocation is 0 or 1, so a linear scan is cheaper than
// a map.
type Cache struct {
	// repos is the list of discovered repositories and their paths.
	repos []*Repo

	// misses are paths confirmed to have no repository above them.
	misses []string

	logger *slog.Logger
}

// ScanPaths discovers the Git repositories covering the given paths and
// returns a Cache that answers status queries for them.
//
// When the GIT_DIR environment variable is set, that location is opened
// first without any rootward search, consistent with how git itself treats
// GIT_DIR. Each path is then searched rootward for a .git directory; paths
// that already resolved to a known repository or a known miss are skipped,
// and a discovery whose working directory matches an existing repository
// is merged into it.
//
// Discovery failures are not errors: they are recorded as misses so the
// same path is never searched twice. ScanPaths only fails for invalid
// options or a cancelled context.
func ScanPaths(ctx context.Context, opts *Options, paths ...string) (*Cache, error) {
	if err := opts.Validate(); err != nil {
		return nil, WrapError(err, "invalid options")
	}
	opts.applyDefaults()

	if err := ctx.Err(); err != nil {
		return nil, WrapError(err, "context cancelled")
	}

	cache := &Cache{
		repos:  make([]*Repo, 0, len(paths)),
		logger: opts.Logger,
	}

	if gitDir := os.Getenv(GitDirEnv); gitDir != "" {
		gitDir = normalizePath(gitDir)
		// The working tree is assumed to be the gitdir's parent. A detached
		// gitdir with a separate worktree (core.worktree) is not supported
		// and comes back as a miss.
		repo, err := openRepoAt(opts, gitDir, parentPath(gitDir), parentPath(gitDir))
		if err != nil {
			opts.Logger.Debug("failed to open GIT_DIR repository", "gitdir", gitDir, "error", err)
			cache.misses = append(cache.misses, gitDir)
		} else {
			opts.Logger.Debug("opened GIT_DIR repository", "workdir", repo.workdir)
			cache.repos = append(cache.repos, repo)
		}
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, WrapError(err, "context cancelled")
		}
		cache.scanPath(opts, normalizePath(p))
	}

	return cache, nil
}

// scanPath discovers the repository for one queried path.
func (c *Cache) scanPath(opts *Options, p string) {
	for _, miss := range c.misses {
		if miss == p {
			c.logger.Debug("skipping path, already came back gitless", "path", p)
			return
		}
	}

	for _, repo := range c.repos {
		if repo.ContainsPath(p) {
			c.logger.Debug("skipping path, repository already queried", "path", p)
			return
		}
	}

	repo, err := discover(opts, p)
	if err != nil {
		c.logger.Debug("no repository found", "path", p, "error", err)
		c.misses = append(c.misses, p)
		return
	}

	for _, existing := range c.repos {
		if existing.workdir == repo.workdir {
			c.logger.Debug("merging into existing repository", "workdir", existing.workdir, "path", p)
			existing.addExtraPath(p)
			return
		}
	}

	c.logger.Debug("discovered new repository", "workdir", repo.workdir, "path", p)
	c.repos = append(c.repos, repo)
}

// discover searches rootward from p for a directory containing .git and
// opens the repository found there. The queried path may name a file; the
// search starts from its containing directory.
func discover(opts *Options, p string) (*Repo, error) {
	dir := p
	if info, err := opts.FS.Stat(p); err == nil && !info.IsDir() {
		dir = parentPath(p)
	}

	for {
		gitDir := joinPath(dir, ".git")
		if info, err := opts.FS.Stat(gitDir); err == nil && info.IsDir() {
			return openRepoAt(opts, gitDir, dir, p)
		}

		parent := parentPath(dir)
		if parent == dir {
			return nil, WrapErrorf(ErrNoRepository, "no repository at or above %q", p)
		}
		dir = parent
	}
}

// HasAnythingFor reports whether any discovered repository covers the path.
func (c *Cache) HasAnythingFor(p string) bool {
	p = normalizePath(p)
	for _, repo := range c.repos {
		if repo.ContainsPath(p) {
			return true
		}
	}
	return false
}

// Get returns the status of a path, or the zero Status when no discovered
// repository covers it or the scan fails. With prefixLookup set it reports
// the aggregate status of the directory.
func (c *Cache) Get(ctx context.Context, p string, prefixLookup bool) Status {
	p = normalizePath(p)
	for _, repo := range c.repos {
		if !repo.ContainsPath(p) {
			continue
		}
		status, err := repo.Status(ctx, p, prefixLookup)
		if err != nil {
			c.logger.Debug("status lookup failed", "path", p, "error", err)
			return Status{}
		}
		return status
	}
	return Status{}
}

// HasInSubmodule reports whether the path falls inside a submodule of the
// repository covering it.
func (c *Cache) HasInSubmodule(p string) bool {
	p = normalizePath(p)
	for _, repo := range c.repos {
		if repo.ContainsPath(p) {
			return repo.HasInSubmodule(p)
		}
	}
	return false
}

// Repos returns the discovered repositories in discovery order.
func (c *Cache) Repos() []*Repo {
	return c.repos
}
