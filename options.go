// Package gitstatus provides cached Git status queries for file listings.
// This file contains the options shared by cache construction and
// subdirectory summaries.
package gitstatus

import (
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

const (
	// DefaultStorerCacheSize is the default size for the LRU object cache
	// used by repository storage.
	DefaultStorerCacheSize = 1000

	// GitDirEnv is the environment variable that, when set, names a Git
	// directory to open before any rootward search is attempted.
	GitDirEnv = "GIT_DIR"
)

// Options configures repository discovery and status scanning.
type Options struct {
	// FS is the REQUIRED native filesystem root (OS or in-memory).
	// All queried paths are interpreted relative to this root.
	FS fs.Filesystem

	// StorerCacheSize sets the LRU objects cache entries.
	// Higher values improve performance but use more memory.
	// Defaults to DefaultStorerCacheSize.
	StorerCacheSize int

	// Logger receives discovery and scan events at debug/info level.
	// If nil, logging is discarded.
	Logger *slog.Logger
}

// Validate checks that the Options are properly configured.
// It returns an error if required fields are missing or invalid.
func (o *Options) Validate() error {
	if o.FS == nil {
		return WrapError(ErrInvalidPath, "FS is required")
	}

	if o.StorerCacheSize < 0 {
		return WrapError(ErrInvalidPath, "StorerCacheSize cannot be negative")
	}

	return nil
}

// applyDefaults sets default values for any unset fields in Options.
func (o *Options) applyDefaults() {
	if o.StorerCacheSize == 0 {
		o.StorerCacheSize = DefaultStorerCacheSize
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}
