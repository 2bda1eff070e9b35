// Package gitstatus provides cached Git status queries for file listings.
// This file contains path normalization and comparison helpers. All paths
// handled by this package are slash-separated paths within the configured
// filesystem root.
package gitstatus

import (
	"path"
	"strings"
)

// normalizePath cleans a filesystem path so that equal locations compare
// equal. Leading "./" segments are removed and the filesystem root is
// represented as ".".
func normalizePath(p string) string {
	cleaned := path.Clean(strings.TrimPrefix(p, "/"))
	if cleaned == "" {
		return "."
	}
	return cleaned
}

// isPathPrefix reports whether p is prefix itself or lives underneath it.
// Matching is component-wise: "src" is not a prefix of "srcdir/main.go".
func isPathPrefix(prefix, p string) bool {
	if prefix == "." {
		return true
	}
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// joinPath joins a repository working directory with a path relative to it.
func joinPath(workdir, rel string) string {
	if workdir == "." {
		return normalizePath(rel)
	}
	return path.Join(workdir, rel)
}

// splitPath splits a normalized path into its components for ignore
// pattern matching. The root path has no components.
func splitPath(p string) []string {
	if p == "." || p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// parentPath returns the parent of a normalized path, ending at ".".
func parentPath(p string) string {
	parent := path.Dir(p)
	if parent == p {
		return "."
	}
	return parent
}
