// Package fsbridge adapts the project filesystem abstraction to the
// billy.Filesystem interface that go-git repositories are opened on.
package fsbridge

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// minStorerCacheSize is the fallback when callers pass a non-positive size.
const minStorerCacheSize = 100

// NewStorage creates git object storage on the given filesystem with an
// LRU object cache. A status scan touches many objects of the same tree,
// so the cache pays for itself on the first repository walk.
func NewStorage(billyFS billy.Filesystem, cacheSize int) *filesystem.Storage {
	if cacheSize <= 0 {
		cacheSize = minStorerCacheSize
	}

	objCache := cache.NewObjectLRU(cache.FileSize(cacheSize))
	return filesystem.NewStorage(billyFS, objCache)
}
