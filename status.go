// Package gitstatus provides cached Git status queries for file listings.
// This file defines the status codes reported for files and directories.
package gitstatus

import "github.com/go-git/go-git/v5"

// Code represents the state of a path on a single status axis
// (index vs HEAD, or working tree vs index).
type Code int

const (
	// Unmodified indicates no change on this axis.
	Unmodified Code = iota

	// New indicates a newly added (index) or untracked (working tree) path.
	New

	// Modified indicates a content change.
	Modified

	// Deleted indicates a removed path.
	Deleted

	// Renamed indicates a moved path.
	Renamed

	// TypeChanged indicates a change in file type (e.g. file to symlink).
	TypeChanged

	// Ignored indicates the path matches an ignore pattern.
	// Only reported on the unstaged axis.
	Ignored

	// Conflicted indicates an unresolved merge conflict.
	// Only reported on the unstaged axis.
	Conflicted
)

// String returns a human-readable name for the Code.
func (c Code) String() string {
	switch c {
	case Unmodified:
		return "unmodified"
	case New:
		return "new"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	case TypeChanged:
		return "type-changed"
	case Ignored:
		return "ignored"
	case Conflicted:
		return "conflicted"
	default:
		return "unknown"
	}
}

// Rune returns the single-character marker used when rendering the Code
// in a listing column.
func (c Code) Rune() rune {
	switch c {
	case New:
		return 'N'
	case Modified:
		return 'M'
	case Deleted:
		return 'D'
	case Renamed:
		return 'R'
	case TypeChanged:
		return 'T'
	case Ignored:
		return 'I'
	case Conflicted:
		return 'U'
	default:
		return '-'
	}
}

// Status is the two-axis Git status of a path: what is staged in the index
// relative to HEAD, and what differs between the working tree and the index.
// The zero value means fully unmodified.
type Status struct {
	// Staged is the index state relative to HEAD.
	Staged Code

	// Unstaged is the working tree state relative to the index.
	Unstaged Code
}

// IsInteresting reports whether either axis carries a non-default state.
func (s Status) IsInteresting() bool {
	return s.Staged != Unmodified || s.Unstaged != Unmodified
}

// stateFlags is a bitmask of raw per-path states. Directory lookups OR the
// flags of every path under the prefix before mapping to a Status, so the
// aggregate is independent of accumulation order.
type stateFlags uint16

const (
	flagIndexNew stateFlags = 1 << iota
	flagIndexModified
	flagIndexDeleted
	flagIndexRenamed
	flagIndexTypeChanged
	flagWtNew
	flagWtModified
	flagWtDeleted
	flagWtRenamed
	flagWtTypeChanged
	flagIgnored
	flagConflicted
)

// flagsForFile converts a go-git per-file status into stateFlags.
func flagsForFile(fs *git.FileStatus) stateFlags {
	var flags stateFlags

	switch fs.Staging {
	case git.Added, git.Copied:
		flags |= flagIndexNew
	case git.Modified:
		flags |= flagIndexModified
	case git.Deleted:
		flags |= flagIndexDeleted
	case git.Renamed:
		flags |= flagIndexRenamed
	case git.UpdatedButUnmerged:
		flags |= flagConflicted
	}

	switch fs.Worktree {
	case git.Untracked:
		flags |= flagWtNew
	case git.Modified:
		flags |= flagWtModified
	case git.Deleted:
		flags |= flagWtDeleted
	case git.Renamed:
		flags |= flagWtRenamed
	case git.UpdatedButUnmerged:
		flags |= flagConflicted
	}

	return flags
}

// stagedCode maps accumulated flags to the staged axis.
// When several states are present, the most significant one wins.
func stagedCode(flags stateFlags) Code {
	switch {
	case flags&flagIndexNew != 0:
		return New
	case flags&flagIndexModified != 0:
		return Modified
	case flags&flagIndexDeleted != 0:
		return Deleted
	case flags&flagIndexRenamed != 0:
		return Renamed
	case flags&flagIndexTypeChanged != 0:
		return TypeChanged
	default:
		return Unmodified
	}
}

// unstagedCode maps accumulated flags to the unstaged axis.
// When several states are present, the most significant one wins.
func unstagedCode(flags stateFlags) Code {
	switch {
	case flags&flagWtNew != 0:
		return New
	case flags&flagWtModified != 0:
		return Modified
	case flags&flagWtDeleted != 0:
		return Deleted
	case flags&flagWtRenamed != 0:
		return Renamed
	case flags&flagWtTypeChanged != 0:
		return TypeChanged
	case flags&flagIgnored != 0:
		return Ignored
	case flags&flagConflicted != 0:
		return Conflicted
	default:
		return Unmodified
	}
}

// statusFromFlags maps accumulated flags to both axes.
func statusFromFlags(flags stateFlags) Status {
	return Status{
		Staged:   stagedCode(flags),
		Unstaged: unstagedCode(flags),
	}
}
