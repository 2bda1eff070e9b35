package gitstatus

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "unmodified", Unmodified.String())
	assert.Equal(t, "new", New.String())
	assert.Equal(t, "conflicted", Conflicted.String())
	assert.Equal(t, "unknown", Code(99).String())
}

func TestCodeRune(t *testing.T) {
	assert.Equal(t, '-', Unmodified.Rune())
	assert.Equal(t, 'N', New.Rune())
	assert.Equal(t, 'M', Modified.Rune())
	assert.Equal(t, 'D', Deleted.Rune())
	assert.Equal(t, 'I', Ignored.Rune())
	assert.Equal(t, 'U', Conflicted.Rune())
}

func TestStatusIsInteresting(t *testing.T) {
	assert.False(t, Status{}.IsInteresting())
	assert.True(t, Status{Staged: New}.IsInteresting())
	assert.True(t, Status{Unstaged: Modified}.IsInteresting())
}

func TestFlagsForFile(t *testing.T) {
	tests := []struct {
		name     string
		staging  git.StatusCode
		worktree git.StatusCode
		want     Status
	}{
		{
			name:     "untracked file",
			staging:  git.Untracked,
			worktree: git.Untracked,
			want:     Status{Unstaged: New},
		},
		{
			name:     "staged new file",
			staging:  git.Added,
			worktree: git.Unmodified,
			want:     Status{Staged: New},
		},
		{
			name:     "staged and further modified",
			staging:  git.Modified,
			worktree: git.Modified,
			want:     Status{Staged: Modified, Unstaged: Modified},
		},
		{
			name:     "deleted from worktree",
			staging:  git.Unmodified,
			worktree: git.Deleted,
			want:     Status{Unstaged: Deleted},
		},
		{
			name:     "merge conflict",
			staging:  git.UpdatedButUnmerged,
			worktree: git.UpdatedButUnmerged,
			want:     Status{Unstaged: Conflicted},
		},
		{
			name:     "copied counts as new in index",
			staging:  git.Copied,
			worktree: git.Unmodified,
			want:     Status{Staged: New},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := flagsForFile(&git.FileStatus{Staging: tt.staging, Worktree: tt.worktree})
			assert.Equal(t, tt.want, statusFromFlags(flags))
		})
	}
}

func TestAggregationPriority(t *testing.T) {
	// A new path outranks a modified one on the same axis, whichever order
	// the flags accumulate in.
	a := flagWtModified | flagWtNew
	b := flagWtNew | flagWtModified
	assert.Equal(t, New, unstagedCode(a))
	assert.Equal(t, unstagedCode(a), unstagedCode(b))

	// Ignored only shows when nothing else is present.
	assert.Equal(t, Ignored, unstagedCode(flagIgnored))
	assert.Equal(t, Modified, unstagedCode(flagIgnored|flagWtModified))

	// The staged axis ignores worktree flags entirely.
	assert.Equal(t, Unmodified, stagedCode(flagWtNew|flagWtDeleted))
	assert.Equal(t, Deleted, stagedCode(flagIndexDeleted|flagIndexRenamed))
}
