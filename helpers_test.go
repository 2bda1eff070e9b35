package gitstatus

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	fsb "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus/internal/fsbridge"
)

// testSignature is the author used for all test commits.
var testSignature = object.Signature{
	Name:  "Test Author",
	Email: "test@example.com",
	When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

// testRepo holds a repository created directly through go-git, together
// with the filesystem it lives in. The library under test opens the same
// repository independently through discovery.
type testRepo struct {
	fs      *fsb.FS
	repo    *git.Repository
	wt      *git.Worktree
	workdir string
	ctx     context.Context
}

// setupTestRepo initializes a repository at workdir inside a fresh
// in-memory filesystem.
func setupTestRepo(t *testing.T, workdir string) *testRepo {
	t.Helper()

	memFS := fsb.NewInMemoryFS()
	return initRepoAt(t, memFS, workdir)
}

// initRepoAt initializes a repository at workdir inside an existing
// filesystem, so tests can host several repositories side by side.
func initRepoAt(t *testing.T, memFS *fsb.FS, workdir string) *testRepo {
	t.Helper()

	scoped, err := memFS.Raw().Chroot(workdir)
	require.NoError(t, err, "failed to chroot to workdir")

	dotGit, err := scoped.Chroot(".git")
	require.NoError(t, err, "failed to chroot to .git")

	storage := fsbridge.NewStorage(dotGit, DefaultStorerCacheSize)
	repo, err := git.Init(storage, scoped)
	require.NoError(t, err, "failed to initialize test repository")

	wt, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")

	return &testRepo{
		fs:      memFS,
		repo:    repo,
		wt:      wt,
		workdir: workdir,
		ctx:     context.Background(),
	}
}

// writeFile writes a file at a path relative to the repository workdir.
func (tr *testRepo) writeFile(t *testing.T, rel, content string) {
	t.Helper()

	err := tr.fs.WriteFile(joinPath(tr.workdir, rel), []byte(content), 0o666)
	require.NoError(t, err, "failed to write file %s", rel)
}

// add stages a path relative to the repository workdir.
func (tr *testRepo) add(t *testing.T, rel string) {
	t.Helper()

	_, err := tr.wt.Add(rel)
	require.NoError(t, err, "failed to add %s", rel)
}

// commit stages nothing and commits whatever is in the index.
func (tr *testRepo) commit(t *testing.T, msg string) plumbing.Hash {
	t.Helper()

	sig := testSignature
	hash, err := tr.wt.Commit(msg, &git.CommitOptions{
		Author:    &sig,
		Committer: &sig,
	})
	require.NoError(t, err, "failed to commit")
	return hash
}

// commitFile writes, stages, and commits a single file.
func (tr *testRepo) commitFile(t *testing.T, rel, content, msg string) plumbing.Hash {
	t.Helper()

	tr.writeFile(t, rel, content)
	tr.add(t, rel)
	return tr.commit(t, msg)
}

// detachHead points HEAD directly at the given commit.
func (tr *testRepo) detachHead(t *testing.T, hash plumbing.Hash) {
	t.Helper()

	err := tr.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash))
	require.NoError(t, err, "failed to detach HEAD")
}

// options returns library options for the repository's filesystem.
func (tr *testRepo) options() *Options {
	return &Options{FS: tr.fs}
}

// openRepo opens the test repository through the library's discovery path.
func (tr *testRepo) openRepo(t *testing.T) *Repo {
	t.Helper()

	opts := tr.options()
	require.NoError(t, opts.Validate())
	opts.applyDefaults()

	repo, err := discover(opts, tr.workdir)
	require.NoError(t, err, "discovery should find the test repository")
	return repo
}
