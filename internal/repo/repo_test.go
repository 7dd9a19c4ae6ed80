package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/refs"
	"github.com/arjunkoli/mygit/internal/worktree"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, Init(root))
	r, err := Open(root)
	require.NoError(t, err)
	return r
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

// stage stages rel exactly the way the "add" command does: hash the
// current on-disk content into a blob, then record it in the index.
func stage(t *testing.T, r *Repository, rel string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Root, rel))
	require.NoError(t, err)
	hash, err := r.Store.Put(objects.Blob, data)
	require.NoError(t, err)
	require.NoError(t, r.Index.Add(rel, hash, objects.ModeFile))
}

func testIdentity() objects.Identity {
	return objects.Identity{Name: "Tester", Email: "tester@example.com", Timestamp: 1700000000, TZ: "+0000"}
}

func TestInitLayout(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Init(root))

	head, err := os.ReadFile(filepath.Join(root, MygitDirName, "HEAD"))
	require.NoError(t, err)
	assert.Empty(t, head)

	info, err := os.Stat(filepath.Join(root, MygitDirName, "index"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	for _, d := range []string{"objects", "refs/heads", "logs"} {
		info, err := os.Stat(filepath.Join(root, MygitDirName, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestInitRefusesExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Init(root))
	err := Init(root)
	assert.Equal(t, mgerr.UsageError, mgerr.KindOf(err))
}

func TestCommitEmptyIndexFails(t *testing.T) {
	r := newRepo(t)
	_, err := r.Commit("empty", testIdentity())
	assert.Equal(t, mgerr.NothingToCommit, mgerr.KindOf(err))
}

func TestCommitLogRoundTrip(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	writeFile(t, r.Root, "dir/b.txt", "world")
	stage(t, r, "a.txt")
	stage(t, r, "dir/b.txt")

	hash, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	head, err := r.Refs.ReadHEAD()
	require.NoError(t, err)
	assert.Equal(t, hash, head)

	master, err := r.Refs.ReadMaster()
	require.NoError(t, err)
	assert.Equal(t, hash, master)

	assert.Equal(t, 0, r.Index.Len())

	entries, err := r.Log()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, hash, entries[0].NewSHA)
	assert.Equal(t, refs.ZeroSHA, entries[0].OldSHA)
}

func TestStatusAfterCommitModification(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	writeFile(t, r.Root, "dir/b.txt", "world")
	stage(t, r, "a.txt")
	stage(t, r, "dir/b.txt")
	_, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	writeFile(t, r.Root, "a.txt", "hi")

	// Recompute status the way cmdStatus does.
	head, err := r.Refs.ReadHEAD()
	require.NoError(t, err)
	assert.NotEmpty(t, head)

	committed, err := worktree.CommittedBlobHashes(r.Store, head)
	require.NoError(t, err)
	working, err := worktree.WorkingBlobHashes(r.Root)
	require.NoError(t, err)
	entries := worktree.Classify(committed, worktree.StagedBlobHashes(r.Index), working)

	codes := map[string]worktree.Code{}
	for _, e := range entries {
		codes[e.Path] = e.Code
	}
	assert.Equal(t, worktree.ModifiedUnstaged, codes["a.txt"])
	assert.Equal(t, worktree.Clean, codes["dir/b.txt"])
}

func TestCheckoutRestoresWorkingTree(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	writeFile(t, r.Root, "dir/b.txt", "world")
	stage(t, r, "a.txt")
	stage(t, r, "dir/b.txt")
	hash, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(r.Root, "a.txt")))
	require.NoError(t, os.RemoveAll(filepath.Join(r.Root, "dir")))

	require.NoError(t, r.Checkout(hash, func(string, ...any) {}))

	got, err := os.ReadFile(filepath.Join(r.Root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	got, err = os.ReadFile(filepath.Join(r.Root, "dir", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(got))

	head, err := r.Refs.ReadHEAD()
	require.NoError(t, err)
	assert.Equal(t, hash, head)
}

func TestResetHardRestoresAndClearsIndex(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	writeFile(t, r.Root, "dir/b.txt", "world")
	stage(t, r, "a.txt")
	stage(t, r, "dir/b.txt")
	hash, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	writeFile(t, r.Root, "c.txt", "extra")
	stage(t, r, "c.txt")
	require.Equal(t, 1, r.Index.Len())

	require.NoError(t, r.Reset([]string{"--hard", hash}, func(string, ...any) {}))

	assert.Equal(t, 0, r.Index.Len())
	_, err = os.Stat(filepath.Join(r.Root, "c.txt"))
	assert.True(t, os.IsNotExist(err))

	got, err := os.ReadFile(filepath.Join(r.Root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestResetNoArgsClearsIndex(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	stage(t, r, "a.txt")
	require.NoError(t, r.Reset(nil, func(string, ...any) {}))
	assert.Equal(t, 0, r.Index.Len())
}

func TestResetPathLevel(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	stage(t, r, "a.txt")
	_, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	// Stage a further change, then path-reset it back to HEAD's blob.
	writeFile(t, r.Root, "a.txt", "changed")
	stage(t, r, "a.txt")

	require.NoError(t, r.Reset([]string{"a.txt"}, func(string, ...any) {}))

	e, ok := r.Index.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, objects.Hash(objects.Blob, []byte("hello")), e.Hash)
}

func TestResetShaWithPathsWithoutHardIsUsageError(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	stage(t, r, "a.txt")
	hash, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	err = r.Reset([]string{hash, "a.txt"}, func(string, ...any) {})
	assert.Equal(t, mgerr.UsageError, mgerr.KindOf(err))
}

func TestShowRootCommitDiffAddsFiles(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	stage(t, r, "a.txt")
	hash, err := r.Commit("init", testIdentity())
	require.NoError(t, err)

	out, err := r.Show(hash)
	require.NoError(t, err)
	assert.Contains(t, out, "new file mode")
	assert.Contains(t, out, "+hello")
}

func TestResolveCommitishHeadTilde(t *testing.T) {
	r := newRepo(t)
	writeFile(t, r.Root, "a.txt", "hello")
	stage(t, r, "a.txt")
	first, err := r.Commit("first", testIdentity())
	require.NoError(t, err)

	writeFile(t, r.Root, "a.txt", "hello2")
	stage(t, r, "a.txt")
	_, err = r.Commit("second", testIdentity())
	require.NoError(t, err)

	sha, err := r.ResolveCommitish("HEAD~1")
	require.NoError(t, err)
	assert.Equal(t, first, sha)
}
