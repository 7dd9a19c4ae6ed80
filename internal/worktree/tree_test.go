package worktree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunkoli/mygit/internal/index"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/store"
)

func setupDir(t *testing.T) string {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dir", "b.txt"), []byte("world"), 0o644))
	return root
}

func TestWriteTreeIsDeterministic(t *testing.T) {
	root := setupDir(t)
	s := store.New(filepath.Join(t.TempDir(), ".mygit"))

	h1, err := WriteTree(s, root)
	require.NoError(t, err)
	h2, err := WriteTree(s, root)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestWriteTreeSkipsHiddenEntries(t *testing.T) {
	root := setupDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".mygit"), 0o755))
	s := store.New(filepath.Join(t.TempDir(), ".mygit"))

	hash, err := WriteTree(s, root)
	require.NoError(t, err)

	payload, err := s.GetTyped(hash, objects.Tree)
	require.NoError(t, err)
	entries, err := objects.DecodeTree(payload)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".mygit", e.Name)
	}
}

func TestRestoreTreeRoundTrip(t *testing.T) {
	src := setupDir(t)
	s := store.New(filepath.Join(t.TempDir(), ".mygit"))
	hash, err := WriteTree(s, src)
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, RestoreTree(s, hash, dest))

	got, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	got, err = os.ReadFile(filepath.Join(dest, "dir", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(got))
}

func TestWriteTreeFromIndexFlattensAndSortsByFullPath(t *testing.T) {
	mygitDir := filepath.Join(t.TempDir(), ".mygit")
	s := store.New(mygitDir)
	idx, err := index.Open(filepath.Join(mygitDir, "index"))
	require.NoError(t, err)

	aHash, err := s.Put(objects.Blob, []byte("hello"))
	require.NoError(t, err)
	bHash, err := s.Put(objects.Blob, []byte("world"))
	require.NoError(t, err)
	require.NoError(t, idx.Add("a.txt", aHash, objects.ModeFile))
	require.NoError(t, idx.Add("dir/b.txt", bHash, objects.ModeFile))

	treeHash, err := WriteTreeFromIndex(s, idx)
	require.NoError(t, err)

	payload, err := s.GetTyped(treeHash, objects.Tree)
	require.NoError(t, err)
	entries, err := objects.DecodeTree(payload)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "dir/b.txt", entries[1].Name)
}

func TestFlattenTreeAndBlobsOnly(t *testing.T) {
	root := setupDir(t)
	s := store.New(filepath.Join(t.TempDir(), ".mygit"))
	hash, err := WriteTree(s, root)
	require.NoError(t, err)

	flat, err := FlattenTree(s, hash)
	require.NoError(t, err)
	blobs := BlobsOnly(flat)

	assert.Contains(t, blobs, "a.txt")
	assert.Contains(t, blobs, "dir/b.txt")
	assert.NotContains(t, blobs, "dir")
}

func TestClearWorkingTreeKeepsMygit(t *testing.T) {
	root := setupDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".mygit"), 0o755))

	require.NoError(t, ClearWorkingTree(root, func(string, ...any) {}))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".mygit", entries[0].Name())
}
