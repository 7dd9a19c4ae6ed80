package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestScenarioInitEmptyRepo(t *testing.T) {
	chdirTemp(t)
	require.Equal(t, 0, Run([]string{"init"}))

	head, err := os.ReadFile(".mygit/HEAD")
	require.NoError(t, err)
	assert.Empty(t, head)

	info, err := os.Stat(".mygit/index")
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	for _, d := range []string{".mygit/objects", ".mygit/refs/heads", ".mygit/logs"} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestScenarioBlobHashing(t *testing.T) {
	chdirTemp(t)
	require.Equal(t, 0, Run([]string{"init"}))
	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0o644))

	require.Equal(t, 0, Run([]string{"hash-object", "-w", "a.txt"}))

	objPath := filepath.Join(".mygit", "objects", "b6", "fc4c620b67d95f953a5c1c1230aaab5db5a1b0")
	_, err := os.Stat(objPath)
	require.NoError(t, err)
}

func TestScenarioAddCommitLog(t *testing.T) {
	chdirTemp(t)
	require.Equal(t, 0, Run([]string{"init"}))
	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0o644))
	require.NoError(t, os.MkdirAll("dir", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("dir", "b.txt"), []byte("world"), 0o644))

	require.Equal(t, 0, Run([]string{"add", "."}))
	require.Equal(t, 0, Run([]string{"commit", "-m", "init"}))

	head, err := os.ReadFile(".mygit/HEAD")
	require.NoError(t, err)
	h := strings.TrimSpace(string(head))
	require.NotEmpty(t, h)

	r, _, err := openRepo()
	require.NoError(t, err)
	entries, err := r.Log()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, h, entries[0].NewSHA)
}

func TestScenarioCheckoutRestoration(t *testing.T) {
	chdirTemp(t)
	require.Equal(t, 0, Run([]string{"init"}))
	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0o644))
	require.NoError(t, os.MkdirAll("dir", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("dir", "b.txt"), []byte("world"), 0o644))
	require.Equal(t, 0, Run([]string{"add", "."}))
	require.Equal(t, 0, Run([]string{"commit", "-m", "init"}))

	head, err := os.ReadFile(".mygit/HEAD")
	require.NoError(t, err)
	h := strings.TrimSpace(string(head))

	require.NoError(t, os.Remove("a.txt"))
	require.NoError(t, os.RemoveAll("dir"))

	require.Equal(t, 0, Run([]string{"checkout", h}))

	got, err := os.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	got, err = os.ReadFile(filepath.Join("dir", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(got))
}

func TestScenarioHardReset(t *testing.T) {
	chdirTemp(t)
	require.Equal(t, 0, Run([]string{"init"}))
	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0o644))
	require.NoError(t, os.MkdirAll("dir", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("dir", "b.txt"), []byte("world"), 0o644))
	require.Equal(t, 0, Run([]string{"add", "."}))
	require.Equal(t, 0, Run([]string{"commit", "-m", "init"}))

	head, err := os.ReadFile(".mygit/HEAD")
	require.NoError(t, err)
	h := strings.TrimSpace(string(head))

	require.NoError(t, os.WriteFile("c.txt", []byte("extra"), 0o644))
	require.Equal(t, 0, Run([]string{"add", "c.txt"}))

	require.Equal(t, 0, Run([]string{"reset", "--hard", h}))

	idx, err := os.ReadFile(".mygit/index")
	require.NoError(t, err)
	assert.Empty(t, string(idx))

	_, err = os.Stat("c.txt")
	assert.True(t, os.IsNotExist(err))

	got, err := os.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestCommandNotFoundExitsNonZero(t *testing.T) {
	chdirTemp(t)
	require.Equal(t, 0, Run([]string{"init"}))
	assert.NotEqual(t, 0, Run([]string{"bogus"}))
}

func TestCommandOutsideRepoExitsNonZero(t *testing.T) {
	chdirTemp(t)
	assert.NotEqual(t, 0, Run([]string{"status"}))
}
