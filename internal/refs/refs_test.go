package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadReadWriteRoundTrip(t *testing.T) {
	r := New(t.TempDir())

	sha, err := r.ReadHEAD()
	require.NoError(t, err)
	assert.Empty(t, sha)

	require.NoError(t, r.WriteHEAD("b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0"))
	sha, err = r.ReadHEAD()
	require.NoError(t, err)
	assert.Equal(t, "b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0", sha)
}

func TestMasterReadWriteRoundTrip(t *testing.T) {
	r := New(t.TempDir())
	require.NoError(t, r.WriteMaster("b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0"))
	sha, err := r.ReadMaster()
	require.NoError(t, err)
	assert.Equal(t, "b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0", sha)
}

func TestAppendLogAndReadLog(t *testing.T) {
	r := New(t.TempDir())
	require.NoError(t, r.AppendLog("", "newsha1234567890123456789012345678901234", "A <a@example.com>", 1000, "first commit\nextra body"))
	require.NoError(t, r.AppendLog("newsha1234567890123456789012345678901234", "newsha2234567890123456789012345678901234", "A <a@example.com>", 2000, "second commit"))

	lines, err := r.ReadLog()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], ZeroSHA)
	assert.Contains(t, lines[0], "commit: first commit")
	assert.NotContains(t, lines[0], "extra body")
	assert.Contains(t, lines[1], "commit: second commit")
}

func TestReadLogMissingFileIsEmpty(t *testing.T) {
	r := New(t.TempDir())
	lines, err := r.ReadLog()
	require.NoError(t, err)
	assert.Empty(t, lines)
}
