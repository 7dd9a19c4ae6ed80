// Package refs implements HEAD and refs/heads/master (component C6's
// low-level primitives): reading and atomically rewriting the single
// line each of these files holds, plus the append-only reflog.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arjunkoli/mygit/internal/mgerr"
)

// ZeroSHA is the 40-zero placeholder used for a root commit's "old
// hash" in the reflog.
const ZeroSHA = "0000000000000000000000000000000000000000"

// Refs points at the fixed files under a .mygit directory.
type Refs struct {
	root string // path to .mygit
}

// New returns a Refs rooted at mygitDir.
func New(mygitDir string) *Refs {
	return &Refs{root: mygitDir}
}

func (r *Refs) headPath() string   { return filepath.Join(r.root, "HEAD") }
func (r *Refs) masterPath() string { return filepath.Join(r.root, "refs", "heads", "master") }
func (r *Refs) logPath() string    { return filepath.Join(r.root, "logs", "HEAD") }

// ReadHEAD returns the 40-hex commit SHA currently named by HEAD, or ""
// if no commit has been made yet.
func (r *Refs) ReadHEAD() (string, error) {
	data, err := os.ReadFile(r.headPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", mgerr.Wrap(mgerr.IoError, err, "reading HEAD")
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteHEAD atomically replaces HEAD's single line.
func (r *Refs) WriteHEAD(sha string) error {
	return atomicWriteLine(r.headPath(), sha)
}

// ReadMaster returns the commit SHA refs/heads/master currently points
// at, or "" if the branch has no commits yet.
func (r *Refs) ReadMaster() (string, error) {
	data, err := os.ReadFile(r.masterPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", mgerr.Wrap(mgerr.IoError, err, "reading refs/heads/master")
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteMaster atomically replaces refs/heads/master's single line.
func (r *Refs) WriteMaster(sha string) error {
	return atomicWriteLine(r.masterPath(), sha)
}

// AppendLog appends one reflog line, formatted as spec.md §3
// describes: "<old|zeros> <new> <committer-identity> <timestamp>
// commit: <message>", where only the message's first line is written.
// It is called before HEAD/master are rewritten,
// so a crash between the two leaves the log ahead of the ref rather
// than the reverse.
func (r *Refs) AppendLog(oldSHA, newSHA, committerIdentity string, timestamp int64, message string) error {
	if oldSHA == "" {
		oldSHA = ZeroSHA
	}
	firstLine := strings.SplitN(message, "\n", 2)[0]
	line := fmt.Sprintf("%s %s %s %d commit: %s\n", oldSHA, newSHA, committerIdentity, timestamp, firstLine)

	if err := os.MkdirAll(filepath.Dir(r.logPath()), 0o755); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating logs directory")
	}
	f, err := os.OpenFile(r.logPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "opening logs/HEAD")
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "appending to logs/HEAD")
	}
	return nil
}

// ReadLog returns the raw reflog lines in file order (oldest first).
func (r *Refs) ReadLog() ([]string, error) {
	data, err := os.ReadFile(r.logPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, mgerr.Wrap(mgerr.IoError, err, "reading logs/HEAD")
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func atomicWriteLine(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating directory for %s", path)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating temp file for %s", path)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return mgerr.Wrap(mgerr.IoError, err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return mgerr.Wrap(mgerr.IoError, err, "closing temp file for %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return mgerr.Wrap(mgerr.IoError, err, "installing %s", path)
	}
	return nil
}
