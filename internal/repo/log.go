package repo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/refs"
)

// LogEntry is one parsed line of logs/HEAD.
type LogEntry struct {
	OldSHA    string
	NewSHA    string
	Committer string
	Timestamp int64
	Message   string
}

// Log returns every commit recorded in logs/HEAD, newest first
// (reverse file order), matching the original tool's displayCommitLog.
func (r *Repository) Log() ([]LogEntry, error) {
	lines, err := r.Refs.ReadLog()
	if err != nil {
		return nil, err
	}
	entries := make([]LogEntry, 0, len(lines))
	for _, line := range lines {
		e, err := parseLogLine(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func parseLogLine(line string) (LogEntry, error) {
	marker := " commit: "
	idx := strings.Index(line, marker)
	if idx == -1 {
		return LogEntry{}, mgerr.New(mgerr.CorruptObject, "malformed log line %q", line)
	}
	prefix := line[:idx]
	message := line[idx+len(marker):]

	fields := strings.Fields(prefix)
	if len(fields) < 4 {
		return LogEntry{}, mgerr.New(mgerr.CorruptObject, "malformed log line %q", line)
	}
	oldSHA := fields[0]
	newSHA := fields[1]
	tsStr := fields[len(fields)-1]
	committer := strings.Join(fields[2:len(fields)-1], " ")

	ts, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return LogEntry{}, mgerr.Wrap(mgerr.CorruptObject, err, "malformed log timestamp in %q", line)
	}

	return LogEntry{OldSHA: oldSHA, NewSHA: newSHA, Committer: committer, Timestamp: ts, Message: message}, nil
}

// FormatEntry renders one log entry the way `log` prints it: a
// Commit/Parent/Committer/Date/Message block, with Parent omitted for a
// root commit.
func FormatEntry(e LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Commit: %s\n", e.NewSHA)
	if e.OldSHA != refs.ZeroSHA {
		fmt.Fprintf(&b, "Parent: %s\n", e.OldSHA)
	}
	fmt.Fprintf(&b, "Committer: %s\n", e.Committer)
	fmt.Fprintf(&b, "Date: %s\n", time.Unix(e.Timestamp, 0).UTC().Format("Mon Jan 2 15:04:05 2006 -0700"))
	fmt.Fprintf(&b, "Message: %s\n", e.Message)
	return b.String()
}
