// Package index implements the staging index (component C5.1): a flat,
// newline-delimited text file mapping paths to staged blob hashes.
package index

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arjunkoli/mygit/internal/mgerr"
)

// Entry is one staged path with its mode and blob hash.
type Entry struct {
	Mode string
	Hash string
	Path string
}

// Index is the in-memory form of .mygit/index: one entry per path, at
// most one entry per path (spec invariant #5).
type Index struct {
	path    string // path to .mygit/index
	entries map[string]Entry
}

// Open loads path (typically .mygit/index) into memory. A missing file
// is treated as an empty index, matching the teacher's LoadIndex.
func Open(path string) (*Index, error) {
	idx := &Index{path: path, entries: map[string]Entry{}}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, mgerr.Wrap(mgerr.IoError, err, "opening index %s", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		e, ok := parseLine(line)
		if !ok {
			return nil, mgerr.New(mgerr.CorruptObject, "malformed index line %q", line)
		}
		// Duplicate paths: last entry wins.
		idx.entries[e.Path] = e
	}
	if err := sc.Err(); err != nil {
		return nil, mgerr.Wrap(mgerr.IoError, err, "reading index %s", path)
	}
	return idx, nil
}

// parseLine splits "<mode> <hash> <path>" where path is everything
// after the second space, so paths containing spaces round-trip.
func parseLine(line string) (Entry, bool) {
	first := strings.IndexByte(line, ' ')
	if first == -1 {
		return Entry{}, false
	}
	rest := line[first+1:]
	second := strings.IndexByte(rest, ' ')
	if second == -1 {
		return Entry{}, false
	}
	return Entry{
		Mode: line[:first],
		Hash: rest[:second],
		Path: rest[second+1:],
	}, true
}

// Entries returns the staged entries, sorted by path for deterministic
// output.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, 0, len(idx.entries))
	for _, e := range idx.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Get looks up a single staged path.
func (idx *Index) Get(path string) (Entry, bool) {
	e, ok := idx.entries[path]
	return e, ok
}

// Len reports how many paths are staged.
func (idx *Index) Len() int { return len(idx.entries) }

// Add stages or restages path with the given hash and mode, then
// persists the index. Callers must ensure path is not hidden.
func (idx *Index) Add(path, hash, mode string) error {
	idx.entries[path] = Entry{Mode: mode, Hash: hash, Path: path}
	return idx.flush()
}

// Remove drops path from the index and persists the change. It reports
// whether an entry was actually removed.
func (idx *Index) Remove(path string) (bool, error) {
	if _, ok := idx.entries[path]; !ok {
		return false, nil
	}
	delete(idx.entries, path)
	return true, idx.flush()
}

// Clear truncates the index to zero entries.
func (idx *Index) Clear() error {
	idx.entries = map[string]Entry{}
	return idx.flush()
}

func (idx *Index) flush() error {
	var buf strings.Builder
	for _, e := range idx.Entries() {
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Hash)
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte('\n')
	}
	if err := os.MkdirAll(filepath.Dir(idx.path), 0o755); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating index directory")
	}
	if err := os.WriteFile(idx.path, []byte(buf.String()), 0o644); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "writing index %s", idx.path)
	}
	return nil
}
