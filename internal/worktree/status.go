package worktree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arjunkoli/mygit/internal/index"
	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/store"
)

// Code is one of the tri-state status classifications.
type Code int

const (
	Clean Code = iota
	Added
	AddedModified
	AddedDeleted
	Untracked
	DeletedUnstaged
	Deleted
	Modified
	ModifiedModified
	ModifiedUnstaged
)

func (c Code) String() string {
	switch c {
	case Added:
		return "added"
	case AddedModified:
		return "added_modified"
	case AddedDeleted:
		return "added_deleted"
	case Untracked:
		return "untracked"
	case DeletedUnstaged:
		return "deleted_unstaged"
	case Deleted:
		return "deleted"
	case Modified:
		return "modified"
	case ModifiedModified:
		return "modified_modified"
	case ModifiedUnstaged:
		return "modified_unstaged"
	default:
		return "clean"
	}
}

// Entry pairs a path with its computed status Code.
type Entry struct {
	Path string
	Code Code
}

// WorkingBlobHashes computes W: for every visible file under root, the
// SHA-1 of the canonical blob envelope of its current on-disk content,
// without writing anything to the object store.
func WorkingBlobHashes(root string) (map[string]string, error) {
	out := map[string]string{}
	err := WalkVisibleFiles(root, func(rel string) error {
		data, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return mgerr.Wrap(mgerr.IoError, err, "reading %s", rel)
		}
		out[rel] = objects.Hash(objects.Blob, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CommittedBlobHashes computes C: the blob hashes reachable from
// headCommit's tree, or an empty map if headCommit is empty (no
// commits yet).
func CommittedBlobHashes(s *store.Store, headCommit string) (map[string]string, error) {
	if headCommit == "" {
		return map[string]string{}, nil
	}
	payload, err := s.GetTyped(headCommit, objects.Commit)
	if err != nil {
		return nil, err
	}
	fields, err := objects.DecodeCommit(payload)
	if err != nil {
		return nil, err
	}
	flat, err := FlattenTree(s, fields.Tree)
	if err != nil {
		return nil, err
	}
	return BlobsOnly(flat), nil
}

// StagedBlobHashes computes I from the current index.
func StagedBlobHashes(idx *index.Index) map[string]string {
	out := map[string]string{}
	for _, e := range idx.Entries() {
		out[e.Path] = e.Hash
	}
	return out
}

// Classify computes the tri-state status of every path in C ∪ I ∪ W,
// following the status table exactly: presence in each map, plus the
// I==C and W==I (or W==C, for the C/W-only row) equality checks.
func Classify(committed, staged, working map[string]string) []Entry {
	paths := map[string]struct{}{}
	for p := range committed {
		paths[p] = struct{}{}
	}
	for p := range staged {
		paths[p] = struct{}{}
	}
	for p := range working {
		paths[p] = struct{}{}
	}

	var out []Entry
	for path := range paths {
		cHash, inC := committed[path]
		iHash, inI := staged[path]
		wHash, inW := working[path]

		var code Code
		switch {
		case !inC && inI && inW:
			if wHash == iHash {
				code = Added
			} else {
				code = AddedModified
			}
		case !inC && inI && !inW:
			code = AddedDeleted
		case !inC && !inI && inW:
			code = Untracked
		case inC && !inI && !inW:
			code = DeletedUnstaged
		case inC && inI && !inW:
			code = Deleted
		case inC && inI && inW:
			switch {
			case iHash != cHash && wHash == iHash:
				code = Modified
			case iHash != cHash && wHash != iHash:
				code = ModifiedModified
			case iHash == cHash && wHash != iHash:
				code = ModifiedUnstaged
			default: // iHash == cHash && wHash == iHash
				code = Clean
			}
		case inC && !inI && inW:
			if wHash != cHash {
				code = ModifiedUnstaged
			} else {
				code = Clean
			}
		default:
			continue
		}
		out = append(out, Entry{Path: path, Code: code})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
