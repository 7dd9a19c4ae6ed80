package worktree

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/arjunkoli/mygit/internal/index"
	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/store"
)

// WriteTree recursively walks dir, skipping hidden entries, and
// materializes it into a tree object. Regular files become blobs
// (mode 100644); subdirectories recurse into subtrees (mode 40000).
// Two invocations against an unchanged directory return the same hash.
func WriteTree(s *store.Store, dir string) (string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", mgerr.Wrap(mgerr.IoError, err, "reading directory %s", dir)
	}

	var entries []objects.TreeEntry
	for _, de := range dirEntries {
		if IsHidden(de.Name()) {
			continue
		}
		child := filepath.Join(dir, de.Name())

		if de.IsDir() {
			sha, err := WriteTree(s, child)
			if err != nil {
				return "", err
			}
			entries = append(entries, objects.TreeEntry{Mode: objects.ModeTree, Name: de.Name(), SHA: sha})
			continue
		}

		data, err := os.ReadFile(child)
		if err != nil {
			return "", mgerr.Wrap(mgerr.IoError, err, "reading file %s", child)
		}
		sha, err := s.Put(objects.Blob, data)
		if err != nil {
			return "", err
		}
		entries = append(entries, objects.TreeEntry{Mode: objects.ModeFile, Name: de.Name(), SHA: sha})
	}

	objects.SortTreeEntries(entries)
	payload, err := objects.EncodeTree(entries)
	if err != nil {
		return "", err
	}
	return s.Put(objects.Tree, payload)
}

// WriteTreeFromIndex builds a single, flat tree object directly from
// the staged index entries: unlike WriteTree, it does not recurse into
// a directory hierarchy. Entries are sorted ascending by their full
// staged path and stored verbatim as tree entry names, slashes and
// all - a deliberately distinct algorithm from WriteTree, matching the
// two entry points the object/tree design calls out as intentionally
// separate. commit uses this variant. Because entry names here are
// full paths rather than single path components, this tree's payload
// does not satisfy the "no '/' in entry names" invariant that WriteTree
// and objects.EncodeTree enforce for ordinary trees (DecodeTree reads
// such names back unchanged); it is written directly
// rather than through objects.EncodeTree for that reason.
func WriteTreeFromIndex(s *store.Store, idx *index.Index) (string, error) {
	entries := idx.Entries() // already sorted ascending by full path

	var buf bytes.Buffer
	for _, e := range entries {
		raw, err := objects.HexToBytes(e.Hash)
		if err != nil || len(raw) != 20 {
			return "", mgerr.New(mgerr.CorruptObject, "index entry %q has an invalid sha %q", e.Path, e.Hash)
		}
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte(0)
		buf.Write(raw)
	}
	return s.Put(objects.Tree, buf.Bytes())
}

// RestoreTree recursively extracts the tree named by treeHash into
// destDir, overwriting any existing files. Symbolic links and other
// special files are out of scope: only blob and tree entries are
// handled.
func RestoreTree(s *store.Store, treeHash, destDir string) error {
	payload, err := s.GetTyped(treeHash, objects.Tree)
	if err != nil {
		return err
	}
	entries, err := objects.DecodeTree(payload)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating directory %s", destDir)
	}

	for _, e := range entries {
		target := filepath.Join(destDir, e.Name)
		switch e.EntryKind() {
		case objects.Tree:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return mgerr.Wrap(mgerr.IoError, err, "creating directory %s", target)
			}
			if err := RestoreTree(s, e.SHA, target); err != nil {
				return err
			}
		default: // blob
			data, err := s.GetTyped(e.SHA, objects.Blob)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return mgerr.Wrap(mgerr.IoError, err, "creating directory %s", filepath.Dir(target))
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return mgerr.Wrap(mgerr.IoError, err, "writing file %s", target)
			}
		}
	}
	return nil
}

// ClearWorkingTree removes every entry in root except the repository
// metadata directory. Used only by checkout and hard reset. Individual
// removal failures are reported as warnings on stderr by the caller;
// ClearWorkingTree itself keeps going rather than aborting partway.
func ClearWorkingTree(root string, warn func(format string, args ...any)) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "reading directory %s", root)
	}
	for _, e := range entries {
		if e.Name() == MygitDirName {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			warn("warning: could not remove %s: %s", e.Name(), err)
		}
	}
	return nil
}

// FlatEntry is one path discovered while flattening a tree, keyed by
// its full slash-joined path from the tree root.
type FlatEntry struct {
	Path string
	objects.TreeEntry
}

// FlattenTree recursively walks a tree object and returns every entry
// (blobs and subtrees) keyed by its full path, mirroring how the index
// represents paths.
func FlattenTree(s *store.Store, treeHash string) (map[string]FlatEntry, error) {
	out := map[string]FlatEntry{}
	if err := flattenInto(s, treeHash, "", out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(s *store.Store, treeHash, prefix string, out map[string]FlatEntry) error {
	payload, err := s.GetTyped(treeHash, objects.Tree)
	if err != nil {
		return err
	}
	entries, err := objects.DecodeTree(payload)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	for _, e := range entries {
		path := e.Name
		if prefix != "" {
			path = prefix + "/" + e.Name
		}
		out[path] = FlatEntry{Path: path, TreeEntry: e}
		if e.EntryKind() == objects.Tree {
			if err := flattenInto(s, e.SHA, path, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// BlobsOnly filters a flattened tree map down to just the blob paths,
// the shape the index and status computations need.
func BlobsOnly(flat map[string]FlatEntry) map[string]string {
	out := make(map[string]string, len(flat))
	for path, e := range flat {
		if e.EntryKind() == objects.Blob {
			out[path] = e.SHA
		}
	}
	return out
}
