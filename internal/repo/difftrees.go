package repo

import (
	"fmt"
	"strings"

	"github.com/arjunkoli/mygit/internal/objects"
)

// DiffTrees compares oldTree and newTree (either may be "" for the
// empty tree) and returns the trivial, non-hunked diff lines described
// in spec.md §4.6: for each name in the union of entries, classify as
// added, deleted, or modified; blob diffs print a unified-diff-style
// preamble followed by whole-file old-then-new content; tree entries
// recurse with an extended prefix and contribute no header of their
// own.
func (r *Repository) DiffTrees(oldTree, newTree, prefix string) ([]string, error) {
	oldEntries, err := r.treeEntryMap(oldTree)
	if err != nil {
		return nil, err
	}
	newEntries, err := r.treeEntryMap(newTree)
	if err != nil {
		return nil, err
	}

	names := map[string]struct{}{}
	for n := range oldEntries {
		names[n] = struct{}{}
	}
	for n := range newEntries {
		names[n] = struct{}{}
	}

	var out []string
	for name := range names {
		oldE, inOld := oldEntries[name]
		newE, inNew := newEntries[name]
		path := name
		if prefix != "" {
			path = prefix + "/" + name
		}

		switch {
		case inOld && oldE.EntryKind() == objects.Tree && inNew && newE.EntryKind() == objects.Tree:
			if oldE.SHA == newE.SHA {
				continue
			}
			lines, err := r.DiffTrees(oldE.SHA, newE.SHA, path)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		case inOld && oldE.EntryKind() == objects.Tree && !inNew:
			lines, err := r.DiffTrees(oldE.SHA, "", path)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		case !inOld && inNew && newE.EntryKind() == objects.Tree:
			lines, err := r.DiffTrees("", newE.SHA, path)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		case !inOld && inNew: // added blob
			content, err := r.Store.GetTyped(newE.SHA, objects.Blob)
			if err != nil {
				return nil, err
			}
			out = append(out, blobAddedDiff(path, newE, content)...)
		case inOld && !inNew: // deleted blob
			content, err := r.Store.GetTyped(oldE.SHA, objects.Blob)
			if err != nil {
				return nil, err
			}
			out = append(out, blobDeletedDiff(path, oldE, content)...)
		case oldE.SHA != newE.SHA: // modified blob
			oldContent, err := r.Store.GetTyped(oldE.SHA, objects.Blob)
			if err != nil {
				return nil, err
			}
			newContent, err := r.Store.GetTyped(newE.SHA, objects.Blob)
			if err != nil {
				return nil, err
			}
			out = append(out, blobModifiedDiff(path, oldE, newE, oldContent, newContent)...)
		}
	}
	return out, nil
}

func (r *Repository) treeEntryMap(treeHash string) (map[string]objects.TreeEntry, error) {
	out := map[string]objects.TreeEntry{}
	if treeHash == "" {
		return out, nil
	}
	payload, err := r.Store.GetTyped(treeHash, objects.Tree)
	if err != nil {
		return nil, err
	}
	entries, err := objects.DecodeTree(payload)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		out[e.Name] = e
	}
	return out, nil
}

func short(sha string) string {
	if len(sha) < 7 {
		return sha
	}
	return sha[:7]
}

func contentLines(prefix string, data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = prefix + p
	}
	return out
}

func blobAddedDiff(path string, e objects.TreeEntry, content []byte) []string {
	out := []string{
		fmt.Sprintf("diff --git a/%s b/%s", path, path),
		fmt.Sprintf("new file mode %s", e.Mode),
		fmt.Sprintf("index 0000000..%s", short(e.SHA)),
		"--- /dev/null",
		fmt.Sprintf("+++ b/%s", path),
	}
	return append(out, contentLines("+", content)...)
}

func blobDeletedDiff(path string, e objects.TreeEntry, content []byte) []string {
	out := []string{
		fmt.Sprintf("diff --git a/%s b/%s", path, path),
		fmt.Sprintf("deleted file mode %s", e.Mode),
		fmt.Sprintf("index %s..0000000", short(e.SHA)),
		fmt.Sprintf("--- a/%s", path),
		"+++ /dev/null",
	}
	return append(out, contentLines("-", content)...)
}

func blobModifiedDiff(path string, oldE, newE objects.TreeEntry, oldContent, newContent []byte) []string {
	out := []string{
		fmt.Sprintf("diff --git a/%s b/%s", path, path),
		fmt.Sprintf("index %s..%s %s", short(oldE.SHA), short(newE.SHA), newE.Mode),
		fmt.Sprintf("--- a/%s", path),
		fmt.Sprintf("+++ b/%s", path),
	}
	out = append(out, contentLines("-", oldContent)...)
	out = append(out, contentLines("+", newContent)...)
	return out
}
