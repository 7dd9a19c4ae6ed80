// Package worktree implements the algorithms that connect the object
// store and index to the filesystem: deriving trees from a working
// directory, restoring trees into one, and diffing (HEAD, index,
// working) into a tri-state status (component C5.2-C5.5).
package worktree

import (
	"io/fs"
	"path/filepath"

	"github.com/arjunkoli/mygit/internal/mgerr"
)

// MygitDirName is the repository metadata directory's fixed name.
const MygitDirName = ".mygit"

// IsHidden reports whether a path's basename marks it hidden: it
// starts with '.' or equals the repository directory name. This is the
// single hidden-path rule; write_tree, add, and status all call it
// instead of each re-deriving their own skip logic.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return base == MygitDirName || (len(base) > 0 && base[0] == '.')
}

// VisibleFile is one non-hidden regular file discovered under a root.
type VisibleFile struct {
	// Path is the slash-normalized path relative to root.
	Path string
}

// WalkVisibleFiles walks root, invoking fn for every non-hidden regular
// file, skipping every hidden directory (including root/.mygit)
// entirely rather than merely omitting its contents from the result.
func WalkVisibleFiles(root string, fn func(relPath string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return mgerr.Wrap(mgerr.IoError, err, "walking %s", path)
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return mgerr.Wrap(mgerr.IoError, err, "relativizing %s", path)
		}
		rel = filepath.ToSlash(rel)

		if IsHidden(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		return fn(rel)
	})
}
