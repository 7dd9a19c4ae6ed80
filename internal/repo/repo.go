// Package repo implements the reference & history component (C6): a
// single Repository handle threading the object store, index, and refs
// through init/commit/log/show/checkout/reset, replacing the teacher's
// process-wide cwd-and-globals approach per the design note that a
// rearchitected core should thread one handle through every operation.
package repo

import (
	"os"
	"path/filepath"

	"github.com/arjunkoli/mygit/internal/index"
	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/refs"
	"github.com/arjunkoli/mygit/internal/store"
)

// MygitDirName is the repository metadata directory's fixed name.
const MygitDirName = ".mygit"

// Repository bundles a working-tree root with its object store, staging
// index, and ref files.
type Repository struct {
	Root     string // working-tree root, normally the cwd
	MygitDir string // Root/.mygit
	Store    *store.Store
	Index    *index.Index
	Refs     *refs.Refs
}

// Open loads an existing repository rooted at root. It fails with
// NotARepo if root/.mygit does not exist.
func Open(root string) (*Repository, error) {
	mygitDir := filepath.Join(root, MygitDirName)
	info, err := os.Stat(mygitDir)
	if err != nil || !info.IsDir() {
		return nil, mgerr.New(mgerr.NotARepo, "not a mygit repository: %s has no %s directory", root, MygitDirName)
	}

	idx, err := index.Open(filepath.Join(mygitDir, "index"))
	if err != nil {
		return nil, err
	}

	return &Repository{
		Root:     root,
		MygitDir: mygitDir,
		Store:    store.New(mygitDir),
		Index:    idx,
		Refs:     refs.New(mygitDir),
	}, nil
}

// Init creates a fresh .mygit directory under root: objects/,
// refs/heads/, refs/tags/, logs/, plus empty HEAD and index files. It
// refuses (UsageError) if .mygit already exists, matching the teacher's
// idempotence check in porcelain's init handler.
func Init(root string) error {
	mygitDir := filepath.Join(root, MygitDirName)
	if _, err := os.Stat(mygitDir); err == nil {
		return mgerr.New(mgerr.UsageError, "%s already exists", mygitDir)
	}

	dirs := []string{
		filepath.Join(mygitDir, "objects"),
		filepath.Join(mygitDir, "refs", "heads"),
		filepath.Join(mygitDir, "refs", "tags"),
		filepath.Join(mygitDir, "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return mgerr.Wrap(mgerr.IoError, err, "creating %s", d)
		}
	}

	if err := os.WriteFile(filepath.Join(mygitDir, "HEAD"), nil, 0o644); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating HEAD")
	}
	if err := os.WriteFile(filepath.Join(mygitDir, "index"), nil, 0o644); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "creating index")
	}
	return nil
}
