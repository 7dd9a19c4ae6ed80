package cli

import (
	"os"
	"path/filepath"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/repo"
	"github.com/arjunkoli/mygit/internal/worktree"
)

func cmdAdd(args []string) error {
	fls := createFlagSet("add", "Stage files, a directory, or the whole working tree for the next commit.", "mygit add <path...>")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	if len(pos) == 0 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "add requires at least one path")
	}

	r, root, err := openRepo()
	if err != nil {
		return err
	}
	for _, p := range pos {
		if err := addPath(r, root, filepath.ToSlash(filepath.Clean(p))); err != nil {
			return err
		}
	}
	return nil
}

func addPath(r *repo.Repository, root, relArg string) error {
	full := filepath.Join(root, relArg)
	info, err := os.Stat(full)
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "stat %s", relArg)
	}

	if relArg != "." && worktree.IsHidden(relArg) {
		warnf("warning: skipping hidden path %s", relArg)
		return nil
	}

	if info.IsDir() {
		return worktree.WalkVisibleFiles(full, func(rel string) error {
			repoPath := rel
			if relArg != "." {
				repoPath = filepath.ToSlash(filepath.Join(relArg, rel))
			}
			return stageFile(r, root, repoPath)
		})
	}

	return stageFile(r, root, relArg)
}

func stageFile(r *repo.Repository, root, repoRelPath string) error {
	data, err := os.ReadFile(filepath.Join(root, repoRelPath))
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "reading %s", repoRelPath)
	}
	hash, err := r.Store.Put(objects.Blob, data)
	if err != nil {
		return err
	}
	return r.Index.Add(repoRelPath, hash, objects.ModeFile)
}
