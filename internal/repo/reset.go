package repo

import (
	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/worktree"
)

// Reset dispatches on args exactly as spec.md §4.6 and SPEC_FULL.md §5.4
// describe, grounded on the original tool's reset(args):
//
//   - no args: clear the index.
//   - "--hard" (with or without a trailing commit sha, defaulting to
//     HEAD): full working-tree restoration plus index clear; HEAD and
//     master both move to the target.
//   - a bare existing commit sha, no paths: move HEAD (and master) to
//     it and clear the index (soft-mixed).
//   - one or more paths, no commit sha, no --hard: remove each path
//     from the index, then re-add it from HEAD's tree if present there
//     (warning rather than failing when it is not).
//   - a commit sha combined with paths, without --hard: UsageError.
func (r *Repository) Reset(args []string, warn func(format string, args ...any)) error {
	var hard bool
	var target string
	var paths []string

	for _, a := range args {
		switch {
		case a == "--hard":
			hard = true
		case objects.IsValidSHA(a) && r.Store.Exists(a):
			if target != "" {
				return mgerr.New(mgerr.UsageError, "reset accepts at most one commit sha, got %q and %q", target, a)
			}
			target = a
		default:
			paths = append(paths, a)
		}
	}

	switch {
	case len(args) == 0:
		return r.Index.Clear()

	case hard:
		sha := target
		if sha == "" {
			head, err := r.Refs.ReadHEAD()
			if err != nil {
				return err
			}
			if head == "" {
				return mgerr.New(mgerr.NotFound, "HEAD has no commit yet")
			}
			sha = head
		}
		fields, err := r.readCommit(sha)
		if err != nil {
			return err
		}
		if err := worktree.ClearWorkingTree(r.Root, warn); err != nil {
			return err
		}
		if err := worktree.RestoreTree(r.Store, fields.Tree, r.Root); err != nil {
			return err
		}
		if err := r.Refs.WriteHEAD(sha); err != nil {
			return err
		}
		if err := r.Refs.WriteMaster(sha); err != nil {
			return err
		}
		return r.Index.Clear()

	case target != "" && len(paths) > 0:
		return mgerr.New(mgerr.UsageError, "cannot combine a commit sha with paths unless --hard is given")

	case target != "":
		if _, err := r.readCommit(target); err != nil {
			return err
		}
		if err := r.Refs.WriteHEAD(target); err != nil {
			return err
		}
		if err := r.Refs.WriteMaster(target); err != nil {
			return err
		}
		return r.Index.Clear()

	default: // path-level reset
		head, err := r.Refs.ReadHEAD()
		if err != nil {
			return err
		}
		var flat map[string]worktree.FlatEntry
		if head != "" {
			fields, err := r.readCommit(head)
			if err != nil {
				return err
			}
			flat, err = worktree.FlattenTree(r.Store, fields.Tree)
			if err != nil {
				return err
			}
		}
		for _, p := range paths {
			if _, err := r.Index.Remove(p); err != nil {
				return err
			}
			e, ok := flat[p]
			if !ok || e.EntryKind() != objects.Blob {
				warn("warning: %s is not present in HEAD, left unstaged", p)
				continue
			}
			if err := r.Index.Add(p, e.SHA, e.Mode); err != nil {
				return err
			}
		}
		return nil
	}
}
