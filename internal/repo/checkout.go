package repo

import (
	"github.com/arjunkoli/mygit/internal/worktree"
)

// Checkout verifies commitRef names an existing commit, clears the
// working tree, restores the commit's tree into it, and moves HEAD.
// The index is deliberately left untouched, matching spec.md §4.6 and
// §9: callers wanting a clean index pair this with reset.
func (r *Repository) Checkout(commitRef string, warn func(format string, args ...any)) error {
	sha, err := r.ResolveCommitish(commitRef)
	if err != nil {
		return err
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
	return r.Refs.WriteHEAD(sha)
}
