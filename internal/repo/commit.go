package repo

import (
	"fmt"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
	"github.com/arjunkoli/mygit/internal/worktree"
)

// Commit builds a tree from the current index, serializes and stores a
// commit object, appends a reflog line, moves HEAD and
// refs/heads/master, and truncates the index. identity supplies both
// the author and committer lines; this module has no separate
// author-override surface.
//
// The reflog line is appended before HEAD/master are rewritten, per
// spec.md §4.6 step 4: a crash between the two leaves the log ahead of
// the ref rather than the reverse.
func (r *Repository) Commit(message string, identity objects.Identity) (string, error) {
	if r.Index.Len() == 0 {
		return "", mgerr.New(mgerr.NothingToCommit, "nothing staged for commit")
	}

	treeHash, err := worktree.WriteTreeFromIndex(r.Store, r.Index)
	if err != nil {
		return "", err
	}

	parent, err := r.Refs.ReadHEAD()
	if err != nil {
		return "", err
	}

	fields := objects.CommitFields{
		Tree:      treeHash,
		Parent:    parent,
		Author:    identity,
		Committer: identity,
		Message:   message,
	}
	payload := objects.EncodeCommit(fields)
	hash, err := r.Store.Put(objects.Commit, payload)
	if err != nil {
		return "", err
	}

	nameEmail := fmt.Sprintf("%s <%s>", identity.Name, identity.Email)
	if err := r.Refs.AppendLog(parent, hash, nameEmail, identity.Timestamp, message); err != nil {
		return "", err
	}

	if err := r.Refs.WriteHEAD(hash); err != nil {
		return "", err
	}
	if err := r.Refs.WriteMaster(hash); err != nil {
		return "", err
	}

	if err := r.Index.Clear(); err != nil {
		return "", err
	}
	return hash, nil
}
