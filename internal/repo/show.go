package repo

import (
	"fmt"
	"strings"
	"time"
)

// Show resolves ref (an empty string or "HEAD" for the current commit)
// and renders its metadata plus the trivial diff against its parent's
// tree (or the empty tree, for a root commit).
func (r *Repository) Show(ref string) (string, error) {
	sha, err := r.ResolveCommitish(ref)
	if err != nil {
		return "", err
	}
	fields, err := r.readCommit(sha)
	if err != nil {
		return "", err
	}

	var parentTree string
	if fields.Parent != "" {
		parentFields, err := r.readCommit(fields.Parent)
		if err != nil {
			return "", err
		}
		parentTree = parentFields.Tree
	}

	diff, err := r.DiffTrees(parentTree, fields.Tree, "")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Commit: %s\n", sha)
	if fields.Parent != "" {
		fmt.Fprintf(&b, "Parent: %s\n", fields.Parent)
	}
	fmt.Fprintf(&b, "Committer: %s <%s>\n", fields.Committer.Name, fields.Committer.Email)
	fmt.Fprintf(&b, "Date: %s\n", time.Unix(fields.Committer.Timestamp, 0).UTC().Format("Mon Jan 2 15:04:05 2006 -0700"))
	fmt.Fprintf(&b, "Message: %s\n\n", fields.Message)
	for _, line := range diff {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
