package repo

import (
	"strconv"
	"strings"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
)

// ResolveCommitish resolves ref to an existing commit hash. Accepted
// forms: "" or "HEAD" (the current commit), "HEAD~N"/"HEAD^N" (walk N
// parents back; since history here is strictly linear, "~" and "^"
// behave identically), or a bare 40-hex sha naming an existing commit.
func (r *Repository) ResolveCommitish(ref string) (string, error) {
	if ref == "" || ref == "HEAD" {
		sha, err := r.Refs.ReadHEAD()
		if err != nil {
			return "", err
		}
		if sha == "" {
			return "", mgerr.New(mgerr.NotFound, "HEAD has no commit yet")
		}
		return sha, nil
	}

	if strings.HasPrefix(ref, "HEAD~") || strings.HasPrefix(ref, "HEAD^") {
		numStr := ref[len("HEAD~"):]
		n := 1
		if numStr != "" {
			parsed, err := strconv.Atoi(numStr)
			if err != nil || parsed < 0 {
				return "", mgerr.New(mgerr.UsageError, "invalid commit-ish %q", ref)
			}
			n = parsed
		}
		sha, err := r.Refs.ReadHEAD()
		if err != nil {
			return "", err
		}
		for i := 0; i < n; i++ {
			if sha == "" {
				return "", mgerr.New(mgerr.NotFound, "%q has no such ancestor", ref)
			}
			fields, err := r.readCommit(sha)
			if err != nil {
				return "", err
			}
			sha = fields.Parent
		}
		if sha == "" {
			return "", mgerr.New(mgerr.NotFound, "%q has no such ancestor", ref)
		}
		return sha, nil
	}

	if !objects.IsValidSHA(ref) {
		return "", mgerr.New(mgerr.UsageError, "malformed commit sha %q", ref)
	}
	if !r.Store.Exists(ref) {
		return "", mgerr.New(mgerr.NotFound, "no such object %s", ref)
	}
	if _, err := r.readCommit(ref); err != nil {
		return "", err
	}
	return ref, nil
}

func (r *Repository) readCommit(sha string) (objects.CommitFields, error) {
	payload, err := r.Store.GetTyped(sha, objects.Commit)
	if err != nil {
		return objects.CommitFields{}, err
	}
	return objects.DecodeCommit(payload)
}
