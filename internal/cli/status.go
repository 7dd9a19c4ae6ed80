package cli

import (
	"fmt"

	"github.com/arjunkoli/mygit/internal/worktree"
)

func cmdStatus(args []string) error {
	fls := createFlagSet("status", "Show staged, unstaged, and untracked changes.", "mygit status")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}

	r, root, err := openRepo()
	if err != nil {
		return err
	}
	head, err := r.Refs.ReadHEAD()
	if err != nil {
		return err
	}

	committed, err := worktree.CommittedBlobHashes(r.Store, head)
	if err != nil {
		return err
	}
	staged := worktree.StagedBlobHashes(r.Index)
	working, err := worktree.WorkingBlobHashes(root)
	if err != nil {
		return err
	}

	entries := worktree.Classify(committed, staged, working)

	printSection("Changes to be committed", entries, isStagedCode)
	printSection("Changes not staged for commit", entries, isUnstagedCode)
	printSection("Untracked files", entries, isUntrackedCode)
	return nil
}

func isStagedCode(c worktree.Code) bool {
	switch c {
	case worktree.Added, worktree.AddedModified, worktree.AddedDeleted, worktree.Deleted, worktree.Modified, worktree.ModifiedModified:
		return true
	default:
		return false
	}
}

func isUnstagedCode(c worktree.Code) bool {
	switch c {
	case worktree.DeletedUnstaged, worktree.ModifiedUnstaged, worktree.ModifiedModified, worktree.AddedModified:
		return true
	default:
		return false
	}
}

func isUntrackedCode(c worktree.Code) bool {
	return c == worktree.Untracked
}

func printSection(title string, entries []worktree.Entry, match func(worktree.Code) bool) {
	var lines []worktree.Entry
	for _, e := range entries {
		if e.Code != worktree.Clean && match(e.Code) {
			lines = append(lines, e)
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, e := range lines {
		fmt.Printf("\t%s: %s\n", e.Code, e.Path)
	}
	fmt.Println()
}
