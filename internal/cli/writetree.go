package cli

import (
	"fmt"

	"github.com/arjunkoli/mygit/internal/worktree"
)

func cmdWriteTree(args []string) error {
	fls := createFlagSet("write-tree", "Write a tree object from the current working directory.", "mygit write-tree")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}

	r, root, err := openRepo()
	if err != nil {
		return err
	}
	hash, err := worktree.WriteTree(r.Store, root)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
