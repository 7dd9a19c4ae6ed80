package cli

import (
	"fmt"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
)

func cmdLsTree(args []string) error {
	fls := createFlagSet("ls-tree", "List the entries of a tree object.", "mygit ls-tree [--name-only] <40-hex>")
	nameOnly := fls.Bool("name-only", false, "print entry names only")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	if len(pos) != 1 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "ls-tree requires exactly one tree sha")
	}

	if !objects.IsValidSHA(pos[0]) {
		return mgerr.New(mgerr.UsageError, "malformed tree sha %q", pos[0])
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}
	payload, err := r.Store.GetTyped(pos[0], objects.Tree)
	if err != nil {
		return err
	}
	entries, err := objects.DecodeTree(payload)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if *nameOnly {
			fmt.Println(e.Name)
			continue
		}
		fmt.Printf("%s %s %s\t%s\n", e.Mode, e.EntryKind(), e.SHA, e.Name)
	}
	return nil
}
