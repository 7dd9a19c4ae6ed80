package cli

import (
	"fmt"

	"github.com/arjunkoli/mygit/internal/repo"
)

func cmdLog(args []string) error {
	fls := createFlagSet("log", "Print commit history, newest first.", "mygit log")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}
	entries, err := r.Log()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Print(repo.FormatEntry(e))
		fmt.Println()
	}
	return nil
}
