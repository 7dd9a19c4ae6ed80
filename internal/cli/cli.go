// Package cli implements the command vocabulary from spec.md §6: one
// flag.FlagSet-based handler per subcommand, dispatched from
// cmd/mygit's main, in the same shape as the teacher's
// cmd/app.go-plus-porcelain split, generalized to cover every command
// the spec names (including log, show, and reset, which the teacher
// never finished).
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/repo"
)

const (
	resetColor = "\033[0m"
	boldColor  = "\033[1m"
	greenColor = "\033[32m"
)

// createFlagSet builds a flag.FlagSet whose Usage prints a
// description/usage banner in the teacher's bold/green ANSI style.
func createFlagSet(name, desc, usage string) *flag.FlagSet {
	fls := flag.NewFlagSet(name, flag.ContinueOnError)
	fls.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n%sDescription:%s\n\n\t%s\n\n", boldColor, resetColor, desc)
		fmt.Fprintf(os.Stderr, "%sUsage: %s%s%s\n\n", boldColor, greenColor, usage, resetColor)
		fls.PrintDefaults()
	}
	return fls
}

// commands maps each spec.md §6 command name (plus the ambient
// "config" addition) to its handler.
var commands = map[string]func(args []string) error{
	"init":        cmdInit,
	"hash-object": cmdHashObject,
	"cat-file":    cmdCatFile,
	"add":         cmdAdd,
	"write-tree":  cmdWriteTree,
	"ls-tree":     cmdLsTree,
	"commit":      cmdCommit,
	"log":         cmdLog,
	"status":      cmdStatus,
	"show":        cmdShow,
	"checkout":    cmdCheckout,
	"reset":       cmdReset,
	"config":      cmdConfig,
	"help":        cmdHelp,
}

// Run dispatches args[0] (the subcommand) to its handler and returns
// the process exit code, printing a one-line diagnostic to stderr on
// failure per spec.md §7's propagation policy.
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "mygit: command cannot be empty. See 'mygit help' for available commands.")
		fmt.Fprintln(os.Stderr, "usage: mygit <command> [<args>]")
		return 1
	}

	handler, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "mygit: '%s' is not a mygit command. See 'mygit help' for available commands.\n", args[0])
		fmt.Fprintln(os.Stderr, "usage: mygit <command> [<args>]")
		return 1
	}

	if err := handler(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "mygit: %s\n", err)
		return 1
	}
	return 0
}

// openRepo opens the repository rooted at the current working
// directory. Every command but init, help, and hash-object without -w
// requires one.
func openRepo() (*repo.Repository, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", mgerr.Wrap(mgerr.IoError, err, "getting working directory")
	}
	r, err := repo.Open(cwd)
	if err != nil {
		return nil, "", err
	}
	return r, cwd, nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
