// Command mygit is the CLI entry point, dispatching its first argument
// to internal/cli exactly as the teacher's cmd/app.go dispatches to
// its porcelain package.
package main

import (
	"os"

	"github.com/arjunkoli/mygit/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
