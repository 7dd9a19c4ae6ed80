package cli

import (
	"fmt"
	"os"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
)

func cmdCatFile(args []string) error {
	fls := createFlagSet("cat-file", "Print an object's content, size, or kind.", "mygit cat-file {-p|-s|-t} <40-hex>")
	p := fls.Bool("p", false, "pretty-print the object's content")
	s := fls.Bool("s", false, "print the object's payload size")
	t := fls.Bool("t", false, "print the object's kind")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	if len(pos) != 1 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "cat-file requires exactly one object sha")
	}
	if boolCount(*p, *s, *t) != 1 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "cat-file requires exactly one of -p, -s, -t")
	}

	if !objects.IsValidSHA(pos[0]) {
		return mgerr.New(mgerr.UsageError, "malformed object sha %q", pos[0])
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}
	kind, payload, err := r.Store.Get(pos[0])
	if err != nil {
		return err
	}

	switch {
	case *p:
		os.Stdout.Write(payload)
		if len(payload) == 0 || payload[len(payload)-1] != '\n' {
			fmt.Println()
		}
	case *s:
		fmt.Println(len(payload))
	case *t:
		fmt.Println(kind)
	}
	return nil
}

func boolCount(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
