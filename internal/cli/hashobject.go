package cli

import (
	"fmt"
	"os"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
)

func cmdHashObject(args []string) error {
	fls := createFlagSet("hash-object", "Compute the object id for a file, optionally storing it as a blob.", "mygit hash-object [-w] <file>")
	write := fls.Bool("w", false, "write the object into the store")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	if len(pos) != 1 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "hash-object requires exactly one file argument")
	}

	data, err := os.ReadFile(pos[0])
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "reading %s", pos[0])
	}

	if *write {
		r, _, err := openRepo()
		if err != nil {
			return err
		}
		hash, err := r.Store.Put(objects.Blob, data)
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	}

	fmt.Println(objects.Hash(objects.Blob, data))
	return nil
}
