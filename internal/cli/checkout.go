package cli

import "github.com/arjunkoli/mygit/internal/mgerr"

func cmdCheckout(args []string) error {
	fls := createFlagSet("checkout", "Restore a commit's tree into the working directory and move HEAD.", "mygit checkout <40-hex>")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	if len(pos) != 1 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "checkout requires exactly one commit sha")
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}
	return r.Checkout(pos[0], warnf)
}
