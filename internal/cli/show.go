package cli

import "fmt"

func cmdShow(args []string) error {
	fls := createFlagSet("show", "Show a commit's metadata and its diff against its parent.", "mygit show [<40-hex>]")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	ref := ""
	if len(pos) == 1 {
		ref = pos[0]
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}
	out, err := r.Show(ref)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
