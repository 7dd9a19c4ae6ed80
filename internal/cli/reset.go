package cli

// reset's grammar mixes a bare flag ("--hard") with an optional commit
// sha and optional paths in any order, which flag.FlagSet's
// flags-before-positionals convention doesn't fit; args are forwarded
// to Repository.Reset directly, which parses them itself, the way the
// original tool's reset(args) does its own single pass over argv.
func cmdReset(args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}
	return r.Reset(args[1:], warnf)
}
