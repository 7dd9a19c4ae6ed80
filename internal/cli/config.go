package cli

import (
	"fmt"

	"github.com/arjunkoli/mygit/internal/config"
	"github.com/arjunkoli/mygit/internal/mgerr"
)

func cmdConfig(args []string) error {
	fls := createFlagSet("config", "Get and set repository config options, stored in .mygit/config.", "mygit config (get <key> | set <key> <value>)")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	pos := fls.Args()
	if len(pos) == 0 {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "usage: mygit config (get <key> | set <key> <value>)")
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}
	cfgPath := config.Path(r.MygitDir)

	switch pos[0] {
	case "get":
		if len(pos) != 2 {
			return mgerr.New(mgerr.UsageError, "usage: mygit config get <key>")
		}
		val, err := config.Get(cfgPath, pos[1])
		if err != nil {
			return err
		}
		fmt.Println(val)
	case "set":
		if len(pos) != 3 {
			return mgerr.New(mgerr.UsageError, "usage: mygit config set <key> <value>")
		}
		if err := config.Set(cfgPath, pos[1], pos[2]); err != nil {
			return err
		}
	default:
		return mgerr.New(mgerr.UsageError, "unknown config command: %s", pos[0])
	}
	return nil
}
