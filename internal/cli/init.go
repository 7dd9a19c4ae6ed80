package cli

import (
	"os"
	"path/filepath"

	"github.com/arjunkoli/mygit/internal/config"
	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/repo"
)

func cmdInit(args []string) error {
	fls := createFlagSet("init", "Create an empty mygit repository in the current directory.", "mygit init")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "getting working directory")
	}
	if err := repo.Init(cwd); err != nil {
		return err
	}

	cfgPath := filepath.Join(cwd, repo.MygitDirName, "config")
	if err := os.WriteFile(cfgPath, []byte(config.DefaultBody), 0o644); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "writing %s", cfgPath)
	}
	return nil
}
