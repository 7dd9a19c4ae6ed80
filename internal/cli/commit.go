package cli

import (
	"fmt"
	"time"

	"github.com/arjunkoli/mygit/internal/config"
	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
)

func cmdCommit(args []string) error {
	fls := createFlagSet("commit", "Create a commit from the current index.", "mygit commit -m <msg>")
	msg := fls.String("m", "", "commit message")
	if err := fls.Parse(args[1:]); err != nil {
		return err
	}
	if *msg == "" {
		fls.Usage()
		return mgerr.New(mgerr.UsageError, "commit requires -m <msg>")
	}

	r, _, err := openRepo()
	if err != nil {
		return err
	}

	name, email, err := config.Identity(config.Path(r.MygitDir))
	if err != nil {
		return err
	}

	now := time.Now()
	identity := objects.Identity{
		Name:      name,
		Email:     email,
		Timestamp: now.Unix(),
		TZ:        now.Format("-0700"),
	}

	hash, err := r.Commit(*msg, identity)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
