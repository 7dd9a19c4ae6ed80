// Package config wires gopkg.in/ini.v1 to .mygit/config, the ambient
// identity store commit reads user.name/user.email from, grounded on
// the teacher's porcelain/ge_config.go.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/arjunkoli/mygit/internal/mgerr"
)

// DefaultBody seeds a freshly initialized repository's config with a
// placeholder identity, the same shape as the teacher's
// constants.Config.
const DefaultBody = `[core]
	repositoryformatversion = 0
	filemode = true
	bare = false

[user]
	name = mygit
	email = mygit@localhost
`

// Path returns the config file's path under mygitDir.
func Path(mygitDir string) string {
	return filepath.Join(mygitDir, "config")
}

// Get reads dotted-section key "section.name" from the config file at
// path.
func Get(path, key string) (string, error) {
	section, name, err := splitKey(key)
	if err != nil {
		return "", err
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return "", mgerr.Wrap(mgerr.IoError, err, "reading config %s", path)
	}
	val := cfg.Section(section).Key(name).String()
	if val == "" {
		return "", mgerr.New(mgerr.NotFound, "config key not found: %s", key)
	}
	return val, nil
}

// Set writes dotted-section key "section.name" to value, creating the
// file if necessary.
func Set(path, key, value string) error {
	section, name, err := splitKey(key)
	if err != nil {
		return err
	}
	cfg, err := ini.LooseLoad(path)
	if err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "reading config %s", path)
	}
	cfg.Section(section).Key(name).SetValue(value)
	if err := cfg.SaveTo(path); err != nil {
		return mgerr.Wrap(mgerr.IoError, err, "writing config %s", path)
	}
	return nil
}

func splitKey(key string) (section, name string, err error) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", mgerr.New(mgerr.UsageError, "invalid config key %q, expected <section>.<name>", key)
	}
	return parts[0], parts[1], nil
}

// Identity looks up user.name and user.email from the config file at
// path and returns them as two separate strings.
func Identity(path string) (name, email string, err error) {
	name, err = Get(path, "user.name")
	if err != nil {
		return "", "", err
	}
	email, err = Get(path, "user.email")
	if err != nil {
		return "", "", err
	}
	return name, email, nil
}

// IdentityLine renders name/email the way Get(path, "user.*") returns
// them into the single-line "Name <email>" form.
func IdentityLine(name, email string) string {
	return fmt.Sprintf("%s <%s>", name, email)
}
