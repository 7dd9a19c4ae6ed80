// Package store implements the content-addressed object store
// (component C3): persisting and retrieving (kind, payload) pairs by
// content hash under <root>/objects.
package store

import (
	"os"
	"path/filepath"

	"github.com/arjunkoli/mygit/internal/mgerr"
	"github.com/arjunkoli/mygit/internal/objects"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store is an object store rooted at a .mygit directory.
type Store struct {
	root string // path to .mygit
}

// New returns a Store rooted at mygitDir (typically ".mygit").
func New(mygitDir string) *Store {
	return &Store{root: mygitDir}
}

func (s *Store) path(hash string) string {
	return filepath.Join(s.root, "objects", hash[:2], hash[2:])
}

// Exists reports whether an object with the given hash is present.
func (s *Store) Exists(hash string) bool {
	_, err := os.Stat(s.path(hash))
	return err == nil
}

// Put assembles the canonical form, computes its hash, and writes the
// deflated bytes to objects/<hash[:2]>/<hash[2:]>. If the object
// already exists on disk the write is skipped (idempotent). The write
// itself goes through a temp-file-plus-rename so a reader never
// observes a partially written object file.
func (s *Store) Put(kind objects.Kind, payload []byte) (string, error) {
	hash := objects.Hash(kind, payload)
	if s.Exists(hash) {
		return hash, nil
	}

	dir := filepath.Join(s.root, "objects", hash[:2])
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", mgerr.Wrap(mgerr.IoError, err, "creating object directory %s", dir)
	}

	compressed, err := objects.Deflate(objects.Envelope(kind, payload))
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", mgerr.Wrap(mgerr.IoError, err, "creating temp object file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", mgerr.Wrap(mgerr.IoError, err, "writing object %s", hash)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", mgerr.Wrap(mgerr.IoError, err, "closing temp object file for %s", hash)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return "", mgerr.Wrap(mgerr.IoError, err, "chmod object file for %s", hash)
	}

	dest := s.path(hash)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", mgerr.Wrap(mgerr.IoError, err, "installing object %s", hash)
	}
	return hash, nil
}

// Get reads and inflates the object named by hash, splits its header
// from its payload, and verifies the declared size.
func (s *Store) Get(hash string) (objects.Kind, []byte, error) {
	raw, err := os.ReadFile(s.path(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, mgerr.Wrap(mgerr.NotFound, err, "object %s not found", hash)
		}
		return "", nil, mgerr.Wrap(mgerr.IoError, err, "reading object %s", hash)
	}

	data, err := objects.Inflate(raw)
	if err != nil {
		return "", nil, err
	}

	kind, payload, err := objects.ParseEnvelope(data)
	if err != nil {
		return "", nil, err
	}
	return kind, payload, nil
}

// KindOf is a convenience wrapper around Get that discards the payload.
func (s *Store) KindOf(hash string) (objects.Kind, error) {
	kind, _, err := s.Get(hash)
	return kind, err
}

// GetTyped reads an object and verifies it has the expected kind.
func (s *Store) GetTyped(hash string, want objects.Kind) ([]byte, error) {
	kind, payload, err := s.Get(hash)
	if err != nil {
		return nil, err
	}
	if kind != want {
		return nil, mgerr.New(mgerr.CorruptObject, "object %s: expected %s, got %s", hash, want, kind)
	}
	return payload, nil
}
