// Package mgerr defines the error taxonomy shared by every mygit
// component. Leaf packages build an *Error of one Kind with New or
// Wrap, the latter keeping the cause reachable through Unwrap; the
// command handler prints the error as one diagnostic line and returns
// a failure code, mirroring the way the original tool's command
// handlers print one "Error: ..." line. KindOf recovers the Kind.
package mgerr

import (
	"errors"
	"fmt"
)

// Kind is one of the taxonomy entries from the error handling design.
type Kind int

const (
	// UsageError marks a bad command line: unknown command or flag,
	// missing argument, malformed SHA.
	UsageError Kind = iota
	// NotARepo marks a missing .mygit directory.
	NotARepo
	// IoError marks a read/write/open failure against the filesystem.
	IoError
	// NotFound marks a missing object, commit, or index entry.
	NotFound
	// CorruptObject marks a decompression failure, malformed header,
	// size mismatch, truncated tree entry, or unexpected object kind.
	CorruptObject
	// NothingToCommit marks an empty index at commit time.
	NothingToCommit
)

func (k Kind) String() string {
	switch k {
	case UsageError:
		return "usage error"
	case NotARepo:
		return "not a mygit repository"
	case IoError:
		return "io error"
	case NotFound:
		return "not found"
	case CorruptObject:
		return "corrupt object"
	case NothingToCommit:
		return "nothing to commit"
	default:
		return "error"
	}
}

// Error pairs a Kind with a message and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so callers
// can write errors.Is(err, &mgerr.Error{Kind: mgerr.NotFound}).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around an existing error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, defaulting to IoError for errors
// that never passed through this package (e.g. a raw os.PathError
// bubbling out of a leaf function that forgot to wrap it).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return IoError
}
