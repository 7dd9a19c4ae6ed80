// Package objects implements the canonical serialization of blob, tree
// and commit payloads (component C4) plus the primitives (C1 hashing,
// C2 zlib codec) the object store builds on. Encoders and decoders here
// operate on payloads only; framing ("<kind> <size>\0<payload>") and
// persistence belong to internal/store.
package objects

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arjunkoli/mygit/internal/mgerr"
)

// Kind names one of the three object kinds. Two objects with the same
// payload but different Kind hash differently, because Kind is part of
// the envelope that gets hashed.
type Kind string

const (
	Blob   Kind = "blob"
	Tree   Kind = "tree"
	Commit Kind = "commit"
)

const (
	ModeFile = "100644"
	ModeTree = "40000"
	// modeTreeAlt is accepted on read for compatibility with the
	// zero-padded form some tools emit; encoders always write ModeTree.
	modeTreeAlt = "040000"
)

// Envelope builds the exact byte string that gets hashed and stored:
// "<kind> <size>\0<payload>".
func Envelope(kind Kind, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", kind, len(payload))
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)
	return out
}

// Hash returns the object identity for (kind, payload): the SHA-1 of
// its Envelope.
func Hash(kind Kind, payload []byte) string {
	return Sha1Hex(Envelope(kind, payload))
}

// ParseEnvelope splits a decompressed object file back into its kind
// and payload, verifying the declared size against the actual payload
// length.
func ParseEnvelope(data []byte) (Kind, []byte, error) {
	nul := bytes.IndexByte(data, 0)
	if nul == -1 {
		return "", nil, mgerr.New(mgerr.CorruptObject, "object has no header terminator")
	}
	header := string(data[:nul])
	payload := data[nul+1:]

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", nil, mgerr.New(mgerr.CorruptObject, "malformed object header %q", header)
	}
	size, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", nil, mgerr.Wrap(mgerr.CorruptObject, err, "malformed object size %q", parts[1])
	}
	if size != len(payload) {
		return "", nil, mgerr.New(mgerr.CorruptObject, "object size mismatch: header says %d, got %d", size, len(payload))
	}
	return Kind(parts[0]), payload, nil
}

// TreeEntry is one line of a tree object's payload, decoded (SHA in hex)
// rather than the raw 20-byte on-wire form.
type TreeEntry struct {
	Mode string
	Name string
	SHA  string
}

// EntryKind reports which object kind an entry's mode refers to.
func (e TreeEntry) EntryKind() Kind {
	if e.Mode == ModeTree || e.Mode == modeTreeAlt {
		return Tree
	}
	return Blob
}

// EncodeTree serializes a strictly name-sorted, validly-named entry
// list into a tree payload. It is the caller's responsibility to sort;
// EncodeTree only verifies the order rather than silently re-sorting,
// so that a caller with a bug notices immediately.
func EncodeTree(entries []TreeEntry) ([]byte, error) {
	var buf bytes.Buffer
	prevName := ""
	for i, e := range entries {
		if e.Name == "" {
			return nil, mgerr.New(mgerr.CorruptObject, "tree entry %d has an empty name", i)
		}
		if strings.ContainsAny(e.Name, "\x00/") {
			return nil, mgerr.New(mgerr.CorruptObject, "tree entry name %q contains NUL or '/'", e.Name)
		}
		if i > 0 && e.Name <= prevName {
			return nil, mgerr.New(mgerr.CorruptObject, "tree entries not strictly sorted: %q after %q", e.Name, prevName)
		}
		prevName = e.Name

		raw, err := HexToBytes(e.SHA)
		if err != nil || len(raw) != 20 {
			return nil, mgerr.New(mgerr.CorruptObject, "tree entry %q has an invalid sha %q", e.Name, e.SHA)
		}

		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(raw)
	}
	return buf.Bytes(), nil
}

// DecodeTree parses a tree payload back into its entries. Modes
// "40000" and "040000" both decode as directories; any other mode is
// treated as a regular file, per the spec's read-side leniency.
func DecodeTree(payload []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	i := 0
	for i < len(payload) {
		sp := bytes.IndexByte(payload[i:], ' ')
		if sp == -1 {
			return nil, mgerr.New(mgerr.CorruptObject, "truncated tree entry: missing mode separator")
		}
		mode := string(payload[i : i+sp])
		i += sp + 1

		nul := bytes.IndexByte(payload[i:], 0)
		if nul == -1 {
			return nil, mgerr.New(mgerr.CorruptObject, "truncated tree entry: missing name terminator")
		}
		name := string(payload[i : i+nul])
		i += nul + 1

		if i+20 > len(payload) {
			return nil, mgerr.New(mgerr.CorruptObject, "truncated tree entry: short sha")
		}
		sha := BytesToHex(payload[i : i+20])
		i += 20

		entries = append(entries, TreeEntry{Mode: mode, Name: name, SHA: sha})
	}
	return entries, nil
}

// SortTreeEntries sorts entries ascending by name in place, the order
// EncodeTree requires.
func SortTreeEntries(entries []TreeEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}

// Identity is a commit's author or committer line: name, email,
// epoch-seconds timestamp and an offset like "+0530"/"-0800".
type Identity struct {
	Name      string
	Email     string
	Timestamp int64
	TZ        string
}

func (id Identity) String() string {
	return fmt.Sprintf("%s <%s> %d %s", id.Name, id.Email, id.Timestamp, id.TZ)
}

// ParseIdentity reverses Identity.String.
func ParseIdentity(line string) (Identity, error) {
	// "<name> <<email>> <timestamp> <tz>"
	open := strings.LastIndex(line, "<")
	close := strings.LastIndex(line, ">")
	if open == -1 || close == -1 || close < open {
		return Identity{}, mgerr.New(mgerr.CorruptObject, "malformed identity line %q", line)
	}
	name := strings.TrimSpace(line[:open])
	email := line[open+1 : close]
	rest := strings.Fields(strings.TrimSpace(line[close+1:]))
	if len(rest) != 2 {
		return Identity{}, mgerr.New(mgerr.CorruptObject, "malformed identity line %q", line)
	}
	ts, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		return Identity{}, mgerr.Wrap(mgerr.CorruptObject, err, "malformed identity timestamp in %q", line)
	}
	return Identity{Name: name, Email: email, Timestamp: ts, TZ: rest[1]}, nil
}

// CommitFields is the decoded content of a commit object.
type CommitFields struct {
	Tree      string
	Parent    string // empty for a root commit
	Author    Identity
	Committer Identity
	Message   string
}

// EncodeCommit serializes fields in the fixed header order the spec
// requires: tree, optional parent, author, committer, blank line,
// message, trailing newline.
func EncodeCommit(f CommitFields) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", f.Tree)
	if f.Parent != "" {
		fmt.Fprintf(&buf, "parent %s\n", f.Parent)
	}
	fmt.Fprintf(&buf, "author %s\n", f.Author)
	fmt.Fprintf(&buf, "committer %s\n", f.Committer)
	buf.WriteByte('\n')
	buf.WriteString(f.Message)
	if !strings.HasSuffix(f.Message, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// DecodeCommit parses a commit payload. Unknown header lines are
// ignored for forward compatibility; a commit with no parent line is a
// root commit.
func DecodeCommit(payload []byte) (CommitFields, error) {
	lines := strings.Split(string(payload), "\n")
	var f CommitFields
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			i++
			break
		}
		switch {
		case strings.HasPrefix(line, "tree "):
			f.Tree = strings.TrimPrefix(line, "tree ")
		case strings.HasPrefix(line, "parent "):
			f.Parent = strings.TrimPrefix(line, "parent ")
		case strings.HasPrefix(line, "author "):
			id, err := ParseIdentity(strings.TrimPrefix(line, "author "))
			if err != nil {
				return CommitFields{}, err
			}
			f.Author = id
		case strings.HasPrefix(line, "committer "):
			id, err := ParseIdentity(strings.TrimPrefix(line, "committer "))
			if err != nil {
				return CommitFields{}, err
			}
			f.Committer = id
		}
	}
	if f.Tree == "" {
		return CommitFields{}, mgerr.New(mgerr.CorruptObject, "commit object missing tree line")
	}
	f.Message = strings.TrimSuffix(strings.Join(lines[i:], "\n"), "\n")
	return f, nil
}
