package objects

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/arjunkoli/mygit/internal/mgerr"
)

// Deflate zlib-compresses data at the library's default compression
// level. The codec is pure: it never touches the filesystem.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, mgerr.Wrap(mgerr.IoError, err, "deflate")
	}
	if err := w.Close(); err != nil {
		return nil, mgerr.Wrap(mgerr.IoError, err, "deflate close")
	}
	return buf.Bytes(), nil
}

// Inflate reverses Deflate. Truncated input or a stream-end mismatch is
// reported as CorruptObject, never as a bare io error, since the only
// callers of Inflate are reading object files off disk.
func Inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, mgerr.Wrap(mgerr.CorruptObject, err, "inflate: bad zlib stream")
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, mgerr.Wrap(mgerr.CorruptObject, err, "inflate: truncated stream")
	}
	return out, nil
}
