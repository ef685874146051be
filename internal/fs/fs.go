package fs

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrNoInputPath is wrapped in a FileAccessError when no input path was given.
var ErrNoInputPath = errors.New("no input file path given")

var gzipMagic = []byte{0x1f, 0x8b}

// FileAccessError reports an input file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return "file access: " + e.Err.Error()
	}
	return fmt.Sprintf("file access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

func CloseOrLog(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close: "+what, "err", err)
	}
}

type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r readCloser) Close() error { return r.closeFn() }

// OpenInput opens path read-only. Content starting with a valid gzip header
// is decompressed transparently; anything else, whatever its extension, is
// read as plain text. Every failure is a *FileAccessError.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, &FileAccessError{Err: ErrNoInputPath}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, &FileAccessError{Path: path, Err: errors.New("is a directory")}
	}

	br := bufio.NewReader(f)
	magic, _ := br.Peek(len(gzipMagic))
	if !isGzip(magic) {
		return readCloser{Reader: br, closeFn: f.Close}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		// Magic bytes without a gzip header: plain text after all.
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			_ = f.Close()
			return nil, &FileAccessError{Path: path, Err: err}
		}
		br.Reset(f)
		return readCloser{Reader: br, closeFn: f.Close}, nil
	}
	return readCloser{Reader: zr, closeFn: func() error {
		_ = zr.Close()
		return f.Close()
	}}, nil
}

func isGzip(b []byte) bool {
	return len(b) == len(gzipMagic) && b[0] == gzipMagic[0] && b[1] == gzipMagic[1]
}
