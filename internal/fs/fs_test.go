package fs

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func readInput(t *testing.T, path string) string {
	t.Helper()
	rc, err := OpenInput(path)
	if err != nil {
		t.Fatalf("OpenInput: %v", err)
	}
	defer CloseOrLog(rc, path)
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(b)
}

func TestOpenInput_PlainText(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sweep.txt")
	if err := os.WriteFile(p, []byte("1 3.5/real 2 7\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := readInput(t, p); got != "1 3.5/real 2 7\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOpenInput_GzipByExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sweep.txt.gz")
	writeGzip(t, p, "1 9 2\n")
	if got := readInput(t, p); got != "1 9 2\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOpenInput_GzipByMagic(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sweep.dat")
	writeGzip(t, p, "4 5 6\n")
	if got := readInput(t, p); got != "4 5 6\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOpenInput_PlainTextWithGzExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "export.gz")
	if err := os.WriteFile(p, []byte("1 3.5/real 2 7\n1 9 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := readInput(t, p); got != "1 3.5/real 2 7\n1 9 2\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOpenInput_GzipMagicWithoutHeaderIsPlainText(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"magic_only", "\x1f\x8b"},
		{"bad_method", "\x1f\x8b 3 4 5\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "odd.txt")
			if err := os.WriteFile(p, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := readInput(t, p); got != tc.content {
				t.Fatalf("content = %q, want %q", got, tc.content)
			}
		})
	}
}

func TestOpenInput_EmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := readInput(t, p); got != "" {
		t.Fatalf("expected empty content, got %q", got)
	}
}

func TestOpenInput_Errors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.txt")},
		{"directory", dir},
		{"empty_path", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := OpenInput(tc.path)
			if err == nil {
				t.Fatalf("expected error")
			}
			var fae *FileAccessError
			if !errors.As(err, &fae) {
				t.Fatalf("expected *FileAccessError, got %T: %v", err, err)
			}
		})
	}
}

func TestOpenInput_MissingPathWrapsNotExist(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestOpenInput_EmptyPathWrapsErrNoInputPath(t *testing.T) {
	_, err := OpenInput("")
	if !errors.Is(err, ErrNoInputPath) {
		t.Fatalf("expected ErrNoInputPath, got %v", err)
	}
}
