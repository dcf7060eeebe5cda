package fsread_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bebop/spor/internal/fsread"
)

func TestReadTextReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := fsread.Reader{}.ReadText(path, "utf-8")
	if err != nil {
		t.Fatalf("ReadText returned error: %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("ReadText() = %q, want %q", string(got), "hello world")
	}
}

func TestReadTextMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.txt")

	_, err := fsread.Reader{}.ReadText(path, "utf-8")
	if !errors.Is(err, fsread.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
