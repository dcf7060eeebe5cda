package anchor_test

import (
	"errors"
	"testing"

	"github.com/bebop/spor/anchor"
)

func mustContext(t *testing.T, text string, offset, width, contextWidth int) anchor.Context {
	t.Helper()
	c, err := anchor.NewContext([]rune(text), offset, width, contextWidth)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	return c
}

func TestNewRequiresAbsolutePath(t *testing.T) {
	ctx := mustContext(t, "hello world", 0, 5, 3)

	_, err := anchor.New("relative/path.txt", "utf-8", ctx, nil)
	if !errors.Is(err, anchor.ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}

	a, err := anchor.New("/abs/path.txt", "utf-8", ctx, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if a.FilePath() != "/abs/path.txt" {
		t.Errorf("FilePath() = %q, want %q", a.FilePath(), "/abs/path.txt")
	}
}

func TestWithContextDoesNotMutateOriginal(t *testing.T) {
	ctx1 := mustContext(t, "hello world", 0, 5, 3)
	a, err := anchor.New("/abs/path.txt", "utf-8", ctx1, "meta")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx2 := mustContext(t, "goodbye world", 0, 7, 3)
	updated := a.WithContext(ctx2)

	if a.Context().Topic() != "hello" {
		t.Errorf("original anchor's topic changed: %q", a.Context().Topic())
	}
	if updated.Context().Topic() != "goodbye" {
		t.Errorf("updated.Context().Topic() = %q, want %q", updated.Context().Topic(), "goodbye")
	}
	if updated.Metadata() != "meta" {
		t.Errorf("updated.Metadata() = %v, want %q", updated.Metadata(), "meta")
	}
}
