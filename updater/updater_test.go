package updater_test

import (
	"errors"
	"testing"

	"github.com/bebop/spor/align"
	"github.com/bebop/spor/anchor"
	"github.com/bebop/spor/updater"
)

type stubReader struct {
	text []rune
	err  error
}

func (s stubReader) ReadText(path, encoding string) ([]rune, error) {
	return s.text, s.err
}

func mustAnchor(t *testing.T, path, text string, offset, width, contextWidth int) anchor.Anchor {
	t.Helper()
	ctx, err := anchor.NewContext([]rune(text), offset, width, contextWidth)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	a, err := anchor.New(path, "utf-8", ctx, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

func TestUpdateRelocatesTopicAfterInsertion(t *testing.T) {
	a := mustAnchor(t, "/foo/bar", "asdf", 0, 4, 3)
	reader := stubReader{text: []rune("qwer\nasdf")}

	updated, err := updater.Update(a, reader, align.Align)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if got := updated.Context().Offset(); got != 5 {
		t.Errorf("Context().Offset() = %d, want 5", got)
	}
	if got := updated.Context().Topic(); got != "asdf" {
		t.Errorf("Context().Topic() = %q, want %q", got, "asdf")
	}
}

func TestUpdateIsIdempotentWhenFileUnchanged(t *testing.T) {
	a := mustAnchor(t, "/foo/bar", "the quick brown fox", 4, 5, 4)
	reader := stubReader{text: []rune("the quick brown fox")}

	updated, err := updater.Update(a, reader, align.Align)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if got := updated.Context().Offset(); got != a.Context().Offset() {
		t.Errorf("Offset() = %d, want unchanged %d", got, a.Context().Offset())
	}
	if got := updated.Context().Topic(); got != a.Context().Topic() {
		t.Errorf("Topic() = %q, want unchanged %q", got, a.Context().Topic())
	}
}

func TestUpdatePropagatesReaderError(t *testing.T) {
	a := mustAnchor(t, "/foo/bar", "asdf", 0, 4, 3)
	wantErr := errors.New("boom")
	reader := stubReader{err: wantErr}

	_, err := updater.Update(a, reader, align.Align)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestUpdateFailsWhenTopicVanishes(t *testing.T) {
	a := mustAnchor(t, "/foo/bar", "asdf", 0, 4, 3)
	reader := stubReader{text: []rune("zzzzzzzzzz")}

	_, err := updater.Update(a, reader, align.Align)
	if err == nil {
		t.Fatal("Update returned nil error, want an error")
	}
}
