package anchor_test

import (
	"errors"
	"testing"

	"github.com/bebop/spor/anchor"
)

func TestNewContextAtFrontOfFile(t *testing.T) {
	c, err := anchor.NewContext([]rune("text"), 0, 4, 3)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if c.Topic() != "text" {
		t.Errorf("Topic() = %q, want %q", c.Topic(), "text")
	}
	if c.Before() != "" {
		t.Errorf("Before() = %q, want empty", c.Before())
	}
}

func TestNewContextMidFile(t *testing.T) {
	text := []rune("the quick brown fox jumps over the lazy dog")
	// "brown" starts at offset 10, width 5.
	c, err := anchor.NewContext(text, 10, 5, 6)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if c.Topic() != "brown" {
		t.Errorf("Topic() = %q, want %q", c.Topic(), "brown")
	}
	if c.Before() != "quick " {
		t.Errorf("Before() = %q, want %q", c.Before(), "quick ")
	}
	if c.After() != " fox j" {
		t.Errorf("After() = %q, want %q", c.After(), " fox j")
	}
	if c.Width() != 6 {
		t.Errorf("Width() = %d, want 6", c.Width())
	}
}

func TestNewContextShortBeforeAndAfterAtBoundaries(t *testing.T) {
	text := []rune("ab")
	c, err := anchor.NewContext(text, 0, 1, 10)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if c.Before() != "" {
		t.Errorf("Before() = %q, want empty", c.Before())
	}
	if c.After() != "b" {
		t.Errorf("After() = %q, want %q", c.After(), "b")
	}
	if c.Width() != 10 {
		t.Errorf("Width() = %d, want 10 (requested, not actual)", c.Width())
	}
}

func TestNewContextTopicExceedsText(t *testing.T) {
	_, err := anchor.NewContext([]rune("ab"), 0, 10, 3)
	if !errors.Is(err, anchor.ErrInvalidTopic) {
		t.Fatalf("err = %v, want ErrInvalidTopic", err)
	}
}

func TestNewContextOffsetPastEnd(t *testing.T) {
	_, err := anchor.NewContext([]rune("ab"), 5, 1, 3)
	if !errors.Is(err, anchor.ErrInvalidTopic) {
		t.Fatalf("err = %v, want ErrInvalidTopic", err)
	}
}

func TestContextFullText(t *testing.T) {
	text := []rune("0123456789")
	c, err := anchor.NewContext(text, 4, 2, 2)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if c.FullText() != "234567" {
		t.Errorf("FullText() = %q, want %q", c.FullText(), "234567")
	}
}

func TestContextAnchorOffset(t *testing.T) {
	text := []rune("0123456789")
	c, err := anchor.NewContext(text, 4, 2, 2)
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if got := c.AnchorOffset(); got != 2 {
		t.Errorf("AnchorOffset() = %d, want 2", got)
	}
}
