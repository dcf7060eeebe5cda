// Package anchor holds the data model for a stored text region (Context)
// and the metadata bundle attached to it (Anchor).
package anchor

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidTopic is returned when a requested topic offset/width exceeds
// the text available to read it from.
var ErrInvalidTopic = errors.New("anchor: invalid topic")

// Context is the stored slice of a file that an Anchor is attached to: the
// topic itself, a surrounding window of text, the topic's original offset,
// and the context width the window was requested at. Context is immutable;
// relocating an anchor produces a new Context rather than mutating this one.
type Context struct {
	before string
	topic  string
	after  string
	offset int
	width  int
}

// NewContext builds a Context by slicing text (already decoded to
// characters) around the topic at [offset, offset+topicWidth). before and
// after each hold up to contextWidth characters of surrounding text,
// shorter near the start or end of text. width records the requested
// context width, not the actual before/after length.
//
// NewContext fails with ErrInvalidTopic if fewer than topicWidth characters
// are available starting at offset.
func NewContext(text []rune, offset, topicWidth, contextWidth int) (Context, error) {
	if offset < 0 || topicWidth <= 0 || offset+topicWidth > len(text) {
		return Context{}, fmt.Errorf("%w: offset=%d width=%d text length=%d", ErrInvalidTopic, offset, topicWidth, len(text))
	}

	topic := string(text[offset : offset+topicWidth])

	beforeStart := offset - contextWidth
	if beforeStart < 0 {
		beforeStart = 0
	}
	before := string(text[beforeStart:offset])

	afterEnd := offset + topicWidth + contextWidth
	if afterEnd > len(text) {
		afterEnd = len(text)
	}
	after := string(text[offset+topicWidth : afterEnd])

	return Context{
		before: before,
		topic:  topic,
		after:  after,
		offset: offset,
		width:  contextWidth,
	}, nil
}

// ContextFromParts reconstructs a Context directly from its stored fields,
// as when deserializing an anchor previously persisted to a repository.
// Unlike NewContext, it performs no slicing against source text and
// therefore cannot fail.
func ContextFromParts(before, topic, after string, offset, width int) Context {
	return Context{before: before, topic: topic, after: after, offset: offset, width: width}
}

// Before returns the text immediately preceding the topic.
func (c Context) Before() string { return c.before }

// Topic returns the anchored text itself.
func (c Context) Topic() string { return c.topic }

// After returns the text immediately following the topic.
func (c Context) After() string { return c.after }

// Offset returns the index, in characters, of the topic's first character
// within the text the Context was built from.
func (c Context) Offset() int { return c.offset }

// Width returns the requested context width the Context was created with,
// not the actual length of Before or After.
func (c Context) Width() int { return c.width }

// FullText returns before, topic, and after concatenated in order: the
// full stored span that the alignment engine treats as sequence A when an
// anchor is relocated.
func (c Context) FullText() string {
	return c.before + c.topic + c.after
}

// AnchorOffset returns the offset, in the original file's coordinates, of
// the first character of FullText. It is Offset minus the length of
// Before, so it accounts for a Before window shorter than Width near the
// start of a file.
func (c Context) AnchorOffset() int {
	return c.offset - utf8.RuneCountInString(c.before)
}
