package anchor

import (
	"errors"
	"path/filepath"
)

// ErrInvalidPath is returned when an Anchor is constructed with a file
// reference that is not absolute.
var ErrInvalidPath = errors.New("anchor: file path must be absolute")

// Anchor bundles a reference to a file, the character encoding it should be
// decoded with, the Context recording where a topic was found in that
// file, and an opaque metadata payload the core never inspects. Anchor is
// immutable; relocating it (see the updater package) produces a new Anchor.
type Anchor struct {
	filePath string
	encoding string
	context  Context
	metadata interface{}
}

// New builds an Anchor. filePath must be absolute.
func New(filePath, encoding string, context Context, metadata interface{}) (Anchor, error) {
	if !filepath.IsAbs(filePath) {
		return Anchor{}, ErrInvalidPath
	}

	return Anchor{
		filePath: filePath,
		encoding: encoding,
		context:  context,
		metadata: metadata,
	}, nil
}

// FilePath returns the absolute path to the anchored file.
func (a Anchor) FilePath() string { return a.filePath }

// Encoding returns the character-encoding label used to decode the
// anchored file, e.g. "utf-8".
func (a Anchor) Encoding() string { return a.encoding }

// Context returns the stored context the anchor was built from.
func (a Anchor) Context() Context { return a.context }

// Metadata returns the opaque metadata payload attached to the anchor.
func (a Anchor) Metadata() interface{} { return a.metadata }

// WithContext returns a copy of a with its Context replaced. It is how the
// updater produces a relocated anchor without mutating the original.
func (a Anchor) WithContext(c Context) Anchor {
	a.context = c
	return a
}
