// Package decode turns raw file bytes into the character sequences the
// align and anchor packages operate on, honoring the encoding label stored
// on each anchor instead of assuming UTF-8 everywhere.
package decode

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownEncoding is returned when an anchor names an encoding label
// decode does not recognize.
var ErrUnknownEncoding = errors.New("decode: unknown encoding")

// ErrDecode is returned when the input bytes are not valid under the named
// encoding.
var ErrDecode = errors.New("decode: invalid byte sequence")

// Text decodes raw into a character sequence using the encoding named by
// label, e.g. "utf-8", "utf-16", "windows-1252". Labels are matched the way
// an HTML document's charset would be: case-insensitively, against the
// WHATWG encoding registry.
func Text(raw []byte, label string) ([]rune, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return []rune(string(decoded)), nil
}
