// Package fsread implements the updater.FileReader collaborator by reading
// a file from disk and decoding it according to an anchor's stored
// encoding label.
package fsread

import (
	"errors"
	"fmt"
	"os"

	"github.com/bebop/spor/internal/decode"
)

// ErrNotFound is returned when the anchored file no longer exists.
var ErrNotFound = errors.New("fsread: file not found")

// ErrPermission is returned when the anchored file exists but cannot be
// read with the current process's permissions.
var ErrPermission = errors.New("fsread: permission denied")

// Reader reads and decodes files from the local filesystem. Its zero value
// is ready to use.
type Reader struct{}

// ReadText implements updater.FileReader.
func (Reader) ReadText(path, encoding string) ([]rune, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		case errors.Is(err, os.ErrPermission):
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		default:
			return nil, err
		}
	}

	return decode.Text(raw, encoding)
}
