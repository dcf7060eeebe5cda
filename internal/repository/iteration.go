package repository

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bebop/spor/anchor"
)

// Entry pairs a stored anchor with the ID it was assigned.
type Entry struct {
	ID     AnchorID
	Anchor anchor.Anchor
}

// All returns every anchor stored in the repository, ordered by ID so that
// callers (cmd/spor's list and status commands) get stable output.
func (r *Repository) All() ([]Entry, error) {
	pattern := filepath.Join(r.MetadataDir(), "*.yml")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(matches))
	for _, path := range matches {
		id := strings.TrimSuffix(filepath.Base(path), ".yml")

		a, err := readAnchor(path, r.root)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{ID: id, Anchor: a})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return entries, nil
}
