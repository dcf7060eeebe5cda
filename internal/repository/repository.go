// Package repository stores anchors as individual YAML files under a
// ".spor" directory, one directory per project, the way a VCS keeps its
// metadata alongside the tree it tracks.
package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bebop/spor/anchor"
)

// DefaultDirName is the directory name a repository's metadata is stored
// under when the caller doesn't override it.
const DefaultDirName = ".spor"

// AnchorID identifies a single stored anchor within a repository.
type AnchorID = string

// ErrNotFound is returned by Find when no repository dominates the given
// path.
var ErrNotFound = errors.New("repository: not found")

// ErrExists is returned by Initialize when a repository already exists at
// the requested location.
var ErrExists = errors.New("repository: already exists")

// ErrAnchorExists is returned by Add when an anchor ID collision occurs
// (practically unreachable given uuid generation, but checked anyway since
// the on-disk store is the source of truth).
var ErrAnchorExists = errors.New("repository: anchor already exists")

// ErrAnchorNotFound is returned by Update when the named anchor has no
// stored file to overwrite.
var ErrAnchorNotFound = errors.New("repository: anchor not found")

// ErrOutsideRepository is returned when an anchor's file path does not
// live under the repository root, since stored paths are always written
// relative to it.
var ErrOutsideRepository = errors.New("repository: anchored file is outside the repository")

// Repository is a directory tree with a ".spor" (or caller-named)
// subdirectory holding one YAML file per anchor.
type Repository struct {
	root    string
	dirName string
}

// Initialize creates a new repository's metadata directory under root. It
// fails with ErrExists if one is already present.
func Initialize(root, dirName string) error {
	if dirName == "" {
		dirName = DefaultDirName
	}

	sporPath := filepath.Join(root, dirName)
	if _, err := os.Stat(sporPath); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, sporPath)
	}

	return os.MkdirAll(sporPath, 0o755)
}

// Find searches path and its ancestors for a directory containing dirName,
// returning a Repository rooted there. An empty dirName defaults to
// DefaultDirName.
func Find(path, dirName string) (*Repository, error) {
	if dirName == "" {
		dirName = DefaultDirName
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, dirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Repository{root: dir, dirName: dirName}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		dir = parent
	}
}

// Root returns the directory the repository is rooted at.
func (r *Repository) Root() string { return r.root }

// MetadataDir returns the absolute path to the repository's ".spor"
// directory.
func (r *Repository) MetadataDir() string {
	return filepath.Join(r.root, r.dirName)
}

func (r *Repository) anchorPath(id AnchorID) string {
	return filepath.Join(r.MetadataDir(), id+".yml")
}

// Add persists a new anchor and returns the ID it was assigned.
func (r *Repository) Add(a anchor.Anchor) (AnchorID, error) {
	id := uuid.NewString()
	path := r.anchorPath(id)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAnchorExists, id)
	}

	if err := writeAnchor(path, a, r.root); err != nil {
		return "", err
	}

	return id, nil
}

// Update overwrites the stored anchor named by id.
func (r *Repository) Update(id AnchorID, a anchor.Anchor) error {
	path := r.anchorPath(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrAnchorNotFound, id)
		}
		return err
	}

	return writeAnchor(path, a, r.root)
}

// Get loads the anchor named by id. The second return value reports
// whether an anchor with that ID exists.
func (r *Repository) Get(id AnchorID) (anchor.Anchor, bool, error) {
	a, err := readAnchor(r.anchorPath(id), r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return anchor.Anchor{}, false, nil
		}
		return anchor.Anchor{}, false, err
	}
	return a, true, nil
}
