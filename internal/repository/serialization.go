package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bebop/spor/anchor"
)

type yamlContext struct {
	Before string `yaml:"before"`
	Topic  string `yaml:"topic"`
	After  string `yaml:"after"`
	Offset int    `yaml:"offset"`
	Width  int    `yaml:"width"`
}

type yamlAnchor struct {
	FilePath string      `yaml:"file_path"`
	Encoding string      `yaml:"encoding"`
	Metadata interface{} `yaml:"metadata"`
	Context  yamlContext `yaml:"context"`
}

// writeAnchor serializes a to path. The anchor's file path is stored
// relative to root so that repositories stay portable across checkouts.
func writeAnchor(path string, a anchor.Anchor, root string) error {
	rel, err := filepath.Rel(root, a.FilePath())
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("%w: %s", ErrOutsideRepository, a.FilePath())
	}

	ctx := a.Context()
	doc := yamlAnchor{
		FilePath: rel,
		Encoding: a.Encoding(),
		Metadata: a.Metadata(),
		Context: yamlContext{
			Before: ctx.Before(),
			Topic:  ctx.Topic(),
			After:  ctx.After(),
			Offset: ctx.Offset(),
			Width:  ctx.Width(),
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}

// readAnchor deserializes the anchor stored at path, rooting its relative
// file path back at root.
func readAnchor(path, root string) (anchor.Anchor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return anchor.Anchor{}, err
	}

	var doc yamlAnchor
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return anchor.Anchor{}, fmt.Errorf("repository: malformed anchor at %s: %w", path, err)
	}

	ctx := anchor.ContextFromParts(doc.Context.Before, doc.Context.Topic, doc.Context.After, doc.Context.Offset, doc.Context.Width)

	return anchor.New(filepath.Join(root, doc.FilePath), doc.Encoding, ctx, doc.Metadata)
}
