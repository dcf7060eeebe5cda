package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bebop/spor/align"
	"github.com/bebop/spor/anchor"
	"github.com/bebop/spor/internal/fsread"
	"github.com/bebop/spor/internal/repository"
	"github.com/bebop/spor/internal/textdiff"
	"github.com/bebop/spor/updater"
)

var errWrongArgCount = errors.New("wrong number of arguments")

func initCommand() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	return repository.Initialize(cwd, "")
}

func openRepo(path string) (*repository.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}
	return repository.Find(path, "")
}

func addCommand(args []string, stdin io.Reader) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: expected <source-file> <offset> <width> <context-width>", errWrongArgCount)
	}

	sourceFile, offsetArg, widthArg, contextWidthArg := args[0], args[1], args[2], args[3]

	offset, err := strconv.Atoi(offsetArg)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", offsetArg, err)
	}
	width, err := strconv.Atoi(widthArg)
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", widthArg, err)
	}
	contextWidth, err := strconv.Atoi(contextWidthArg)
	if err != nil {
		return fmt.Errorf("invalid context-width %q: %w", contextWidthArg, err)
	}

	var metadata interface{}
	if err := yaml.NewDecoder(stdin).Decode(&metadata); err != nil && err != io.EOF {
		return fmt.Errorf("reading anchor metadata: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := repository.Find(cwd, "")
	if err != nil {
		return err
	}

	absPath := filepath.Join(repo.Root(), sourceFile)
	text, err := fsread.Reader{}.ReadText(absPath, "utf-8")
	if err != nil {
		return err
	}

	ctx, err := anchor.NewContext(text, offset, width, contextWidth)
	if err != nil {
		return err
	}

	a, err := anchor.New(absPath, "utf-8", ctx, metadata)
	if err != nil {
		return err
	}

	id, err := repo.Add(a)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}

func listCommand(path string) error {
	repo, err := openRepo(path)
	if err != nil {
		return err
	}

	entries, err := repo.All()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%s %s:%d => %v\n", e.ID, e.Anchor.FilePath(), e.Anchor.Context().Offset(), e.Anchor.Metadata())
	}
	return nil
}

func updateCommand() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := repository.Find(cwd, "")
	if err != nil {
		return err
	}

	entries, err := repo.All()
	if err != nil {
		return err
	}

	reader := fsread.Reader{}
	for _, e := range entries {
		updated, err := updater.Update(e.Anchor, reader, align.Align)
		if err != nil {
			return fmt.Errorf("updating %s: %w", e.ID, err)
		}
		if err := repo.Update(e.ID, updated); err != nil {
			return err
		}
	}
	return nil
}

// diffAnchor reports whether a's stored context differs from the text
// currently found at the same offset and width in its file, without
// relocating the anchor. This mirrors what update would discover, but
// read-only.
func diffAnchor(a anchor.Anchor, reader updater.FileReader) (bool, []string, error) {
	current, err := reader.ReadText(a.FilePath(), a.Encoding())
	if err != nil {
		return false, nil, err
	}

	ctx := a.Context()
	topicWidth := len([]rune(ctx.Topic()))

	freshCtx, err := anchor.NewContext(current, ctx.Offset(), topicWidth, ctx.Width())
	if err != nil {
		return true, []string{fmt.Sprintf("anchor offset %d no longer valid: %v", ctx.Offset(), err)}, nil
	}

	changed, diff := textdiff.Lines(ctx.FullText(), freshCtx.FullText())
	return changed, diff, nil
}

func statusCommand() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := repository.Find(cwd, "")
	if err != nil {
		return err
	}

	entries, err := repo.All()
	if err != nil {
		return err
	}

	reader := fsread.Reader{}
	for _, e := range entries {
		changed, _, err := diffAnchor(e.Anchor, reader)
		if err != nil {
			return err
		}
		if changed {
			fmt.Printf("%s %s:%d out-of-date\n", e.ID, e.Anchor.FilePath(), e.Anchor.Context().Offset())
		}
	}
	return nil
}

func findAnchor(repo *repository.Repository, idPrefix string) (repository.AnchorID, anchor.Anchor, error) {
	entries, err := repo.All()
	if err != nil {
		return "", anchor.Anchor{}, err
	}

	var matches []repository.Entry
	for _, e := range entries {
		if len(e.ID) >= len(idPrefix) && e.ID[:len(idPrefix)] == idPrefix {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return "", anchor.Anchor{}, fmt.Errorf("no anchor matching %q", idPrefix)
	case 1:
		return matches[0].ID, matches[0].Anchor, nil
	default:
		return "", anchor.Anchor{}, fmt.Errorf("ambiguous anchor id %q", idPrefix)
	}
}

func diffCommand(idPrefix string) error {
	if idPrefix == "" {
		return fmt.Errorf("%w: expected <anchor-id>", errWrongArgCount)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := repository.Find(cwd, "")
	if err != nil {
		return err
	}

	_, a, err := findAnchor(repo, idPrefix)
	if err != nil {
		return err
	}

	_, diff, err := diffAnchor(a, fsread.Reader{})
	if err != nil {
		return err
	}

	for _, line := range diff {
		fmt.Println(line)
	}
	return nil
}

func detailsCommand(idPrefix string) error {
	if idPrefix == "" {
		return fmt.Errorf("%w: expected <anchor-id>", errWrongArgCount)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := repository.Find(cwd, "")
	if err != nil {
		return err
	}

	id, a, err := findAnchor(repo, idPrefix)
	if err != nil {
		return err
	}

	ctx := a.Context()
	fmt.Printf(`id: %s
path: %s
encoding: %s

[before]
%s
--------

[topic]
%s
--------

[after]
%s
--------

offset: %d
width: %d
`, id, a.FilePath(), a.Encoding(), ctx.Before(), ctx.Topic(), ctx.After(), ctx.Offset(), ctx.Width())

	return nil
}
