// Package updater relocates an anchor's topic after its source file has
// changed, by aligning the anchor's stored context against the file's
// current contents and projecting the topic's old coordinates through the
// resulting alignment.
package updater

import (
	"errors"
	"fmt"

	"github.com/bebop/spor/align"
	"github.com/bebop/spor/anchor"
)

// ErrNoAlignments is returned when aligning the stored context against the
// current file text produces no alignment at all.
var ErrNoAlignments = errors.New("updater: no alignments found")

// ErrInvalidAlignment is returned when the chosen alignment contains no
// Both cell mapping any character of the old topic into the current text.
var ErrInvalidAlignment = errors.New("updater: alignment does not map topic to updated source")

// FileReader supplies the full, decoded text of a file. Implementations
// must distinguish not-found, permission, and decoding failures so callers
// can react appropriately; see the fsread package for the concrete
// implementation used by cmd/spor.
type FileReader interface {
	ReadText(path, encoding string) ([]rune, error)
}

// AlignFunc is the signature an alignment engine must conform to. This
// indirection lets an alternative engine (e.g. a future affine-gap
// variant) be substituted for align.Align without changing the updater.
type AlignFunc func(a, b []rune, score align.ScoreFunc, gapPenalty align.GapPenaltyFunc) (float32, []align.Alignment, error)

// Update relocates a's topic according to the current contents of its
// source file (read via reader) and returns a new Anchor with a relocated
// Context. a itself is left unmodified.
func Update(a anchor.Anchor, reader FileReader, alignFunc AlignFunc) (anchor.Anchor, error) {
	current, err := reader.ReadText(a.FilePath(), a.Encoding())
	if err != nil {
		return anchor.Anchor{}, err
	}

	ctx := a.Context()
	stored := []rune(ctx.FullText())

	_, alignments, err := alignFunc(stored, current, align.DefaultScore, align.DefaultGapPenalty)
	if err != nil {
		return anchor.Anchor{}, fmt.Errorf("%w: %v", ErrNoAlignments, err)
	}
	if len(alignments) == 0 {
		return anchor.Anchor{}, ErrNoAlignments
	}

	chosen := alignments[0]

	anchorOffset := ctx.AnchorOffset()
	topicStart := ctx.Offset()
	topicEnd := ctx.Offset() + len([]rune(ctx.Topic()))

	var newIndices []int
	for _, cell := range chosen {
		if cell.Kind != align.KindBoth {
			continue
		}
		sourceIdx := cell.Left + anchorOffset
		if sourceIdx >= topicStart && sourceIdx < topicEnd {
			newIndices = append(newIndices, cell.Right)
		}
	}

	if len(newIndices) == 0 {
		return anchor.Anchor{}, ErrInvalidAlignment
	}

	newOffset := newIndices[0]
	newWidth := len(newIndices)

	newCtx, err := anchor.NewContext(current, newOffset, newWidth, ctx.Width())
	if err != nil {
		return anchor.Anchor{}, err
	}

	return a.WithContext(newCtx), nil
}
