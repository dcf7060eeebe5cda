package align

import (
	"errors"
	"fmt"
)

// ErrInvalidAlignment is returned when a traceback cannot be converted into
// a consistent alignment: a bug in the traceback matrix that produced
// non-adjacent steps.
var ErrInvalidAlignment = errors.New("align: invalid alignment")

// Cell is one element of an Alignment. Exactly one of the three shapes
// below applies to any given Cell; callers switch on Kind.
type Cell struct {
	Kind  CellKind
	Left  int // valid for KindBoth and KindRightGap
	Right int // valid for KindBoth and KindLeftGap
}

// CellKind tags the shape of an alignment Cell.
type CellKind int

const (
	// KindBoth pairs one index from each sequence: a match or mismatch.
	KindBoth CellKind = iota
	// KindRightGap consumes an index from the left sequence only: a gap in
	// the right sequence.
	KindRightGap
	// KindLeftGap consumes an index from the right sequence only: a gap in
	// the left sequence.
	KindLeftGap
)

// Alignment is an ordered sequence of alignment cells, proceeding in
// increasing input-sequence index from the alignment's start.
type Alignment []Cell

// toAlignment converts a traceback (largest index first) into an
// Alignment (increasing index order).
func toAlignment(tb traceback) (Alignment, error) {
	if len(tb) == 0 {
		return nil, nil
	}

	// Translate from matrix space (which has an extra zero row/column) to
	// sequence space, and reverse so indices increase.
	seq := make([]cellIndex, len(tb))
	for i, c := range tb {
		seq[len(tb)-1-i] = cellIndex{c.row - 1, c.col - 1}
	}

	alignment := make(Alignment, 0, len(seq))
	alignment = append(alignment, Cell{Kind: KindBoth, Left: seq[0].row, Right: seq[0].col})

	for i := 1; i < len(seq); i++ {
		curr, next := seq[i-1], seq[i]
		switch {
		case next.row == curr.row+1 && next.col == curr.col+1:
			alignment = append(alignment, Cell{Kind: KindBoth, Left: next.row, Right: next.col})
		case next.row == curr.row+1 && next.col == curr.col:
			alignment = append(alignment, Cell{Kind: KindRightGap, Left: next.row})
		case next.row == curr.row && next.col == curr.col+1:
			alignment = append(alignment, Cell{Kind: KindLeftGap, Right: next.col})
		default:
			return nil, fmt.Errorf("%w: non-adjacent steps at %v -> %v", ErrInvalidAlignment, curr, next)
		}
	}

	return alignment, nil
}
