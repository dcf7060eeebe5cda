// Package align implements Smith-Waterman local sequence alignment: a
// dynamic-programming score matrix with associated traceback information,
// enumeration of every co-optimal traceback, and conversion of each
// traceback into an alignment mapping indices in one sequence to indices in
// another (or to gaps).
//
// Scoring is injected via ScoreFunc and GapPenaltyFunc so alternative
// policies can be substituted without touching the recurrence. The package
// performs local alignment only: no global (Needleman-Wunsch) mode, no
// affine gap penalties, no more than two sequences.
package align

import "errors"

// ErrNoAlignments is returned when no positive-scoring alignment exists
// between the two inputs, including when either input is empty.
var ErrNoAlignments = errors.New("align: no alignments found")

// Func is the signature an alignment engine conforms to; Align satisfies
// it. The updater package declares its own AlignFunc type of the same shape
// rather than using this one.
type Func func(a, b []rune, score ScoreFunc, gapPenalty GapPenaltyFunc) (float32, []Alignment, error)

// Align finds every cell achieving the matrix-maximum score for the local
// alignment of a against b, collects all tracebacks from each, converts
// each to an alignment, and returns the shared maximum score along with
// every co-optimal alignment. All returned alignments share the same
// score; Align does not deduplicate alignments produced from distinct
// starting cells.
func Align(a, b []rune, score ScoreFunc, gapPenalty GapPenaltyFunc) (float32, []Alignment, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrNoAlignments
	}

	s, t := buildMatrices(a, b, score, gapPenalty)

	best, cells, ok := s.maxima()
	if !ok || best <= 0 {
		return 0, nil, ErrNoAlignments
	}

	var alignments []Alignment
	for _, idx := range cells {
		for _, tb := range tracebacksFrom(t, idx) {
			alignment, err := toAlignment(tb)
			if err != nil {
				return 0, nil, err
			}
			alignments = append(alignments, alignment)
		}
	}

	if len(alignments) == 0 {
		return 0, nil, ErrNoAlignments
	}

	return best, alignments, nil
}

// AlignStrings is a convenience wrapper over Align for callers working with
// strings rather than decoded rune slices.
func AlignStrings(a, b string, score ScoreFunc, gapPenalty GapPenaltyFunc) (float32, []Alignment, error) {
	return Align([]rune(a), []rune(b), score, gapPenalty)
}
