package align

// Direction names a predecessor cell relative to the current one in the
// traceback matrix.
type Direction int

const (
	// Diag is the predecessor at (i-1, j-1): a match or mismatch.
	Diag Direction = iota
	// Up is the predecessor at (i-1, j): a gap in the column sequence B.
	Up
	// Left is the predecessor at (i, j-1): a gap in the row sequence A.
	Left
)

// scoreMatrix is the Smith-Waterman DP table, shape (len(a)+1) x (len(b)+1).
// Row 0 and column 0 are the zero border.
type scoreMatrix [][]float32

// tracebackMatrix parallels scoreMatrix; each cell holds the set of
// co-optimal predecessor directions for that cell, or none if the cell's
// score is 0 with no positive extension.
type tracebackMatrix [][][]Direction

func newScoreMatrix(rows, cols int) scoreMatrix {
	m := make(scoreMatrix, rows)
	for i := range m {
		m[i] = make([]float32, cols)
	}
	return m
}

func newTracebackMatrix(rows, cols int) tracebackMatrix {
	m := make(tracebackMatrix, rows)
	for i := range m {
		m[i] = make([][]Direction, cols)
	}
	return m
}

// buildMatrices fills the score matrix and traceback matrix for the local
// alignment of a against b under the given scoring policy.
func buildMatrices(a, b []rune, score ScoreFunc, gapPenalty GapPenaltyFunc) (scoreMatrix, tracebackMatrix) {
	rows, cols := len(a)+1, len(b)+1
	s := newScoreMatrix(rows, cols)
	t := newTracebackMatrix(rows, cols)

	gap := gapPenalty(1)

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			diag := s[i-1][j-1] + score(a[i-1], b[j-1])
			up := s[i-1][j] - gap
			left := s[i][j-1] - gap

			m := diag
			if up > m {
				m = up
			}
			if left > m {
				m = left
			}

			if m > 0 {
				s[i][j] = m
				var dirs []Direction
				if diag == m {
					dirs = append(dirs, Diag)
				}
				if up == m {
					dirs = append(dirs, Up)
				}
				if left == m {
					dirs = append(dirs, Left)
				}
				t[i][j] = dirs
			}
		}
	}

	return s, t
}

// cellIndex is a (row, column) coordinate into a matrix.
type cellIndex struct {
	row, col int
}

// maxima returns every cell achieving the matrix's maximum score, along
// with that score. ok is false only if the matrix has no cells at all; a
// matrix built from an empty input still has its zero border row or column,
// so maxima reports ok with a best score of 0 for it.
func (s scoreMatrix) maxima() (best float32, cells []cellIndex, ok bool) {
	found := false
	for i := range s {
		for j := range s[i] {
			v := s[i][j]
			if !found || v > best {
				best = v
				found = true
				cells = cells[:0]
				cells = append(cells, cellIndex{i, j})
			} else if v == best {
				cells = append(cells, cellIndex{i, j})
			}
		}
	}
	return best, cells, found
}
