package align

// traceback is an ordered sequence of matrix cells, largest index first,
// from a local-maximum cell back to (but not including) the cell where the
// traceback matrix records no predecessor.
type traceback []cellIndex

// tracebacksFrom enumerates every traceback starting at idx permitted by t.
// If t has no predecessor at idx, the sole traceback is the empty sequence.
// Ordering across distinct tracebacks is unspecified but deterministic for
// a given matrix (direction sets are built in Diag, Up, Left order by
// buildMatrices).
func tracebacksFrom(t tracebackMatrix, idx cellIndex) []traceback {
	dirs := t[idx.row][idx.col]
	if len(dirs) == 0 {
		return []traceback{{}}
	}

	var result []traceback
	for _, d := range dirs {
		var pred cellIndex
		switch d {
		case Diag:
			pred = cellIndex{idx.row - 1, idx.col - 1}
		case Up:
			pred = cellIndex{idx.row - 1, idx.col}
		case Left:
			pred = cellIndex{idx.row, idx.col - 1}
		}

		for _, tail := range tracebacksFrom(t, pred) {
			tb := make(traceback, 0, len(tail)+1)
			tb = append(tb, idx)
			tb = append(tb, tail...)
			result = append(result, tb)
		}
	}
	return result
}
