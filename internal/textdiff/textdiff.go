// Package textdiff renders a line-oriented unified diff between two
// strings, used to show how an anchor's stored context has drifted from
// the current contents of its file.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-level diff between before and after. It reports
// whether any line changed and a slice of display lines, each prefixed
// with " " (unchanged), "-" (removed), or "+" (added), as printed by
// `spor diff`.
func Lines(before, after string) (changed bool, diff []string) {
	dmp := diffmatchpatch.New()

	charsBefore, charsAfter, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(charsBefore, charsAfter, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []string
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, changed = "-", true
		case diffmatchpatch.DiffInsert:
			prefix, changed = "+", true
		default:
			prefix = " "
		}

		for _, line := range splitLines(d.Text) {
			out = append(out, prefix+line)
		}
	}

	return changed, out
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
