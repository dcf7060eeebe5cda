package align_test

import (
	"fmt"

	"github.com/bebop/spor/align"
)

func ExampleAlign() {
	score, alignments, err := align.AlignStrings("GATTACA", "GCATGCU", align.DefaultScore, align.DefaultGapPenalty)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("score: %v, alignments: %d\n", score, len(alignments))
	// Output: score: 7, alignments: 1
}
