package search_test

import (
	"fmt"

	"github.com/katalvlaran/frontier/pqueue"
	"github.com/katalvlaran/frontier/search"
)

// ExampleRun finds the fewest operations turning 2 into 11 using "+1" and
// "×2", by searching over (value, steps) states ordered by steps.
func ExampleRun() {
	type state struct{ value, steps int }

	p := search.Funcs[state]{
		Goal: func(s state) bool { return s.value == 11 },
		Next: func(s state) ([]state, error) {
			return []state{
				{s.value + 1, s.steps + 1},
				{s.value * 2, s.steps + 1},
			}, nil
		},
		// Values past the target can never come back down.
		Prune: func(s state) bool { return s.value > 11 },
	}
	res, err := search.Run([]state{{2, 0}}, p, pqueue.By(func(s state) int { return s.steps }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", res.State.steps)
	// Output: steps: 4
}
