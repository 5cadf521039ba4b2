package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/frontier/pqueue"
)

// ExamplePriorityQueue shows the basic insert/extract cycle on integers.
func ExamplePriorityQueue() {
	q := pqueue.New(pqueue.Ordered[int]())
	for _, k := range []int{5, 3, 8, 1, 4} {
		_ = q.Insert(k)
	}

	for !q.IsEmpty() {
		v, _ := q.ExtractBest()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 3 4 5 8
}

// ExampleThen orders jobs by priority, breaking ties by name.
func ExampleThen() {
	type job struct {
		name string
		prio int
	}
	less := pqueue.Then(
		pqueue.By(func(j job) int { return j.prio }),
		pqueue.By(func(j job) string { return j.name }),
	)
	q := pqueue.New(less)
	_ = q.Insert(job{"deploy", 2})
	_ = q.Insert(job{"build", 1})
	_ = q.Insert(job{"alert", 2})

	for !q.IsEmpty() {
		j, _ := q.ExtractBest()
		fmt.Println(j.prio, j.name)
	}
	// Output:
	// 1 build
	// 2 alert
	// 2 deploy
}
