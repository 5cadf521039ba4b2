// Package search drives a best-first search over an implicitly generated
// state space, using a pqueue.PriorityQueue as the frontier.
//
// What
//
//   - Seed the frontier with one or more states.
//   - Repeatedly extract the most preferable state, drop it if the problem
//     marks it dead, return it if it is a goal, otherwise expand it and insert
//     every successor.
//   - Terminate with a *Result on success or ErrSearchExhausted when the
//     frontier empties.
//
// The domain supplies three things: the ordering (pqueue.Less), the goal test
// and the expansion, the latter two through the Problem interface. A problem
// that also implements Pruner gets lazy discard of dead states: they may sit
// in the frontier but are never expanded or accepted as goals.
//
// Optimality
//
//	Because every state is expanded only once, from the moment it is
//	extracted, the search is uniform-cost when the ordering is monotonic
//	along expansions (accumulated length, spent resource). A heuristic
//	ordering that can improve from parent to child yields a valid goal but
//	not necessarily the best one.
//
// Duplicates
//
//	By default nothing is deduplicated: equal states reached along different
//	routes are all inserted and all expanded. WithClosedSet switches to graph
//	search, skipping any extracted state deep-equal to one already expanded.
//
// Complexity (N = states inserted)
//
//   - Time:   O(N log N) queue work plus the cost of Expand.
//   - Memory: O(N); the frontier is never bounded or evicted.
//
// Usage
//
//	res, err := search.Run(seeds, problem, less,
//	    search.WithLogger(logger),
//	    search.WithClosedSet(),
//	)
//	if errors.Is(err, search.ErrSearchExhausted) {
//	    // no solution in the explored space
//	}
//
// Errors
//
//   - ErrNilProblem, ErrNilLess for missing collaborators.
//   - ErrOptionViolation for invalid options.
//   - ErrSearchExhausted when the frontier empties.
//   - Wrapped errors from Problem.Expand and the frontier.
package search
