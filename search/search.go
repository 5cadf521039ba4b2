package search

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/frontier/pqueue"
)

// runner encapsulates the mutable state of one search run.
// It owns its frontier exclusively for its lifetime.
type runner[T any] struct {
	problem  Problem[T]
	pruner   Pruner[T] // nil when the problem does not prune
	opts     Options
	frontier *pqueue.PriorityQueue[T]
	closed   map[deephash.Sum]struct{} // nil unless ClosedSet
	res      Result[T]
}

// Run performs best-first search from seeds, always expanding the most
// preferable state under less first.
//
// The loop:
//  1. Insert every seed.
//  2. If the frontier is empty, fail with ErrSearchExhausted.
//  3. Extract the best state. Drop it if the problem prunes it as dead.
//  4. If it is a goal, return it.
//  5. Otherwise expand it and insert every successor; go to 2.
//
// The result is optimal under less only if less never improves from a state
// to any of its successors (a monotonic ordering).
//
// Returns ErrNilProblem, ErrNilLess, ErrOptionViolation for invalid input,
// ErrSearchExhausted when no goal is reachable, or a wrapped error from
// Problem.Expand or the queue.
func Run[T any](seeds []T, p Problem[T], less pqueue.Less[T], opts ...Option) (*Result[T], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if less == nil {
		return nil, ErrNilLess
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner[T]{
		problem:  p,
		opts:     o,
		frontier: pqueue.NewWithCapacity(less, max(o.InitialCapacity, len(seeds))),
	}
	if pr, ok := p.(Pruner[T]); ok {
		r.pruner = pr
	}
	if o.ClosedSet {
		r.closed = make(map[deephash.Sum]struct{})
	}

	o.Logger.Debug("search started", "seeds", len(seeds), "closed_set", o.ClosedSet)
	for _, s := range seeds {
		if err := r.insert(s); err != nil {
			return nil, err
		}
	}

	if err := r.loop(); err != nil {
		o.Logger.Debug("search failed", r.attrs("error", err)...)
		return nil, err
	}
	o.Logger.Debug("search reached goal", r.attrs()...)

	return &r.res, nil
}

// loop runs until a goal is stored in r.res, the frontier empties, or an
// error occurs.
func (r *runner[T]) loop() error {
	for {
		if r.frontier.IsEmpty() {
			return ErrSearchExhausted
		}
		state, err := r.frontier.ExtractBest()
		if err != nil {
			return fmt.Errorf("search: frontier: %w", err)
		}
		r.res.Extracted++
		r.opts.OnExtract(state)

		// Dead branches are dropped lazily, here, rather than at insertion.
		if r.pruner != nil && r.pruner.Dead(state) {
			r.res.Discarded++
			continue
		}

		if r.problem.IsGoal(state) {
			r.res.State = state
			return nil
		}

		if r.closed != nil {
			sum := deephash.Hash(&state)
			if _, seen := r.closed[sum]; seen {
				r.res.Skipped++
				continue
			}
			r.closed[sum] = struct{}{}
		}

		if err = r.expand(state); err != nil {
			return err
		}
	}
}

// expand inserts every successor of state.
func (r *runner[T]) expand(state T) error {
	next, err := r.problem.Expand(state)
	if err != nil {
		return fmt.Errorf("search: expand: %w", err)
	}
	r.res.Expanded++
	for _, s := range next {
		if err = r.insert(s); err != nil {
			return err
		}
	}

	return nil
}

// insert places s on the frontier and updates counters.
func (r *runner[T]) insert(s T) error {
	if err := r.frontier.Insert(s); err != nil {
		return fmt.Errorf("search: frontier: %w", err)
	}
	r.res.Inserted++
	r.res.MaxFrontier = max(r.res.MaxFrontier, r.frontier.Len())
	r.opts.OnInsert(s)

	return nil
}

// attrs renders the run counters as slog key/value pairs.
func (r *runner[T]) attrs(extra ...any) []any {
	return append([]any{
		"extracted", r.res.Extracted,
		"expanded", r.res.Expanded,
		"inserted", r.res.Inserted,
		"discarded", r.res.Discarded,
		"skipped", r.res.Skipped,
		"max_frontier", r.res.MaxFrontier,
	}, extra...)
}
