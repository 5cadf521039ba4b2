// Package search provides tunable options, the problem protocol and error
// definitions for best-first search over lazily generated states.
package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for search execution.
var (
	// ErrSearchExhausted is returned when the frontier empties before any
	// state satisfies the goal test.
	ErrSearchExhausted = errors.New("search: frontier exhausted without reaching a goal")

	// ErrNilProblem is returned if a nil Problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilLess is returned if a nil ordering is passed.
	ErrNilLess = errors.New("search: ordering is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Problem parameterizes the driver for one domain.
//
// IsGoal reports whether a state is terminal and winning.
// Expand returns the states reachable in one step. It may return none
// (a dead end). An error aborts the search and is returned to the caller.
type Problem[T any] interface {
	IsGoal(state T) bool
	Expand(state T) ([]T, error)
}

// Pruner is an optional extension of Problem. States for which Dead
// returns true are dropped when extracted: never tested, never expanded.
type Pruner[T any] interface {
	Dead(state T) bool
}

// Funcs adapts plain functions into a Problem. Prune may be nil.
type Funcs[T any] struct {
	Goal  func(T) bool
	Next  func(T) ([]T, error)
	Prune func(T) bool
}

// IsGoal implements Problem.
func (f Funcs[T]) IsGoal(state T) bool { return f.Goal(state) }

// Expand implements Problem.
func (f Funcs[T]) Expand(state T) ([]T, error) { return f.Next(state) }

// Dead implements Pruner; a nil Prune keeps every state.
func (f Funcs[T]) Dead(state T) bool { return f.Prune != nil && f.Prune(state) }

// Option configures search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
// Hooks receive states as any so that one Options value serves every T.
type Options struct {
	// Logger receives Debug records for run start and termination.
	Logger *slog.Logger

	// OnExtract is called for every state taken off the frontier,
	// before the dead/goal checks.
	OnExtract func(state any)

	// OnInsert is called for every state placed on the frontier,
	// seeds included.
	OnInsert func(state any)

	// ClosedSet enables graph-search mode: a state whose deep hash matches an
	// already expanded state is skipped instead of expanded again.
	ClosedSet bool

	// InitialCapacity pre-sizes the frontier storage.
	InitialCapacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a Logger that discards everything
//   - no-op hooks
//   - closed set disabled (every expansion result is inserted)
//   - no pre-sizing
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExtract:       func(any) {},
		OnInsert:        func(any) {},
		ClosedSet:       false,
		InitialCapacity: 0,
	}
}

// WithLogger routes driver logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExtract registers a callback run for each extracted state.
func WithOnExtract(fn func(state any)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExtract = fn
		}
	}
}

// WithOnInsert registers a callback run for each inserted state.
func WithOnInsert(fn func(state any)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithClosedSet skips re-expansion of states already expanded once.
// States are compared by deep value, so they must not hold funcs or channels.
func WithClosedSet() Option {
	return func(o *Options) {
		o.ClosedSet = true
	}
}

// WithInitialCapacity pre-sizes the frontier.
//
//	n > 0:  reserve n slots
//	n == 0: no reservation
//	n < 0:  invalid option → ErrOptionViolation
func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: InitialCapacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.InitialCapacity = n
	}
}

// Result holds the outcome of a successful search:
//   - State: the goal state that terminated the run.
//   - Extracted: states taken off the frontier, goal included.
//   - Expanded: states passed to Problem.Expand.
//   - Inserted: states placed on the frontier, seeds included.
//   - Discarded: extracted states dropped by Pruner.Dead.
//   - Skipped: extracted states dropped by the closed set.
//   - MaxFrontier: the largest frontier size observed.
type Result[T any] struct {
	State       T
	Extracted   int
	Expanded    int
	Inserted    int
	Discarded   int
	Skipped     int
	MaxFrontier int
}
