package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned when extracting from a queue with no occupied slots.
	ErrEmptyQueue = errors.New("pqueue: extract on empty queue")

	// ErrSparseQueue is returned when an unoccupied position is read.
	// It indicates broken insert/extract bookkeeping and is never expected.
	ErrSparseQueue = errors.New("pqueue: sparse storage detected")
)

// Less reports whether a is strictly preferable to b.
// It must describe a total preorder over T.
type Less[T any] func(a, b T) bool

// Preferrer is implemented by states that carry their own ordering.
type Preferrer[T any] interface {
	PreferableTo(other T) bool
}

// Ordered returns the natural ascending order of an ordered type.
func Ordered[T constraints.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// By orders values by an ordered key, smallest key first.
func By[T any, K constraints.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return key(a) < key(b) }
}

// ByPreference uses T's own PreferableTo method as the ordering.
func ByPreference[T Preferrer[T]]() Less[T] {
	return func(a, b T) bool { return a.PreferableTo(b) }
}

// Then breaks ties of primary with secondary. Two values tie under primary
// when neither is strictly preferable to the other.
func Then[T any](primary, secondary Less[T]) Less[T] {
	return func(a, b T) bool {
		switch {
		case primary(a, b):
			return true
		case primary(b, a):
			return false
		default:
			return secondary(a, b)
		}
	}
}

// Reverse flips an ordering, turning a min-heap into a max-heap.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}
