package pqueue

import "fmt"

// PriorityQueue is a binary min-heap over T under a Less ordering.
// The zero value is not usable; construct with New.
// A PriorityQueue is not safe for concurrent use.
type PriorityQueue[T any] struct {
	storage []T     // heap slots; only [0, size) are occupied
	size    int     // number of occupied slots
	less    Less[T] // strict "is preferable to"
}

// New returns an empty queue ordered by less. It panics if less is nil.
func New[T any](less Less[T]) *PriorityQueue[T] {
	return NewWithCapacity(less, 0)
}

// NewWithCapacity is New with storage pre-sized for n entries.
func NewWithCapacity[T any](less Less[T], n int) *PriorityQueue[T] {
	if less == nil {
		panic("pqueue: nil Less")
	}
	if n < 0 {
		n = 0
	}

	return &PriorityQueue[T]{
		storage: make([]T, 0, n),
		less:    less,
	}
}

// Len returns the number of occupied slots.
func (q *PriorityQueue[T]) Len() int { return q.size }

// IsEmpty reports whether no slot is occupied.
func (q *PriorityQueue[T]) IsEmpty() bool { return q.size == 0 }

// Insert adds item to the queue. It never fails for a well-formed queue;
// the error exists only to surface ErrSparseQueue.
func (q *PriorityQueue[T]) Insert(item T) error {
	// 1) Occupy the first free slot, reusing storage left behind by extractions.
	if q.size < len(q.storage) {
		q.storage[q.size] = item
	} else {
		q.storage = append(q.storage, item)
	}
	q.size++

	// 2) Restore the heap property along the path to the root.
	return q.siftUp(q.size - 1)
}

// ExtractBest removes and returns a most preferable item.
// Returns ErrEmptyQueue if the queue holds nothing.
func (q *PriorityQueue[T]) ExtractBest() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}

	best, err := q.at(0)
	if err != nil {
		return zero, err
	}
	last, err := q.at(q.size - 1)
	if err != nil {
		return zero, err
	}

	// Vacate the tail slot so the queue drops its reference, then shrink.
	q.storage[q.size-1] = zero
	q.size--
	if q.size == 0 {
		return best, nil
	}

	// Move the old tail to the root and push it down.
	q.storage[0] = last
	if err = q.siftDown(0); err != nil {
		return zero, err
	}

	return best, nil
}

// Peek returns a most preferable item without removing it.
func (q *PriorityQueue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.at(0)
}

// at is the only positional read. Positions outside [0, size) are holes.
func (q *PriorityQueue[T]) at(pos int) (T, error) {
	if pos < 0 || pos >= q.size {
		var zero T
		return zero, fmt.Errorf("%w: position %d, occupied %d", ErrSparseQueue, pos, q.size)
	}

	return q.storage[pos], nil
}

func parent(pos int) int { return (pos - 1) / 2 }

func children(pos int) (left, right int) { return 2*pos + 1, 2*pos + 2 }

// siftUp moves the item at pos toward the root until its parent is
// preferable or equal to it.
func (q *PriorityQueue[T]) siftUp(pos int) error {
	for pos > 0 {
		target, err := q.at(pos)
		if err != nil {
			return err
		}
		pp := parent(pos)
		up, err := q.at(pp)
		if err != nil {
			return err
		}
		if !q.less(target, up) {
			return nil
		}
		q.storage[pos], q.storage[pp] = up, target
		pos = pp
	}

	return nil
}

// bestChild returns the position of the most preferable child of pos, or
// -1 when pos is a leaf. The left child wins ties.
func (q *PriorityQueue[T]) bestChild(pos int) (int, T, error) {
	var zero T
	l, r := children(pos)
	if l >= q.size {
		return -1, zero, nil
	}
	left, err := q.at(l)
	if err != nil {
		return -1, zero, err
	}
	if r >= q.size {
		return l, left, nil
	}
	right, err := q.at(r)
	if err != nil {
		return -1, zero, err
	}
	if q.less(right, left) {
		return r, right, nil
	}

	return l, left, nil
}

// siftDown moves the item at pos toward the leaves while a child is
// strictly preferable to it.
func (q *PriorityQueue[T]) siftDown(pos int) error {
	for {
		target, err := q.at(pos)
		if err != nil {
			return err
		}
		cp, child, err := q.bestChild(pos)
		if err != nil {
			return err
		}
		if cp < 0 || !q.less(child, target) {
			return nil
		}
		q.storage[pos], q.storage[cp] = child, target
		pos = cp
	}
}
