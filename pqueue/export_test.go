package pqueue

// Test bridge: exposes heap internals to pqueue_test without widening the API.

// CheckHeap returns the first occupied position whose item is strictly
// preferable to its parent, or -1 when the heap property holds.
func CheckHeap[T any](q *PriorityQueue[T]) int {
	for p := 1; p < q.size; p++ {
		if q.less(q.storage[p], q.storage[parent(p)]) {
			return p
		}
	}

	return -1
}

// StorageLen reports the length of the backing slice, occupied or not.
func StorageLen[T any](q *PriorityQueue[T]) int { return len(q.storage) }

// ReadAt performs a checked positional read.
func ReadAt[T any](q *PriorityQueue[T], pos int) (T, error) { return q.at(pos) }
