// Package pqueue provides a generic, array-backed binary min-heap used as the
// frontier of best-first searches.
//
// What
//
//   - PriorityQueue[T] stores arbitrary values ordered by a caller-supplied
//     Less[T] predicate: Less(a, b) reports whether a is strictly preferable to b.
//   - Insert appends at the first unoccupied slot and sifts the value up.
//   - ExtractBest removes the root, moves the last occupied value to the root
//     and sifts it down.
//   - There is no decrease-key and no deduplication: inserting the same value
//     twice makes it extractable twice.
//
// Ordering rules
//
//	Sift up stops as soon as the parent is preferable or equal to the new value.
//	Sift down prefers the left child unless the right child is strictly
//	preferable to it, and swaps only when that child is strictly preferable to
//	the node. Equal values therefore never move past one another needlessly.
//
// Storage
//
//	The backing slice may be longer than Len() after extractions. Vacated slots
//	are zeroed and reused by later inserts. Every positional read is checked:
//	reading at or beyond Len() yields ErrSparseQueue instead of a stale value.
//
// Complexity
//
//   - Insert:      O(log n)
//   - ExtractBest: O(log n)
//   - Peek, Len, IsEmpty: O(1)
//   - Memory:      O(n), never shrinks during a run
//
// Usage
//
//	q := pqueue.New(pqueue.Ordered[int]())
//	q.Insert(5)
//	q.Insert(3)
//	best, err := q.ExtractBest() // 3, nil
//
// Errors
//
//   - ErrEmptyQueue   if ExtractBest or Peek is called on an empty queue.
//   - ErrSparseQueue  if bookkeeping ever reads an unoccupied slot.
package pqueue
