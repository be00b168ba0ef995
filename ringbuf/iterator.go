// File: ringbuf/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Snapshot iteration. An iterator captures tail and the element count at
// construction; it is a read-only, finite view that does not observe
// later mutations and is restarted by constructing a new one. Iterating
// while the other role mutates the buffer is undefined unless the caller
// knows the snapshot stays stable for the traversal.

package ringbuf

import "iter"

// Iterator walks a buffer snapshot oldest to newest.
type Iterator[T any] struct {
	slots     []T
	pos       uint32
	remaining int
}

// Next returns the next element, or ok == false once the snapshot is
// exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	v := it.slots[it.pos]
	it.pos++
	if int(it.pos) == len(it.slots) {
		it.pos = 0
	}
	it.remaining--
	return v, true
}

// Remaining returns how many elements the snapshot still holds.
func (it *Iterator[T]) Remaining() int { return it.remaining }

// Iter returns a snapshot iterator over the current contents.
func (b *Buffer[T, C, PC]) Iter() Iterator[T] {
	t := b.loadTail()
	return Iterator[T]{
		slots:     b.slots,
		pos:       t,
		remaining: int(b.distance(b.loadHead(), t)),
	}
}

// All returns the snapshot as a range-over-func sequence:
//
//	for v := range buf.All() { ... }
func (b *Buffer[T, C, PC]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := b.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
