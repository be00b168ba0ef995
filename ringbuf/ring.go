// File: ringbuf/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core buffer: storage, index arithmetic, single-element operations and
// derived queries. Bulk transfers live in bulk.go, iteration in
// iterator.go.

package ringbuf

import (
	"math"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Buffer is a fixed-capacity circular buffer over n slots holding at
// most n-1 elements of type T. C selects the cursor strategy (Plain or
// Atomic); use the Ring and SPSC wrappers instead of naming the three
// type parameters.
//
// All operations are O(1) per element and allocation-free. The slot
// slice is allocated once at construction and never resized.
type Buffer[T any, C any, PC cursor[C]] struct {
	slots []T
	n     uint32

	head C
	_    cpu.CacheLinePad // keep producer and consumer cursors off one line
	tail C
	_    cpu.CacheLinePad
}

func (b *Buffer[T, C, PC]) init(n int) {
	if n < 2 {
		panic("ringbuf: slot count must be at least 2")
	}
	if uint64(n) > math.MaxInt32 {
		panic("ringbuf: slot count exceeds index range")
	}
	b.slots = make([]T, n)
	b.n = uint32(n)
}

func (b *Buffer[T, C, PC]) loadHead() uint32   { return PC(&b.head).Load() }
func (b *Buffer[T, C, PC]) loadTail() uint32   { return PC(&b.tail).Load() }
func (b *Buffer[T, C, PC]) storeHead(v uint32) { PC(&b.head).Store(v) }
func (b *Buffer[T, C, PC]) storeTail(v uint32) { PC(&b.tail).Store(v) }

// inc is (i+1) mod n. Indices never run free and wrap on overflow; they
// are reduced on every advance, so n need not be a power of two.
func (b *Buffer[T, C, PC]) inc(i uint32) uint32 {
	i++
	if i == b.n {
		return 0
	}
	return i
}

// advance is (i+k) mod n for k <= n-1.
func (b *Buffer[T, C, PC]) advance(i, k uint32) uint32 {
	i += k
	if i >= b.n {
		i -= b.n
	}
	return i
}

// distance is the element count between a tail and head snapshot.
func (b *Buffer[T, C, PC]) distance(head, tail uint32) uint32 {
	if head >= tail {
		return head - tail
	}
	return b.n - tail + head
}

// Push appends v, or returns api.ErrBufferFull without mutating
// anything. Producer role only: the slot is written before head is
// published, so a consumer that sees the new head sees the element.
func (b *Buffer[T, C, PC]) Push(v T) error {
	h := b.loadHead()
	nh := b.inc(h)
	if nh == b.loadTail() {
		return api.ErrBufferFull
	}
	b.slots[h] = v
	b.storeHead(nh)
	return nil
}

// PushOverwrite appends v unconditionally. When the buffer is full it
// advances tail first, evicting the oldest unread element; this is the
// one operation where the producer touches the consumer's cursor, chosen
// explicitly for most-recent-n-samples semantics (circular logs, sensor
// windows) where a real-time producer must never block or fail. With
// Atomic cursors it therefore must not race with a concurrent consumer.
func (b *Buffer[T, C, PC]) PushOverwrite(v T) {
	h := b.loadHead()
	nh := b.inc(h)
	t := b.loadTail()
	b.slots[h] = v
	if nh == t {
		b.storeTail(b.inc(t))
	}
	b.storeHead(nh)
}

// Pop removes and returns the oldest element, or api.ErrBufferEmpty.
// Consumer role only: the slot is read (and released) before tail is
// published, so the producer only reuses it after the value is out.
func (b *Buffer[T, C, PC]) Pop() (T, error) {
	var zero T
	t := b.loadTail()
	if t == b.loadHead() {
		return zero, api.ErrBufferEmpty
	}
	v := b.slots[t]
	b.slots[t] = zero // don't pin references from consumed slots
	b.storeTail(b.inc(t))
	return v, nil
}

// Peek returns a pointer to the oldest element without consuming it, or
// api.ErrBufferEmpty. The pointee stays valid until that element is
// popped, discarded or overwritten. Consumer role only.
func (b *Buffer[T, C, PC]) Peek() (*T, error) {
	t := b.loadTail()
	if t == b.loadHead() {
		return nil, api.ErrBufferEmpty
	}
	return &b.slots[t], nil
}

// Len returns the number of stored elements.
func (b *Buffer[T, C, PC]) Len() int {
	return int(b.distance(b.loadHead(), b.loadTail()))
}

// Cap returns the usable capacity: one slot less than the slot count.
func (b *Buffer[T, C, PC]) Cap() int { return int(b.n) - 1 }

// Free returns the number of elements that can be pushed before Push
// fails.
func (b *Buffer[T, C, PC]) Free() int { return b.Cap() - b.Len() }

// Empty reports whether no element is stored.
func (b *Buffer[T, C, PC]) Empty() bool { return b.loadHead() == b.loadTail() }

// Full reports whether no free slot remains.
func (b *Buffer[T, C, PC]) Full() bool { return b.inc(b.loadHead()) == b.loadTail() }

// Clear resets the buffer to empty and releases all slot contents.
// It writes both cursors and is not safe concurrently with any other
// operation from either role; call it only when no access is in flight,
// e.g. during reset before producer and consumer start.
func (b *Buffer[T, C, PC]) Clear() {
	clear(b.slots)
	b.storeHead(0)
	b.storeTail(0)
}
