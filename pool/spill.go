// File: pool/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpillQueue trades the ring's bounded-or-fail contract for unbounded
// growth: a fixed ring absorbs the steady state, and bursts overflow
// into an eapache/queue FIFO instead of being rejected or evicted. For
// consumers that must never lose data and can tolerate allocation on
// the overflow path; real-time producers keep using the bare ring.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ringbuf"
)

// Ensure compile-time compliance.
var _ api.Queue[any] = (*SpillQueue[any])(nil)

// SpillQueue is a FIFO of unbounded depth fronted by a fixed ring.
// Safe for use from any goroutine; all access is mutex-serialized, so
// this is a convenience structure, not a lock-free one.
type SpillQueue[T any] struct {
	mu       sync.Mutex
	ring     *ringbuf.Ring[T]
	overflow *queue.Queue
	spilled  uint64
}

// NewSpillQueue creates a queue whose ring holds n slots (usable
// capacity n-1).
func NewSpillQueue[T any](n int) *SpillQueue[T] {
	return &SpillQueue[T]{
		ring:     ringbuf.New[T](n),
		overflow: queue.New(),
	}
}

// Push enqueues v, spilling to the overflow when the ring is full.
// While anything sits in the overflow, new values follow it so FIFO
// order is preserved. Never fails.
func (q *SpillQueue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.overflow.Length() > 0 || q.ring.Full() {
		q.overflow.Add(v)
		q.spilled++
		return nil
	}
	return q.ring.Push(v)
}

// Pop dequeues the oldest value, refilling the ring from the overflow,
// or returns api.ErrBufferEmpty.
func (q *SpillQueue[T]) Pop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, err := q.ring.Pop()
	if err != nil {
		var zero T
		if q.overflow.Length() == 0 {
			return zero, err
		}
		v = q.overflow.Remove().(T)
		err = nil
	}
	q.refill()
	return v, err
}

// refill moves overflow entries into ring slots freed by Pop.
func (q *SpillQueue[T]) refill() {
	for q.overflow.Length() > 0 && !q.ring.Full() {
		q.ring.Push(q.overflow.Remove().(T))
	}
}

// Len returns the total queued count, ring plus overflow.
func (q *SpillQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Len() + q.overflow.Length()
}

// Cap returns the ring's usable capacity; depth beyond it lives in the
// overflow.
func (q *SpillQueue[T]) Cap() int {
	return q.ring.Cap()
}

// Spilled returns how many pushes have taken the overflow path.
func (q *SpillQueue[T]) Spilled() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.spilled
}
