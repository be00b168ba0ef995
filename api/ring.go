// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts for the fixed-capacity ring buffer engine.
//
// The engine has exactly two roles: one producer (the only writer of the
// head cursor) and one consumer (the only writer of the tail cursor).
// Every contract here is defined against that role split; see package
// ringbuf for the ordering guarantees of the concurrent implementation.

package api

// Ring is the full contract of a fixed-capacity circular buffer with
// one permanently unusable slot: a ring constructed over n slots holds
// at most n-1 elements.
type Ring[T any] interface {
	// Push appends v, returning ErrBufferFull if no free slot exists.
	// Producer role only.
	Push(v T) error

	// PushOverwrite appends v unconditionally, evicting the oldest
	// unread element when the ring is full. Never fails. Producer role
	// only, and in concurrent rings it must not race with a consumer.
	PushOverwrite(v T)

	// Pop removes and returns the oldest element, or ErrBufferEmpty.
	// Consumer role only.
	Pop() (T, error)

	// Peek returns a pointer to the oldest element without consuming
	// it, or ErrBufferEmpty. The pointee is valid until the element is
	// popped or overwritten. Consumer role only.
	Peek() (*T, error)

	// PushBulk copies as many leading elements of src as free slots
	// permit and returns the count actually pushed. Producer role only.
	PushBulk(src []T) int

	// PeekBulk copies up to len(dst) oldest elements into dst without
	// consuming them, returning the count copied. Consumer role only.
	PeekBulk(dst []T) int

	// PopBulk copies up to len(dst) oldest elements into dst and
	// consumes them, returning the count moved. Consumer role only.
	PopBulk(dst []T) int

	// Discard consumes up to count elements without copying them,
	// returning the count discarded. Consumer role only.
	Discard(count int) int

	// Len returns the number of stored elements.
	Len() int
	// Cap returns the usable capacity (slot count minus one).
	Cap() int
	// Free returns Cap() - Len().
	Free() int
	// Empty reports whether no element is stored.
	Empty() bool
	// Full reports whether no free slot remains.
	Full() bool

	// Clear resets the ring to empty. Not safe concurrently with any
	// other operation from either role.
	Clear()
}

// Queue is the minimal FIFO subset of Ring, satisfied by ring-backed
// adapters that are not rings themselves (e.g. pool.SpillQueue).
type Queue[T any] interface {
	Push(v T) error
	Pop() (T, error)
	Len() int
	Cap() int
}
