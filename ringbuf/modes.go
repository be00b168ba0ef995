// File: ringbuf/modes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public instantiations of Buffer. Ring is the plain-cursor form, SPSC
// the atomic-cursor form; both satisfy api.Ring.

package ringbuf

import "github.com/momentics/hioload-ring/api"

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any] = (*Ring[any])(nil)
	_ api.Ring[any] = (*SPSC[any])(nil)
)

// Ring is a single-threaded buffer. No inter-thread visibility is
// guaranteed; callers needing concurrent access use SPSC or wrap every
// call in an external lock.
type Ring[T any] struct {
	Buffer[T, Plain, *Plain]
}

// New returns an empty Ring over n slots (usable capacity n-1).
// It panics if n < 2.
func New[T any](n int) *Ring[T] {
	r := &Ring[T]{}
	r.init(n)
	return r
}

// SPSC is a lock-free buffer for exactly one producer goroutine or ISR
// (the only writer of head) and one consumer (the only writer of tail).
// Any other concurrent-access pattern, including PushOverwrite or Clear
// racing a peer, is outside the guarantee.
type SPSC[T any] struct {
	Buffer[T, Atomic, *Atomic]
}

// NewSPSC returns an empty SPSC buffer over n slots (usable capacity
// n-1). It panics if n < 2.
func NewSPSC[T any](n int) *SPSC[T] {
	r := &SPSC[T]{}
	r.init(n)
	return r
}
