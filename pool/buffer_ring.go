// File: pool/buffer_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BufferRing[T] is a thin, named wrapper over ringbuf.SPSC[T]. The name
// identifies the ring to observers (see package metric) without the
// engine itself carrying any instrumentation.

package pool

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ringbuf"
)

// Ensure compile-time compliance.
var _ api.Ring[any] = (*BufferRing[any])(nil)

// BufferRing couples an SPSC ring with a stable name.
type BufferRing[T any] struct {
	*ringbuf.SPSC[T]
	name string
}

// NewBufferRing creates a named ring over n slots (usable capacity n-1).
func NewBufferRing[T any](name string, n int) *BufferRing[T] {
	return &BufferRing[T]{SPSC: ringbuf.NewSPSC[T](n), name: name}
}

// Name returns the identifier the ring was registered under.
func (r *BufferRing[T]) Name() string { return r.name }
