// File: ringbuf/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor strategies for head/tail storage. The strategy is a type
// parameter, so each Buffer instantiation compiles down to direct loads
// and stores with no interface dispatch and no runtime branch.

package ringbuf

import "sync/atomic"

// cursor constrains the pointer form of a cursor type C to the load and
// store operations the engine needs.
type cursor[C any] interface {
	*C
	Load() uint32
	Store(uint32)
}

// Plain is a cursor with ordinary loads and stores. It makes no
// inter-thread visibility promises: use it single-threaded, or with all
// access externally synchronized (interrupts masked, one goroutine).
type Plain uint32

// Load returns the cursor value.
func (c *Plain) Load() uint32 { return uint32(*c) }

// Store sets the cursor value.
func (c *Plain) Store(v uint32) { *c = Plain(v) }

// Atomic is a cursor published through sync/atomic. The atomic store of
// a cursor synchronizes-with the peer's atomic load of it, so a consumer
// that observes an advanced head also observes the slot contents written
// before it, and symmetrically for the producer observing tail. This is
// the minimum ordering that makes the SPSC hand-off correct; Go's atomic
// operations provide at least these acquire/release semantics.
type Atomic struct{ v atomic.Uint32 }

// Load returns the cursor value with acquire ordering.
func (c *Atomic) Load() uint32 { return c.v.Load() }

// Store sets the cursor value with release ordering.
func (c *Atomic) Store(v uint32) { c.v.Store(v) }
