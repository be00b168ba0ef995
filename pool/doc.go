// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring-backed adapters: a named api.Ring wrapper for wiring rings into
// observability, a bounded object pool whose free list is a ring, and a
// spill queue that fronts an unbounded overflow with a fixed SPSC ring.
//
// Everything here that is safe for arbitrary goroutines says so
// explicitly; the underlying rings themselves stay strictly
// single-producer/single-consumer.
package pool
