// File: ringbuf/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffers for producer/consumer hand-off without
// locks, blocking or heap allocation on the data path.
//
// The package provides one engine, Buffer, monomorphized over a cursor
// strategy: Plain cursors for single-threaded or externally synchronized
// use, Atomic cursors for lock-free single-producer/single-consumer use.
// New and NewSPSC construct the two instantiations.
//
// A buffer over n slots stores at most n-1 elements: head == tail means
// empty and (head+1) mod n == tail means full, so no separate element
// counter is needed. The producer role is the only writer of head, the
// consumer role the only writer of tail; that split is the entire basis
// of SPSC correctness. Multi-producer or multi-consumer access requires
// an external lock and is not supported here.
package ringbuf
