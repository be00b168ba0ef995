// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded object pooling over a ring free list. Unlike sync.Pool, freed
// objects are never reclaimed by the collector, which keeps reuse
// deterministic for preallocated element buffers.

package pool

import (
	"sync"

	"github.com/momentics/hioload-ring/ringbuf"
)

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// RingPool recycles objects through a fixed-capacity ring. Get falls
// back to the factory when the free list is empty; Put drops the object
// when the free list is full. Safe for use from any goroutine: the ring
// is single-producer/single-consumer, so a mutex serializes access.
type RingPool[T any] struct {
	mu      sync.Mutex
	free    *ringbuf.Ring[T]
	factory func() T
}

// NewRingPool creates a pool holding at most size idle objects.
func NewRingPool[T any](size int, factory func() T) *RingPool[T] {
	return &RingPool[T]{
		free:    ringbuf.New[T](size + 1),
		factory: factory,
	}
}

// Get returns a recycled object, or a fresh one from the factory.
func (p *RingPool[T]) Get() T {
	p.mu.Lock()
	v, err := p.free.Pop()
	p.mu.Unlock()
	if err != nil {
		return p.factory()
	}
	return v
}

// Put returns an object to the free list, silently dropping it when the
// list is full.
func (p *RingPool[T]) Put(obj T) {
	p.mu.Lock()
	_ = p.free.Push(obj)
	p.mu.Unlock()
}

// Idle returns the current free-list depth.
func (p *RingPool[T]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Len()
}

// SyncPool wraps sync.Pool behind the same interface for callers that
// prefer collector-managed recycling.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var (
	_ ObjectPool[any] = (*RingPool[any])(nil)
	_ ObjectPool[any] = (*SyncPool[any])(nil)
)
