// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// objpool_test.go — Ring-backed object pool behavior.
package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-ring/pool"
)

func TestRingPool_ReusesFreedObjects(t *testing.T) {
	made := 0
	p := pool.NewRingPool(4, func() []byte {
		made++
		return make([]byte, 64)
	})

	buf := p.Get()
	assert.Equal(t, 1, made)
	p.Put(buf)
	assert.Equal(t, 1, p.Idle())

	again := p.Get()
	assert.Equal(t, 1, made, "free-listed object was not reused")
	assert.Equal(t, &buf[0], &again[0])
}

func TestRingPool_DropsBeyondBound(t *testing.T) {
	p := pool.NewRingPool(2, func() int { return 0 })
	for i := 0; i < 5; i++ {
		p.Put(i)
	}
	assert.Equal(t, 2, p.Idle(), "free list exceeded its bound")
}

func TestRingPool_ConcurrentGetPut(t *testing.T) {
	p := pool.NewRingPool(64, func() *int { return new(int) })
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := p.Get()
				*v++
				p.Put(v)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, p.Idle(), 64)
}

// TestObjectPool_ContractBothImplementations drives RingPool and
// SyncPool through the shared interface: objects come out usable and a
// returned object never poisons later Gets.
func TestObjectPool_ContractBothImplementations(t *testing.T) {
	pools := map[string]pool.ObjectPool[[]byte]{
		"ring": pool.NewRingPool(8, func() []byte { return make([]byte, 32) }),
		"sync": pool.NewSyncPool(func() []byte { return make([]byte, 32) }),
	}
	for name, p := range pools {
		t.Run(name, func(t *testing.T) {
			buf := p.Get()
			assert.Len(t, buf, 32)
			buf[0] = 0xff
			p.Put(buf)
			for i := 0; i < 4; i++ {
				got := p.Get()
				assert.Len(t, got, 32)
				p.Put(got)
			}
		})
	}
}

func TestSyncPool_FactoryBacksAnEmptyPool(t *testing.T) {
	made := 0
	p := pool.NewSyncPool(func() *int {
		made++
		return new(int)
	})
	a := p.Get()
	b := p.Get()
	assert.NotNil(t, a)
	assert.NotNil(t, b)
	assert.GreaterOrEqual(t, made, 2, "distinct Gets on an empty pool must hit the factory")
}

func TestBufferRing_NameAndContract(t *testing.T) {
	r := pool.NewBufferRing[byte]("uart_rx", 128)
	assert.Equal(t, "uart_rx", r.Name())
	assert.Equal(t, 127, r.Cap())

	assert.NoError(t, r.Push(0x5a))
	v, err := r.Pop()
	assert.NoError(t, err)
	assert.EqualValues(t, 0x5a, v)
}
