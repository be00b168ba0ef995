// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// spill_test.go — FIFO and spill accounting of SpillQueue.
package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

func TestSpillQueue_RingOnlyPath(t *testing.T) {
	q := pool.NewSpillQueue[int](8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 5, q.Len())
	assert.EqualValues(t, 0, q.Spilled())

	for i := 0; i < 5; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, err := q.Pop()
	assert.ErrorIs(t, err, api.ErrBufferEmpty)
}

func TestSpillQueue_OverflowPreservesFIFO(t *testing.T) {
	q := pool.NewSpillQueue[int](4) // ring holds 3
	const total = 20
	for i := 0; i < total; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, total, q.Len())
	assert.EqualValues(t, total-3, q.Spilled())

	for i := 0; i < total; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v, "FIFO broken across the spill boundary")
	}
	assert.Equal(t, 0, q.Len())
}

func TestSpillQueue_RefillAfterDrain(t *testing.T) {
	q := pool.NewSpillQueue[int](4)
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push(i))
	}
	// drain half; the overflow should flow back into ring slots
	for i := 0; i < 5; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	// once the overflow is empty, pushes use the ring again
	for q.Len() > 0 {
		_, err := q.Pop()
		require.NoError(t, err)
	}
	before := q.Spilled()
	require.NoError(t, q.Push(42))
	assert.Equal(t, before, q.Spilled())
}

func TestSpillQueue_ConcurrentPushers(t *testing.T) {
	q := pool.NewSpillQueue[int](8)
	const workers, per = 8, 500

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				_ = q.Push(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*per, q.Len())
	count := 0
	for {
		if _, err := q.Pop(); err != nil {
			break
		}
		count++
	}
	assert.Equal(t, workers*per, count)
}
