// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// spsc_test.go — Lock-free hand-off between one producer and one
// consumer goroutine. Run with -race.
package ringbuf_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/momentics/hioload-ring/ringbuf"
)

// TestSPSC_FIFOIntegrity streams a monotone sequence through a small
// buffer so every index wraps many times, and checks order and loss on
// the consumer side.
func TestSPSC_FIFOIntegrity(t *testing.T) {
	const total = 200000
	r := ringbuf.NewSPSC[int](8)

	done := make(chan error, 1)
	go func() {
		next := 0
		for next < total {
			v, err := r.Pop()
			if err != nil {
				runtime.Gosched()
				continue
			}
			if v != next {
				done <- errFmt("got %d, want %d", v, next)
				return
			}
			next++
		}
		done <- nil
	}()

	for i := 0; i < total; i++ {
		for r.Push(i) != nil {
			runtime.Gosched()
		}
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if !r.Empty() {
		t.Fatalf("buffer not drained: Len() = %d", r.Len())
	}
}

// TestSPSC_BulkFIFOIntegrity drives the same stream through PushBulk and
// PopBulk with mismatched chunk sizes.
func TestSPSC_BulkFIFOIntegrity(t *testing.T) {
	const total = 120000
	r := ringbuf.NewSPSC[int](64)

	done := make(chan error, 1)
	go func() {
		next := 0
		chunk := make([]int, 11)
		for next < total {
			n := r.PopBulk(chunk)
			if n == 0 {
				runtime.Gosched()
				continue
			}
			for _, v := range chunk[:n] {
				if v != next {
					done <- errFmt("got %d, want %d", v, next)
					return
				}
				next++
			}
		}
		done <- nil
	}()

	src := make([]int, 7)
	sent := 0
	for sent < total {
		n := len(src)
		if total-sent < n {
			n = total - sent
		}
		for i := 0; i < n; i++ {
			src[i] = sent + i
		}
		pushed := 0
		for pushed < n {
			k := r.PushBulk(src[pushed:n])
			if k == 0 {
				runtime.Gosched()
			}
			pushed += k
		}
		sent += n
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

// TestSPSC_LenNeverExceedsCap samples queries from the consumer side
// while the producer runs; snapshots may be stale but must stay inside
// the invariant bounds.
func TestSPSC_LenNeverExceedsCap(t *testing.T) {
	const total = 50000
	r := ringbuf.NewSPSC[uint16](16)

	stop := make(chan struct{})
	go func() {
		defer close(stop)
		for i := 0; i < total; i++ {
			for r.Push(uint16(i)) != nil {
				runtime.Gosched()
			}
		}
	}()

	consumed := 0
	for consumed < total {
		if l := r.Len(); l < 0 || l > r.Cap() {
			t.Fatalf("Len() = %d outside [0, %d]", l, r.Cap())
		}
		if f := r.Free(); f < 0 || f > r.Cap() {
			t.Fatalf("Free() = %d outside [0, %d]", f, r.Cap())
		}
		if _, err := r.Pop(); err == nil {
			consumed++
		}
	}
	<-stop
}

func errFmt(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
