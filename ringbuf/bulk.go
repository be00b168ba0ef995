// File: ringbuf/bulk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vectorized transfers. Each call takes one snapshot of the peer cursor,
// moves up to the snapshot's worth of elements in at most two contiguous
// copies, and publishes its own cursor once. Under concurrent SPSC use a
// peer may change availability between two independent calls; no retry
// or CAS is attempted, since only one of the two cursors can race a
// given caller.

package ringbuf

// PeekBulk copies up to len(dst) of the oldest elements into dst without
// consuming them and returns the count copied. Consumer role only.
func (b *Buffer[T, C, PC]) PeekBulk(dst []T) int {
	t := b.loadTail()
	cnt := b.distance(b.loadHead(), t)
	if len(dst) < int(cnt) {
		cnt = uint32(len(dst))
	}
	b.copyOut(dst[:cnt], t)
	return int(cnt)
}

// PopBulk copies up to len(dst) of the oldest elements into dst,
// consumes them and returns the count moved. Consumer role only.
func (b *Buffer[T, C, PC]) PopBulk(dst []T) int {
	t := b.loadTail()
	cnt := b.distance(b.loadHead(), t)
	if len(dst) < int(cnt) {
		cnt = uint32(len(dst))
	}
	b.copyOut(dst[:cnt], t)
	b.clearRange(t, cnt)
	b.storeTail(b.advance(t, cnt))
	return int(cnt)
}

// Discard consumes up to count elements without copying them out and
// returns the count discarded. It is PopBulk with no destination.
// Consumer role only.
func (b *Buffer[T, C, PC]) Discard(count int) int {
	if count <= 0 {
		return 0
	}
	t := b.loadTail()
	cnt := b.distance(b.loadHead(), t)
	if count < int(cnt) {
		cnt = uint32(count)
	}
	b.clearRange(t, cnt)
	b.storeTail(b.advance(t, cnt))
	return int(cnt)
}

// PushBulk copies as many leading elements of src as free slots permit,
// publishes head once and returns the count pushed. The remainder is the
// caller's to retry. Producer role only.
func (b *Buffer[T, C, PC]) PushBulk(src []T) int {
	h := b.loadHead()
	cnt := (b.n - 1) - b.distance(h, b.loadTail())
	if len(src) < int(cnt) {
		cnt = uint32(len(src))
	}
	first := copy(b.slots[h:], src[:cnt])
	copy(b.slots, src[first:cnt])
	b.storeHead(b.advance(h, cnt))
	return int(cnt)
}

// copyOut copies len(dst) elements starting at slot t, wrapping once.
// Caller guarantees len(dst) does not exceed the stored count.
func (b *Buffer[T, C, PC]) copyOut(dst []T, t uint32) {
	first := copy(dst, b.slots[t:])
	copy(dst[first:], b.slots)
}

// clearRange zeroes cnt slots starting at t so consumed slots do not pin
// references. Caller publishes the tail advance afterwards.
func (b *Buffer[T, C, PC]) clearRange(t, cnt uint32) {
	end := t + cnt
	if end <= b.n {
		clear(b.slots[t:end])
		return
	}
	clear(b.slots[t:])
	clear(b.slots[:end-b.n])
}
