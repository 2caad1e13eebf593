// File: concurrency/spsc.go
// Package concurrency provides synchronized bounded buffers for
// cross-goroutine hand-off.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC is a lock-free single-producer/single-consumer ring with atomic
// monotonic head/tail counters, padded to prevent false sharing.

package concurrency

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
)

const cacheLinePad = 64

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*SPSC[any])(nil)

// SPSC is a bounded FIFO safe for exactly one producing goroutine and one
// consuming goroutine running concurrently. head and tail grow without
// wrapping; slot indices are counter&mask. Unlike ring.Buffer, every slot
// is usable: the counters disambiguate full from empty.
type SPSC[T any] struct {
	head  atomic.Uint64
	_     [cacheLinePad]byte
	tail  atomic.Uint64
	_     [cacheLinePad]byte
	mask  uint64
	slots []T
}

// NewSPSC allocates a ring with capacity rounded up to a power of two.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &SPSC[T]{
		mask:  uint64(size - 1),
		slots: make([]T, size),
	}
}

// TryPut stores an item; returns false if full. Producer side only.
func (r *SPSC[T]) TryPut(item T) bool {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail-head == uint64(len(r.slots)) {
		return false
	}
	r.slots[tail&r.mask] = item
	r.tail.Store(tail + 1)
	return true
}

// TryGet removes the oldest item; ok false if empty. Consumer side only.
// The vacated slot is zeroed so the element can be collected.
func (r *SPSC[T]) TryGet() (T, bool) {
	var zero T
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		return zero, false
	}
	idx := head & r.mask
	item := r.slots[idx]
	r.slots[idx] = zero
	r.head.Store(head + 1)
	return item, true
}

// PutContext retries TryPut until space frees up or ctx is canceled,
// yielding the processor between attempts. Cancellation is checked before
// each attempt and returned untouched.
func (r *SPSC[T]) PutContext(ctx context.Context, item T) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.TryPut(item) {
			return nil
		}
		runtime.Gosched()
	}
}

// GetContext retries TryGet until an item arrives or ctx is canceled.
func (r *SPSC[T]) GetContext(ctx context.Context) (T, error) {
	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if item, ok := r.TryGet(); ok {
			return item, nil
		}
		runtime.Gosched()
	}
}

// Len returns the number of items currently in the buffer.
func (r *SPSC[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the fixed buffer capacity.
func (r *SPSC[T]) Cap() int {
	return len(r.slots)
}

// IsEmpty reports whether the buffer holds no items.
func (r *SPSC[T]) IsEmpty() bool {
	return r.Len() == 0
}

// IsFull reports whether the buffer cannot accept another item.
func (r *SPSC[T]) IsFull() bool {
	return r.Len() == len(r.slots)
}
