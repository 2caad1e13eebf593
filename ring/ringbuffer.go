// File: ring/ringbuffer.go
// Package ring implements a fixed-capacity circular buffer with immediate,
// deadline-bounded and cancellation-aware access.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer carries NO internal synchronization: no lock, no atomics, no
// fences. Calling its methods from more than one goroutine at a time is a
// data race with undefined results. Use concurrency.SPSC or
// concurrency.Blocking when producer and consumer live on different
// goroutines.

package ring

import (
	"context"
	"errors"
	"time"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a bounded circular FIFO over a fixed slot array.
//
// Two cursors advance modulo the slot count: read names the next slot to
// consume, write the next slot to fill. Empty is read == write; full is
// write+1 == read (mod capacity). One slot always stays unoccupied to tell
// the two states apart, so a Buffer holds at most Cap()-1 items.
type Buffer[T any] struct {
	slots []T
	read  int
	write int
	wait  WaitStrategy
}

// New allocates a Buffer with the given capacity. Capacity must be a
// positive multiple of the page size (probed from the platform, or supplied
// via WithPageSize); anything else fails with ErrInvalidCapacity.
func New[T any](capacity int, opts ...Option) (*Buffer[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity <= 0 || capacity%cfg.pageSize != 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity).
			WithContext("capacity", capacity).
			WithContext("page_size", cfg.pageSize)
	}
	return &Buffer[T]{
		slots: make([]T, capacity),
		wait:  cfg.wait,
	}, nil
}

// IsEmpty reports whether the buffer holds no items.
func (b *Buffer[T]) IsEmpty() bool {
	return b.read == b.write
}

// IsFull reports whether the buffer cannot accept another item.
func (b *Buffer[T]) IsFull() bool {
	return (b.write+1)%len(b.slots) == b.read
}

// Len returns the number of items currently stored.
func (b *Buffer[T]) Len() int {
	return (b.write - b.read + len(b.slots)) % len(b.slots)
}

// Cap returns the declared capacity. The buffer stores at most Cap()-1
// items; one slot is reserved to disambiguate empty from full.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Get removes and returns the oldest item. Fails with ErrEmpty without
// waiting. The vacated slot is zeroed so the element can be collected.
func (b *Buffer[T]) Get() (T, error) {
	var zero T
	if b.IsEmpty() {
		return zero, api.ErrEmpty
	}
	item := b.slots[b.read]
	b.slots[b.read] = zero
	b.read = (b.read + 1) % len(b.slots)
	return item, nil
}

// Put stores an item. Fails with ErrFull without waiting.
func (b *Buffer[T]) Put(item T) error {
	if b.IsFull() {
		return api.ErrFull
	}
	b.slots[b.write] = item
	b.write = (b.write + 1) % len(b.slots)
	return nil
}

// GetTimeout polls for an item until the absolute deadline now+timeout
// passes, then fails with ErrTimeout. The wait is a busy poll: the calling
// goroutine re-evaluates emptiness and the clock every iteration and stays
// on CPU for the whole wait under the default WaitSpin strategy. The
// occupancy check runs before the deadline check, so an item present at the
// deadline edge still wins, and the timeout never fires early.
func (b *Buffer[T]) GetTimeout(timeout time.Duration) (T, error) {
	deadline := time.Now().Add(timeout)
	for {
		if !b.IsEmpty() {
			return b.Get()
		}
		if !time.Now().Before(deadline) {
			var zero T
			return zero, api.ErrTimeout
		}
		b.wait.pause()
	}
}

// GetContext is GetTimeout with cooperative cancellation. ctx.Err() is
// inspected first on every iteration, before the occupancy and deadline
// checks, so an already-canceled context wins even when an item is
// available. The context error is returned untouched.
func (b *Buffer[T]) GetContext(ctx context.Context, timeout time.Duration) (T, error) {
	deadline := time.Now().Add(timeout)
	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if !b.IsEmpty() {
			return b.Get()
		}
		if !time.Now().Before(deadline) {
			var zero T
			return zero, api.ErrTimeout
		}
		b.wait.pause()
	}
}

// PutTimeout polls for a free slot until the deadline now+timeout passes,
// then fails with ErrTimeout. Same loop discipline as GetTimeout with
// fullness in place of emptiness.
func (b *Buffer[T]) PutTimeout(item T, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if !b.IsFull() {
			return b.Put(item)
		}
		if !time.Now().Before(deadline) {
			return api.ErrTimeout
		}
		b.wait.pause()
	}
}

// PutContext is PutTimeout with cooperative cancellation, checked first on
// every iteration ahead of the fullness and deadline checks.
func (b *Buffer[T]) PutContext(ctx context.Context, item T, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !b.IsFull() {
			return b.Put(item)
		}
		if !time.Now().Before(deadline) {
			return api.ErrTimeout
		}
		b.wait.pause()
	}
}

// TryGet removes the oldest item; ok is false on an empty buffer instead
// of an error. On a false result the returned value is the zero value and
// carries no meaning.
func (b *Buffer[T]) TryGet() (T, bool) {
	item, err := b.Get()
	return item, err == nil
}

// TryGetTimeout is GetTimeout with the timeout reported as a false result.
func (b *Buffer[T]) TryGetTimeout(timeout time.Duration) (T, bool) {
	item, err := b.GetTimeout(timeout)
	return item, err == nil
}

// TryGetContext is GetContext with empty/timeout reported as a false
// result. Cancellation is NOT converted: a canceled context still surfaces
// as a hard error.
func (b *Buffer[T]) TryGetContext(ctx context.Context, timeout time.Duration) (T, bool, error) {
	item, err := b.GetContext(ctx, timeout)
	if err == nil {
		return item, true, nil
	}
	var zero T
	if errors.Is(err, api.ErrTimeout) {
		return zero, false, nil
	}
	return zero, false, err
}

// TryPut stores an item; returns false on a full buffer instead of an
// error.
func (b *Buffer[T]) TryPut(item T) bool {
	return b.Put(item) == nil
}

// TryPutTimeout is PutTimeout with the timeout reported as a false result.
func (b *Buffer[T]) TryPutTimeout(item T, timeout time.Duration) bool {
	return b.PutTimeout(item, timeout) == nil
}

// TryPutContext is PutContext with full/timeout reported as a false
// result. Cancellation still surfaces as a hard error.
func (b *Buffer[T]) TryPutContext(ctx context.Context, item T, timeout time.Duration) (bool, error) {
	err := b.PutContext(ctx, item, timeout)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, api.ErrTimeout) {
		return false, nil
	}
	return false, err
}
