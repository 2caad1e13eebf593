// File: concurrency/blocking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Blocking is a bounded hand-off buffer with true blocking waits: callers
// suspend until woken instead of burning CPU in a poll loop. Safe for any
// number of producers and consumers.

package concurrency

import (
	"context"
	"time"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Blocking[any])(nil)

// Blocking is a multi-producer/multi-consumer bounded FIFO backed by a
// buffered channel. All Cap() slots are usable.
type Blocking[T any] struct {
	ch chan T
}

// NewBlocking allocates a blocking buffer holding up to capacity items.
// Capacity below 1 is raised to 1.
func NewBlocking[T any](capacity int) *Blocking[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Blocking[T]{ch: make(chan T, capacity)}
}

// Put stores an item, blocking while the buffer is full. A canceled ctx
// unblocks the wait; its error is checked before the wait begins, so an
// already-canceled context fails even when space is free.
func (b *Blocking[T]) Put(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case b.ch <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get removes the oldest item, blocking while the buffer is empty.
// Cancellation semantics match Put.
func (b *Blocking[T]) Get(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	select {
	case item := <-b.ch:
		return item, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// PutTimeout is Put bounded by a deadline of now+timeout; it fails with
// ErrTimeout once the deadline passes with the buffer still full.
func (b *Blocking[T]) PutTimeout(ctx context.Context, item T, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case b.ch <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return api.ErrTimeout
	}
}

// GetTimeout is Get bounded by a deadline of now+timeout.
func (b *Blocking[T]) GetTimeout(ctx context.Context, timeout time.Duration) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case item := <-b.ch:
		return item, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-timer.C:
		return zero, api.ErrTimeout
	}
}

// TryPut stores an item without waiting; returns false if full.
func (b *Blocking[T]) TryPut(item T) bool {
	select {
	case b.ch <- item:
		return true
	default:
		return false
	}
}

// TryGet removes the oldest item without waiting; ok false if empty.
func (b *Blocking[T]) TryGet() (T, bool) {
	select {
	case item := <-b.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the number of items currently buffered.
func (b *Blocking[T]) Len() int {
	return len(b.ch)
}

// Cap returns the fixed buffer capacity.
func (b *Blocking[T]) Cap() int {
	return cap(b.ch)
}

// IsEmpty reports whether the buffer holds no items.
func (b *Blocking[T]) IsEmpty() bool {
	return len(b.ch) == 0
}

// IsFull reports whether the buffer cannot accept another item.
func (b *Blocking[T]) IsFull() bool {
	return len(b.ch) == cap(b.ch)
}
