// Package api
// Author: momentics@gmail.com
//
// Common contract for bounded FIFO buffers.

package api

// Ring is the bounded FIFO contract shared by every buffer flavor in this
// library: the unsynchronized ring.Buffer, the lock-free concurrency.SPSC
// and the channel-backed concurrency.Blocking.
type Ring[T any] interface {
	// TryPut stores an item, returns false if full.
	TryPut(item T) bool
	// TryGet removes the oldest item, returns false if empty.
	TryGet() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
	// IsEmpty reports whether the buffer holds no items.
	IsEmpty() bool
	// IsFull reports whether the buffer cannot accept another item.
	IsFull() bool
}
