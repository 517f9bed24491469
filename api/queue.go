// File: api/queue.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO ring queue contract.

package api

// Queue is the full operation set of a fixed-capacity ring queue.
//
// Capacity is bound at construction and never changes. The queue performs
// no internal locking: correctness is guaranteed only under sequential
// access, and any cross-goroutine or interrupt-style sharing must be
// serialized by the caller around every call.
type Queue[T any] interface {
	// Reset reinitializes indices and count; storage contents are not erased.
	Reset() Status
	// Clear is Reset without a result; a no-op on an invalid handle.
	Clear()

	// Push enqueues v, evicting the oldest element when full.
	Push(v T) Status
	// PushNoOverwrite enqueues v, failing with StatusFull instead of evicting.
	PushNoOverwrite(v T) Status

	// Pull dequeues and returns the oldest element.
	Pull() (T, Status)
	// PullMany dequeues up to len(dst) elements into dst in FIFO order and
	// returns how many were moved. Fewer than requested is a success.
	PullMany(dst []T) (int, Status)

	// Peek returns a copy of the oldest element without dequeuing.
	Peek() (T, Status)
	// PeekRef returns a read-only view of the oldest element, or nil when
	// empty. The pointer is invalidated by the next mutating call.
	PeekRef() *T

	// IsEmpty reports count == 0; true for an invalid handle.
	IsEmpty() bool
	// IsFull reports count == capacity.
	IsFull() bool
	// Len returns the number of live elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Free returns Cap() - Len().
	Free() int
}
