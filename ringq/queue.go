// File: ringq/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity ring queue with overwrite-on-full Push, bounded
// PushNoOverwrite, single and bulk Pull, and non-owning Peek access.
// Zero allocation after construction; state is three integers plus the
// backing array.

package ringq

import "github.com/momentics/hioload-rq/api"

// Compile-time conformance with the public contract.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a fixed-capacity FIFO ring queue over elements of type T.
//
// The live elements, oldest first, are the count slots starting at the
// read cursor and advancing circularly. Slots outside that range hold
// stale values and are never reachable through the queue's operations.
// read and write coincide both when the queue is empty and when it is
// full; count is authoritative.
//
// The zero value is an invalid handle: every mutating or reading
// operation on it reports StatusNullHandle, and the queries fall back to
// their lenient defaults (empty, zero length). Construct with New or
// NewFrom.
type Queue[T any] struct {
	storage []T
	write   int // next slot to write
	read    int // oldest live slot
	count   int // live elements, 0..len(storage)
}

// New returns a queue of the given fixed capacity. The backing array is
// the only allocation the queue ever performs. Panics when capacity < 1,
// mirroring the construction contract of the rest of the library's
// fixed-footprint primitives.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &Queue[T]{storage: make([]T, capacity)}
}

// NewFrom builds a queue over caller-owned backing storage, so embedding
// code can place the slots wherever its memory budget demands. The slice
// is used in place; its length is the capacity. Panics on empty storage.
func NewFrom[T any](storage []T) *Queue[T] {
	if len(storage) == 0 {
		panic("ringq: backing storage must not be empty")
	}
	return &Queue[T]{storage: storage[:len(storage):len(storage)]}
}

// invalid reports whether q cannot be operated on: a nil reference or a
// zero value that never went through construction.
func (q *Queue[T]) invalid() bool {
	return q == nil || len(q.storage) == 0
}

// Reset reinitializes cursors and count. Storage contents are not erased;
// stale values simply become unreachable.
func (q *Queue[T]) Reset() api.Status {
	if q.invalid() {
		return api.StatusNullHandle
	}
	q.write, q.read, q.count = 0, 0, 0
	return api.StatusOK
}

// Clear is Reset for callers that do not care about the handle check.
// A no-op, not an error, on an invalid handle.
func (q *Queue[T]) Clear() {
	if q.invalid() {
		return
	}
	q.write, q.read, q.count = 0, 0, 0
}

// Push enqueues v under the overwrite policy: when the queue is full the
// oldest element is evicted by advancing the read cursor, count stays at
// capacity, and the write proceeds. Always succeeds on a valid handle.
func (q *Queue[T]) Push(v T) api.Status {
	if q.invalid() {
		return api.StatusNullHandle
	}
	n := len(q.storage)
	if q.count >= n {
		q.read = (q.read + 1) % n
	} else {
		q.count++
	}
	q.storage[q.write] = v
	q.write = (q.write + 1) % n
	return api.StatusOK
}

// PushNoOverwrite enqueues v, failing with StatusFull (no mutation) when
// the queue is at capacity.
func (q *Queue[T]) PushNoOverwrite(v T) api.Status {
	if q.invalid() {
		return api.StatusNullHandle
	}
	n := len(q.storage)
	if q.count >= n {
		return api.StatusFull
	}
	q.storage[q.write] = v
	q.write = (q.write + 1) % n
	q.count++
	return api.StatusOK
}

// Pull dequeues the oldest element. The slot's bytes are not zeroed; the
// value simply leaves the live range.
func (q *Queue[T]) Pull() (T, api.Status) {
	var zero T
	if q.invalid() {
		return zero, api.StatusNullHandle
	}
	if q.count == 0 {
		return zero, api.StatusEmpty
	}
	v := q.storage[q.read]
	q.read = (q.read + 1) % len(q.storage)
	q.count--
	return v, api.StatusOK
}

// PullMany dequeues up to len(dst) elements into dst in FIFO order and
// returns how many were moved.
//
// Emptiness is checked strictly against the pre-call count, but a result
// smaller than len(dst) is a success: the queue hands over what it has
// rather than failing a partial request. len(dst) == 0 is rejected with
// StatusInvalidLength.
func (q *Queue[T]) PullMany(dst []T) (int, api.Status) {
	if q.invalid() {
		return 0, api.StatusNullHandle
	}
	if len(dst) == 0 {
		return 0, api.StatusInvalidLength
	}
	if q.count == 0 {
		return 0, api.StatusEmpty
	}
	n := len(q.storage)
	moved := len(dst)
	if moved > q.count {
		moved = q.count
	}
	for i := 0; i < moved; i++ {
		dst[i] = q.storage[q.read]
		q.read = (q.read + 1) % n
	}
	q.count -= moved
	return moved, api.StatusOK
}

// Peek returns a copy of the oldest element without touching cursors or
// count.
func (q *Queue[T]) Peek() (T, api.Status) {
	var zero T
	if q.invalid() {
		return zero, api.StatusNullHandle
	}
	if q.count == 0 {
		return zero, api.StatusEmpty
	}
	return q.storage[q.read], api.StatusOK
}

// PeekRef returns a non-owning, read-only view of the oldest element, or
// nil when the queue is empty or the handle invalid.
//
// The pointer aims into the backing array: any subsequent mutating call
// (Push, PushNoOverwrite, Pull, PullMany, Reset, Clear) may relocate or
// overwrite the slot it names, so the reference must not be held across
// mutations. The rule is a runtime contract, exercised by the tests.
func (q *Queue[T]) PeekRef() *T {
	if q.invalid() || q.count == 0 {
		return nil
	}
	return &q.storage[q.read]
}

// IsEmpty reports whether the queue holds no live elements. An invalid
// handle is treated as empty rather than an error, so the query is always
// safe to ask.
func (q *Queue[T]) IsEmpty() bool {
	return q.invalid() || q.count == 0
}

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool {
	return !q.invalid() && q.count >= len(q.storage)
}

// Len returns the number of live elements, 0 for an invalid handle.
func (q *Queue[T]) Len() int {
	if q.invalid() {
		return 0
	}
	return q.count
}

// Cap returns the fixed capacity, 0 for an invalid handle.
func (q *Queue[T]) Cap() int {
	if q.invalid() {
		return 0
	}
	return len(q.storage)
}

// Free returns the number of slots still writable without eviction.
func (q *Queue[T]) Free() int {
	if q.invalid() {
		return 0
	}
	return len(q.storage) - q.count
}
