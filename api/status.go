// File: api/status.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Status codes for queue operations. Returned by value, never panicked or
// thrown: the library stays usable in interrupt-adjacent, allocation-free
// call sites where unwinding is unacceptable.

package api

import "errors"

// Status reports the outcome of a queue operation.
//
// Every mutating or reading operation returns a Status (queries return a
// plain bool or int instead and are defined even for an invalid handle).
// An operation that returns a non-OK status has left the queue unchanged;
// the single documented exception is PullMany, whose partial fill is a
// success, not an error.
type Status uint8

const (
	// StatusOK signals the operation completed.
	StatusOK Status = iota
	// StatusNullHandle signals the queue reference is nil or was never
	// constructed.
	StatusNullHandle
	// StatusEmpty signals a read was attempted with no live elements.
	StatusEmpty
	// StatusFull signals a bounded write was attempted with no capacity.
	StatusFull
	// StatusInvalidLength signals a bulk request of zero elements.
	StatusInvalidLength
)

// Sentinel errors mirroring the status codes, for callers that thread
// results through error-returning layers.
var (
	ErrNullHandle    = errors.New("ringq: nil or unconstructed queue")
	ErrEmpty         = errors.New("ringq: queue empty")
	ErrFull          = errors.New("ringq: queue full")
	ErrInvalidLength = errors.New("ringq: zero-length bulk request")
)

// String returns the code's name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNullHandle:
		return "NULL_HANDLE"
	case StatusEmpty:
		return "EMPTY"
	case StatusFull:
		return "FULL"
	case StatusInvalidLength:
		return "INVALID_LENGTH"
	default:
		return "UNKNOWN"
	}
}

// Err maps the status to its sentinel error, nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNullHandle:
		return ErrNullHandle
	case StatusEmpty:
		return ErrEmpty
	case StatusFull:
		return ErrFull
	case StatusInvalidLength:
		return ErrInvalidLength
	default:
		return errors.New("ringq: unknown status")
	}
}
