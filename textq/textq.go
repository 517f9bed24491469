// File: textq/textq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package textq

import (
	"github.com/momentics/hioload-rq/api"
	"github.com/momentics/hioload-rq/ringq"
)

// TextQueue is a ring queue of fixed-length line elements. The full engine
// operation set is promoted from the embedded queue; PushString and
// PullString add the truncating string conversions at the boundary.
//
// Like the engine, a TextQueue is single-threaded by contract.
type TextQueue[S Chars] struct {
	*ringq.Queue[S]
}

// New returns a text queue holding up to capacity lines of element size S.
func New[S Chars](capacity int) *TextQueue[S] {
	return &TextQueue[S]{Queue: ringq.New[S](capacity)}
}

// PushString enqueues text as a new element, truncating to S-1 bytes with
// a guaranteed NUL terminator. The overwrite policy applies: on a full
// queue the oldest line is evicted.
func (q *TextQueue[S]) PushString(text string) api.Status {
	if q == nil {
		return api.StatusNullHandle
	}
	return q.Queue.Push(MakeLine[S](text))
}

// PullString dequeues the oldest line into dst, copying at most
// len(dst)-1 content bytes and NUL-terminating. Returns true when a line
// was delivered. On an empty queue it returns false and leaves dst
// untouched; a zero-length dst returns false without dequeuing.
func (q *TextQueue[S]) PullString(dst []byte) bool {
	if q == nil || len(dst) == 0 {
		return false
	}
	v, st := q.Queue.Pull()
	if st != api.StatusOK {
		return false
	}
	src := bytesOf(&v)
	n := 0
	for n < len(src) && src[n] != 0 && n < len(dst)-1 {
		dst[n] = src[n]
		n++
	}
	dst[n] = 0
	return true
}
