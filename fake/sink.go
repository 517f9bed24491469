// File: fake/sink.go
// Author: momentics <momentics@gmail.com>
//
// Recording line sink for tests and examples. Safe for delivery from a
// drain worker goroutine.

package fake

import "sync"

// Sink records every line it receives.
type Sink struct {
	mu    sync.Mutex
	lines []string
}

// NewSink returns an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

// Write records one line. Signature matches both hlog.Callback and the
// drain sink contract.
func (s *Sink) Write(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
}

// Lines returns a snapshot of everything recorded so far.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns the number of recorded lines.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Reset drops all recorded lines.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.lines = s.lines[:0]
	s.mu.Unlock()
}
