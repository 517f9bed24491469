// Package ringq
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, allocation-free ring queue engine for hioload-rq.
// One backing array, a read cursor, a write cursor and a live-element
// counter; every operation is O(1) except PullMany, which is O(k) in the
// elements actually moved. The overwrite Push policy guarantees the newest
// element always has room at the cost of silently evicting the oldest.
//
// The engine is deliberately single-threaded: no locks, no atomics, no
// blocking. Callers sharing an instance across goroutines or an
// interrupt-style context must serialize every call externally (package
// drain shows the intended composition).
package ringq
