// File: ringq/queue_bench_test.go
// Author: momentics <momentics@gmail.com>

package ringq_test

import (
	"testing"

	"github.com/momentics/hioload-rq/ringq"
)

// BenchmarkPushPull measures the steady-state hand-off cost of one
// element through a warm queue. Zero allocations expected.
func BenchmarkPushPull(b *testing.B) {
	q := ringq.New[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pull()
	}
}

// BenchmarkPushOverwrite measures Push against a permanently full queue,
// i.e. the eviction path.
func BenchmarkPushOverwrite(b *testing.B) {
	q := ringq.New[int](64)
	for i := 0; i < 64; i++ {
		q.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
}

// BenchmarkPullMany measures bulk drain throughput in batches of 32.
func BenchmarkPullMany(b *testing.B) {
	q := ringq.New[int](1024)
	dst := make([]int, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 32; j++ {
			q.Push(j)
		}
		q.PullMany(dst)
	}
}
