// Package drain
// Author: momentics <momentics@gmail.com>
//
// Deferred line delivery over a textq.TextQueue. Producers enqueue
// formatted lines from latency-sensitive contexts; a dedicated worker on
// a locked (optionally CPU-pinned) OS thread drains them in batches and
// hands each line to a sink callback.
//
// The engine itself is single-threaded by contract, so the Drainer owns
// the serialization: every queue call, producer or consumer side, happens
// under one mutex. Drained lines move through an unbounded spool before
// delivery, keeping the lock narrow even when the sink is slow.
//
// Tuning (batch size, idle poll interval) can be bound to a
// control.ConfigStore and changes apply on hot reload; throughput
// counters land in a control.MetricsRegistry when one is provided.
package drain
