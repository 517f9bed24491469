// File: drain/drainer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package drain

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-rq/affinity"
	"github.com/momentics/hioload-rq/api"
	"github.com/momentics/hioload-rq/control"
	"github.com/momentics/hioload-rq/textq"
)

// Sink receives one drained line per call, in FIFO order.
type Sink func(line string)

// Options tunes a Drainer. Zero values select the defaults.
type Options struct {
	// Capacity is the line ring capacity. Default 256.
	Capacity int
	// BatchSize caps lines moved per sweep. Default 32, clamped to Capacity.
	BatchSize int
	// Interval is the idle poll period. Default 1ms.
	Interval time.Duration
	// Pin enables pinning the worker thread to core PinCPU.
	Pin bool
	// PinCPU is the target core when Pin is set.
	PinCPU int

	// Config, when set, overrides BatchSize/Interval from keys
	// "drain.batch" and "drain.interval" and tracks hot reloads.
	Config *control.ConfigStore
	// Metrics, when set, receives drain counters.
	Metrics *control.MetricsRegistry
	// Probes, when set, gains drainer state probes ("drain.depth",
	// "drain.batch", "drain.interval") for DumpState.
	Probes *control.DebugProbes
}

// Drainer pumps lines from a fixed-capacity text queue to a sink.
type Drainer[S textq.Chars] struct {
	mu sync.Mutex
	q  *textq.TextQueue[S]

	// sweepMu serializes consumers (worker loop and Flush callers), so
	// scratch and spool always see one sweep at a time.
	sweepMu sync.Mutex
	scratch []S
	spool   *queue.Queue // lines pulled but not yet delivered

	sink    Sink
	metrics *control.MetricsRegistry

	batch    atomic.Int64
	interval atomic.Int64 // nanoseconds

	pin    bool
	pinCPU int

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// New builds a Drainer delivering to sink. The element size S bounds each
// line; longer pushes truncate per textq rules.
func New[S textq.Chars](sink Sink, opts Options) *Drainer[S] {
	if sink == nil {
		panic("drain: sink must not be nil")
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = 256
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = 32
	}
	if batch > capacity {
		batch = capacity
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}

	d := &Drainer[S]{
		q:       textq.New[S](capacity),
		scratch: make([]S, capacity),
		spool:   queue.New(),
		sink:    sink,
		metrics: opts.Metrics,
		pin:     opts.Pin,
		pinCPU:  opts.PinCPU,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	d.batch.Store(int64(batch))
	d.interval.Store(int64(interval))

	if opts.Config != nil {
		cfg := opts.Config
		apply := func() {
			b := cfg.Int("drain.batch", batch)
			if b < 1 {
				b = 1
			}
			if b > capacity {
				b = capacity
			}
			d.batch.Store(int64(b))
			d.interval.Store(int64(cfg.Duration("drain.interval", interval)))
		}
		apply()
		cfg.OnReload(apply)
	}
	if opts.Probes != nil {
		opts.Probes.RegisterProbe("drain.depth", func() any { return d.Depth() })
		opts.Probes.RegisterProbe("drain.batch", func() any { return d.Batch() })
		opts.Probes.RegisterProbe("drain.interval", func() any { return d.Interval().String() })
	}
	return d
}

// Enqueue pushes one line into the ring under the drainer's lock. The
// overwrite policy applies: when the ring is full the oldest undelivered
// line is evicted, counted as "drain.evicted".
func (d *Drainer[S]) Enqueue(line string) api.Status {
	d.mu.Lock()
	evicted := d.q.IsFull()
	st := d.q.PushString(line)
	d.mu.Unlock()

	if d.metrics != nil && st == api.StatusOK {
		d.metrics.Add("drain.enqueued", 1)
		if evicted {
			d.metrics.Add("drain.evicted", 1)
		}
	}
	return st
}

// Callback adapts Enqueue to a plain line callback, the shape hlog and
// other producers expect.
func (d *Drainer[S]) Callback() func(line string) {
	return func(line string) { d.Enqueue(line) }
}

// Batch returns the current per-sweep line budget.
func (d *Drainer[S]) Batch() int { return int(d.batch.Load()) }

// Interval returns the current idle poll period.
func (d *Drainer[S]) Interval() time.Duration { return time.Duration(d.interval.Load()) }

// Depth returns the number of lines waiting in the ring (the spool's
// in-flight lines are already on their way to the sink).
func (d *Drainer[S]) Depth() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.q.Len()
}

// Start launches the worker. Safe to call once; subsequent calls are
// no-ops.
func (d *Drainer[S]) Start() {
	d.startOnce.Do(func() {
		d.started.Store(true)
		go d.run()
	})
}

// Stop signals the worker, waits for it to exit and performs a final
// sweep so nothing enqueued before Stop is lost. Without a prior Start
// it degrades to a Flush.
func (d *Drainer[S]) Stop() {
	if !d.started.Load() {
		d.Flush()
		return
	}
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	<-d.done
}

// Flush synchronously drains everything currently queued. Usable with or
// without a running worker; delivery happens on the caller's goroutine.
func (d *Drainer[S]) Flush() {
	for d.sweep(len(d.scratch)) > 0 {
	}
}

// run is the worker loop: sweep hot while lines keep arriving, sleep the
// configured interval when a sweep comes back empty. The cadence follows
// the pinned-consumer pattern of keeping the hand-off path free of
// channels and allocations. Stop is checked on every pass, so a steady
// producer cannot keep the worker from shutting down.
func (d *Drainer[S]) run() {
	runtime.LockOSThread()
	defer func() {
		runtime.UnlockOSThread()
		close(d.done)
	}()

	if d.pin {
		// Best effort: on a cgroup-limited or foreign platform the pin
		// may be refused, and the drainer still works unpinned.
		if err := affinity.SetAffinity(d.pinCPU); err != nil && d.metrics != nil {
			d.metrics.Add("drain.pin_errors", 1)
		}
	}

	for {
		select {
		case <-d.stop:
			d.Flush()
			return
		default:
		}
		moved := d.sweep(int(d.batch.Load()))
		if moved > 0 {
			continue // hot path: keep draining while the feed is busy
		}
		select {
		case <-d.stop:
			d.Flush()
			return
		case <-time.After(time.Duration(d.interval.Load())):
		}
	}
}

// sweep pulls up to limit lines under the lock, spools them, then
// delivers the spool outside the lock. Returns the number pulled.
func (d *Drainer[S]) sweep(limit int) int {
	d.sweepMu.Lock()
	defer d.sweepMu.Unlock()

	if limit < 1 {
		limit = 1
	}
	if limit > len(d.scratch) {
		limit = len(d.scratch)
	}

	d.mu.Lock()
	n, st := d.q.PullMany(d.scratch[:limit])
	d.mu.Unlock()

	if st != api.StatusOK || n == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		d.spool.Add(textq.LineString(d.scratch[i]))
	}
	for d.spool.Length() > 0 {
		d.sink(d.spool.Remove().(string))
	}

	if d.metrics != nil {
		d.metrics.Add("drain.delivered", int64(n))
		d.metrics.Set("drain.depth", int64(d.Depth()))
	}
	return n
}
