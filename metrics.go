package pollexec

import (
	"sync/atomic"
	"time"
)

// MetricsSnapshot is a point-in-time copy of an executor's counters, safe
// for concurrent reads. All counters accumulate across BlockOn calls for
// the lifetime of the executor.
type MetricsSnapshot struct {
	// Advances counts advance attempts.
	Advances uint64
	// Parks counts times the executor blocked on its waiter.
	Parks uint64
	// Wakes counts wake deliveries through the executor's waker, including
	// redundant ones that collapsed into an already-pending wake.
	Wakes uint64
	// Completions counts tasks driven to a ready outcome.
	Completions uint64
	// WaitTotal is the cumulative time spent parked.
	WaitTotal time.Duration
}

// metrics backs MetricsSnapshot with atomics; nil when disabled, so the
// enabled check is a single pointer test on the hot path.
type metrics struct {
	advances    atomic.Uint64
	parks       atomic.Uint64
	wakes       atomic.Uint64
	completions atomic.Uint64
	waitNanos   atomic.Int64
}

func (m *metrics) snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Advances:    m.advances.Load(),
		Parks:       m.parks.Load(),
		Wakes:       m.wakes.Load(),
		Completions: m.completions.Load(),
		WaitTotal:   time.Duration(m.waitNanos.Load()),
	}
}

// countingWaker decorates a Waker with a wake counter. Clones share the
// counter, since clones refer to the same waiter.
type countingWaker struct {
	inner Waker
	wakes *atomic.Uint64
}

func (w countingWaker) Wake() {
	w.wakes.Add(1)
	w.inner.Wake()
}

func (w countingWaker) WakeByRef() {
	w.wakes.Add(1)
	w.inner.WakeByRef()
}

func (w countingWaker) Clone() Waker {
	return countingWaker{inner: w.inner.Clone(), wakes: w.wakes}
}
