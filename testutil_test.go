package pollexec

import (
	"sync/atomic"
	"testing"
	"time"
)

// recordWaker counts wake deliveries. Clone returns the receiver, so every
// clone shares the counter, mirroring the shared-waiter-state property of
// real wakers.
type recordWaker struct {
	n *atomic.Int64
}

func newRecordWaker() recordWaker {
	return recordWaker{n: new(atomic.Int64)}
}

func (w recordWaker) Wake() { w.n.Add(1) }

func (w recordWaker) WakeByRef() { w.n.Add(1) }

func (w recordWaker) Clone() Waker { return w }

func (w recordWaker) count() int64 { return w.n.Load() }

// waitFor polls cond until it holds or the deadline lapses.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(time.Millisecond)
	}
}

// mustComplete asserts that fn returns within timeout, guarding liveness
// properties without hanging the test binary.
func mustComplete(t *testing.T, timeout time.Duration, fn func(), msg string) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal(msg)
	}
}
