package pollexec

import (
	"encoding/binary"
	"os"
	"sync/atomic"
)

// FDWaiter parks on a file descriptor: an eventfd on Linux, a pipe
// elsewhere. The kernel-side token is the durable wake flag, which makes
// this waiter usable where the wake must also be observable by poll-style
// machinery (see [FDWaiter.ReadFile]).
//
// The pending counter collapses redundant wakes into at most one in-flight
// token, so Await never observes stale tokens from wakes it already
// consumed.
type FDWaiter struct {
	r, w    *os.File
	pending atomic.Uint32
	closed  atomic.Bool
}

// NewFDWaiter returns a waiter in the not-woken state. The caller owns the
// waiter and must Close it when done.
func NewFDWaiter() (*FDWaiter, error) {
	r, w, err := newWakeFiles()
	if err != nil {
		return nil, err
	}
	return &FDWaiter{r: r, w: w}, nil
}

// Wake implements [Waiter]. The token write happens only on the 0->1
// transition of the pending counter; the token itself is written before any
// waiter could consume it, preserving the durable-flag ordering.
//
// Write errors are ignored: they occur only once the waiter is closed, when
// nothing can be waiting.
func (x *FDWaiter) Wake() {
	if x.closed.Load() {
		return
	}
	if !x.pending.CompareAndSwap(0, 1) {
		return
	}
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	_, _ = x.w.Write(buf[:])
}

// Await implements [Waiter]. Blocks reading the wake token, then re-arms.
// Returns immediately once the waiter is closed.
func (x *FDWaiter) Await() {
	var buf [8]byte
	_, _ = x.r.Read(buf[:])
	// Re-arm strictly before returning: a Wake that raced the read has
	// either been folded into the consumed token or will write a fresh one.
	x.pending.Store(0)
}

// ReadFile exposes the read end, so external poll loops can watch for wake
// readiness instead of calling Await.
func (x *FDWaiter) ReadFile() *os.File { return x.r }

// Close releases both ends. Subsequent Wake calls are no-ops and a blocked
// Await returns. Returns [ErrWaiterClosed] if already closed.
func (x *FDWaiter) Close() error {
	if !x.closed.CompareAndSwap(false, true) {
		return ErrWaiterClosed
	}
	err := x.r.Close()
	if x.w != x.r {
		if werr := x.w.Close(); err == nil {
			err = werr
		}
	}
	return err
}
