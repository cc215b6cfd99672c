// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package pollexec

import "sync"

// Waiter is the blocking primitive an executor parks on between advance
// attempts. It is the injectable seam behind [NewWaiterWaker]: any executor
// can supply its own primitive without tasks knowing about it.
//
// Implementations MUST record a wake as durable state set strictly before
// any signalling, so that a Wake delivered before Await starts is observed
// as "already woken" rather than lost.
type Waiter interface {
	// Wake records a pending wake and releases a concurrent or future Await.
	// Idempotent-safe: redundant wakes collapse into one pending wake.
	Wake()
	// Await blocks until a wake is pending, then consumes it. Consuming
	// resets the waiter for the next cycle; wakes delivered while nothing
	// was waiting are not lost.
	Await()
}

// CondWaiter pairs a durable wake flag with a condition variable. It is the
// default waiter for executors created by [New].
type CondWaiter struct {
	mu    sync.Mutex
	cond  *sync.Cond
	woken bool
}

// NewCondWaiter returns a waiter in the not-woken state.
func NewCondWaiter() *CondWaiter {
	w := &CondWaiter{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// Wake implements [Waiter]. The flag is set under the lock before the
// signal, so a waiter that has not yet started waiting still observes it.
func (w *CondWaiter) Wake() {
	w.mu.Lock()
	w.woken = true
	w.mu.Unlock()
	w.cond.Signal()
}

// Await implements [Waiter]. Returns immediately if a wake is already
// pending; the flag is reset on return, arming the next cycle.
func (w *CondWaiter) Await() {
	w.mu.Lock()
	for !w.woken {
		w.cond.Wait()
	}
	w.woken = false
	w.mu.Unlock()
}

// ChanWaiter is a channel-backed waiter: a capacity-one buffered channel
// serves as the durable flag. Functionally equivalent to [CondWaiter]; the
// channel form composes with select-based code.
type ChanWaiter struct {
	ch chan struct{}
}

// NewChanWaiter returns a waiter in the not-woken state.
func NewChanWaiter() *ChanWaiter {
	return &ChanWaiter{ch: make(chan struct{}, 1)}
}

// Wake implements [Waiter]. The non-blocking send collapses redundant wakes
// into the single buffered token.
func (w *ChanWaiter) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Await implements [Waiter].
func (w *ChanWaiter) Await() {
	<-w.ch
}

// Woken returns a channel that receives when a wake is pending. Receiving
// from it is equivalent to Await; it exists so callers can select over the
// waiter alongside other channels.
func (w *ChanWaiter) Woken() <-chan struct{} {
	return w.ch
}
