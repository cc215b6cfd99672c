// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package pollexec

import (
	"time"

	"github.com/joeycumines/logiface"
)

// Executor drives a single task to completion on the calling goroutine,
// parking on its [Waiter] between advance attempts. See [BlockOn].
//
// An Executor is reusable (one task after another) but drives at most one
// task at a time. Independent executors share no state.
type Executor struct {
	waiter  Waiter
	waker   Waker
	logger  *logiface.Logger[logiface.Event]
	metrics *metrics
	state   execState
}

// New constructs an executor with the provided options.
func New(opts ...Option) (*Executor, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	waiter := cfg.waiter
	if waiter == nil {
		waiter = NewCondWaiter()
	}
	e := &Executor{
		waiter: waiter,
		logger: cfg.logger,
	}
	e.waker = NewWaiterWaker(waiter)
	if cfg.metricsEnabled {
		e.metrics = &metrics{}
		e.waker = countingWaker{inner: e.waker, wakes: &e.metrics.wakes}
	}
	return e, nil
}

// State returns the executor's current position in its drive loop. Safe
// from any goroutine; the value may be stale by the time it is observed.
func (e *Executor) State() ExecState {
	return e.state.Load()
}

// Metrics returns a snapshot of the executor's counters. The zero snapshot
// is returned when metrics are disabled (see [WithMetrics]).
func (e *Executor) Metrics() MetricsSnapshot {
	if e.metrics == nil {
		return MetricsSnapshot{}
	}
	return e.metrics.snapshot()
}

// BlockOn drives task to completion on the calling goroutine, returning the
// completed value. It never fails except by propagating the task's own
// failure (including a recovered panic, surfaced as [*PanicError]).
//
// Each advance attempt receives a fresh clone of the executor's waker; on a
// pending outcome the executor parks on its waiter until woken, then
// advances again. There is no timeout and no cancellation: once started,
// BlockOn runs until the task completes. A task that returns pending
// without arranging a wake stalls the executor forever.
//
// Concurrent BlockOn calls on the same executor fail with
// [ErrExecutorBusy].
func BlockOn[T any](e *Executor, task Task[T]) (T, error) {
	var zero T
	if !e.state.TryTransition(StateIdle, StatePolling) {
		return zero, ErrExecutorBusy
	}
	defer e.state.Store(StateIdle)

	var attempts uint64
	for {
		attempts++
		if e.metrics != nil {
			e.metrics.advances.Add(1)
		}
		outcome, err := advanceTask(e, task)
		if err != nil {
			return zero, err
		}
		if outcome.IsReady() {
			e.state.Store(StateDone)
			if e.metrics != nil {
				e.metrics.completions.Add(1)
			}
			e.logger.Debug().Uint64("advances", attempts).Log("task completed")
			return outcome.Value(), nil
		}

		// The only blocking point. The waiter's durable flag closes the
		// lost-wakeup race with completions that land before Await starts.
		e.state.Store(StateWaiting)
		e.logger.Debug().Uint64("attempt", attempts).Log("executor parked")
		if e.metrics != nil {
			e.metrics.parks.Add(1)
			start := time.Now()
			e.waiter.Await()
			e.metrics.waitNanos.Add(time.Since(start).Nanoseconds())
		} else {
			e.waiter.Await()
		}
		e.state.Store(StatePolling)
		e.logger.Debug().Uint64("attempt", attempts).Log("executor resumed")
	}
}

// advanceTask runs one advance attempt, converting a panic into a
// *PanicError rather than letting it unwind through the drive loop with the
// executor in an inconsistent state.
func advanceTask[T any](e *Executor, task Task[T]) (outcome Outcome[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Err().Any("panic", r).Log("task panicked during advance")
			err = &PanicError{Value: r}
		}
	}()
	return task.Advance(NewTaskContext(e.waker.Clone()))
}
