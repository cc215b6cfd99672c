package pollexec

import "sync"

// Completion is a single-writer-once, single-reader-poll mailbox shared
// between a task and the background work that completes it. It implements
// [Task], so it can be driven directly by [BlockOn] or embedded in a larger
// task (as [TimerTask] does).
//
// Post-completion policy: tolerant. Advance after completion is well-defined
// and idempotent, always returning the same ready outcome, never reverting
// to pending. Contrast [CountdownTask], which is strict.
type Completion[T any] struct {
	mu      sync.Mutex
	done    bool
	value   T
	pending Waker
}

// NewCompletion returns an empty mailbox.
func NewCompletion[T any]() *Completion[T] {
	return &Completion[T]{}
}

// Complete publishes value and fires the stored waker, if any. The done flag
// transitions at most once: the first call wins and returns true; later
// calls change nothing and return false.
//
// The stored waker is taken, not just read, guaranteeing at-most-once use
// per stored handle, and it is invoked strictly outside the mailbox lock so
// the wake path never nests this lock inside the waiter's own.
func (c *Completion[T]) Complete(value T) bool {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return false
	}
	c.done = true
	c.value = value
	w := c.pending
	c.pending = nil
	c.mu.Unlock()
	if w != nil {
		w.Wake()
	}
	return true
}

// Done reports whether a value has been published. Non-blocking probe; a
// false result may be stale by the time it is observed.
func (c *Completion[T]) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Advance implements [Task]. Before completion it stores a clone of the
// context's waker, overwriting any previously stored handle: wakers are
// scoped to a single advance attempt, and a stale one would wake the wrong
// waiter, or none.
func (c *Completion[T]) Advance(tc *TaskContext) (Outcome[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return Ready(c.value), nil
	}
	c.pending = tc.Waker().Clone()
	return Pending[T](), nil
}
