package pollexec

// Task is a resumable unit of computation, advanced to completion by an
// executor.
//
// Advance either completes with a value (a ready [Outcome]) or reports that
// no progress is currently possible (a pending one). Returning a pending
// outcome is a promise: the task guarantees it has arranged, directly or via
// a collaborator, for Wake to be invoked on some clone of the waker carried
// by tc once a reattempt might make progress. Breaking that promise stalls
// the executor permanently; it is a liveness bug, not a detectable error.
//
// A task that stores the waker for later use must overwrite its stored
// handle on every Advance call that returns pending. The handle is scoped to
// a particular advance attempt, and a stale handle would wake the wrong
// waiter, or none.
type Task[T any] interface {
	Advance(tc *TaskContext) (Outcome[T], error)
}

// TaskFunc adapts a function to the [Task] interface.
type TaskFunc[T any] func(tc *TaskContext) (Outcome[T], error)

// Advance implements [Task] by calling the function.
func (f TaskFunc[T]) Advance(tc *TaskContext) (Outcome[T], error) { return f(tc) }

// Outcome is the result of a single advance attempt: either ready, carrying
// the completed value, or pending. The zero value is pending.
type Outcome[T any] struct {
	value T
	ready bool
}

// Ready returns a completed outcome carrying value.
func Ready[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, ready: true}
}

// Pending returns a not-ready outcome.
func Pending[T any]() Outcome[T] {
	return Outcome[T]{}
}

// IsReady reports whether the outcome carries a completed value.
func (o Outcome[T]) IsReady() bool { return o.ready }

// Value returns the completed value, or the zero value of T if the outcome
// is pending.
func (o Outcome[T]) Value() T { return o.value }

// TaskContext carries the waker for one advance attempt. It is constructed
// by the executor (or by test code, via [NewTaskContext]) and handed to
// [Task.Advance].
type TaskContext struct {
	waker Waker
}

// NewTaskContext returns a context carrying w. A nil w is replaced with
// [NopWaker], so manually advancing a task never requires wiring a waiter.
func NewTaskContext(w Waker) *TaskContext {
	if w == nil {
		w = NopWaker()
	}
	return &TaskContext{waker: w}
}

// Waker returns the waker bound to this advance attempt.
func (tc *TaskContext) Waker() Waker { return tc.waker }
