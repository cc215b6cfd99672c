package pollexec

// CountdownTask yields a fixed number of times before completing with its
// value. Each pending advance wakes its own waker first, so a blocking
// executor makes progress without any background goroutine; it is the
// minimal "always eventually ready" task and doubles as a protocol probe in
// tests.
//
// Post-completion policy: strict. Advancing past the terminal state fails
// with [ErrAdvanceAfterCompletion]; a completed countdown never silently
// recomputes or replays its value. Contrast [Completion], which is tolerant.
//
// Not safe for concurrent advancement; a task is only ever advanced by one
// executor at a time.
type CountdownTask[T any] struct {
	value     T
	remaining int
	done      bool
}

// NewCountdown returns a task that reports pending `yields` times and then
// completes with value. A non-positive yields completes on the first
// advance.
func NewCountdown[T any](yields int, value T) *CountdownTask[T] {
	return &CountdownTask[T]{value: value, remaining: yields}
}

// Advance implements [Task].
func (t *CountdownTask[T]) Advance(tc *TaskContext) (Outcome[T], error) {
	if t.done {
		return Outcome[T]{}, ErrAdvanceAfterCompletion
	}
	if t.remaining > 0 {
		t.remaining--
		// Progress is immediately possible: uphold the pending promise by
		// waking before returning, through the handle of this very attempt.
		tc.Waker().WakeByRef()
		return Pending[T](), nil
	}
	t.done = true
	return Ready(t.value), nil
}

// Remaining returns how many pending advances are left before completion.
func (t *CountdownTask[T]) Remaining() int { return t.remaining }
