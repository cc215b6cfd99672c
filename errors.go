package pollexec

import (
	"errors"
	"fmt"
)

var (
	// ErrAdvanceAfterCompletion is returned by strict tasks when advanced
	// past their terminal state. Tasks must never silently recompute or
	// return stale data in that situation; tolerant task kinds instead
	// return the same ready outcome forever (see package docs).
	ErrAdvanceAfterCompletion = errors.New("pollexec: advance after completion")

	// ErrExecutorBusy is returned by BlockOn when the executor is already
	// driving a task on another goroutine.
	ErrExecutorBusy = errors.New("pollexec: executor is already driving a task")

	// ErrWaiterClosed is returned by closeable waiters after Close.
	ErrWaiterClosed = errors.New("pollexec: waiter closed")
)

// PanicError wraps a panic value recovered while advancing a task.
//
// BlockOn never retries after a panic: the executor surfaces the failure to
// its caller rather than proceeding with potentially inconsistent task state.
type PanicError struct {
	// Value is the recovered panic value.
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("pollexec: task panicked: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value is an error type,
// enabling [errors.Is] and [errors.As] matching through the cause chain.
// Returns nil when the panic value is not an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
