// Package pollexec implements a minimal cooperative task-execution protocol:
// a single-task blocking executor that repeatedly advances a suspendable
// computation until it produces a value, using a wake signal to know when
// re-advancing might succeed instead of busy-polling.
//
// # Architecture
//
// The package is built from four small pieces:
//
//   - [Waker]: an opaque, cloneable, goroutine-safe notification capability.
//     A task that reports "not ready" arranges for some clone of the waker it
//     was handed to be invoked once progress is possible.
//   - [Task]: a resumable computation exposing a single operation, Advance,
//     which returns either a ready [Outcome] or a pending one.
//   - [Completion]: a cross-goroutine mailbox pairing a write-once result
//     with the most recently registered waker. Background work publishes its
//     result through [Completion.Complete], which fires the stored waker.
//   - [Executor]: drives one task to completion on the calling goroutine via
//     [BlockOn], parking on a [Waiter] between advances.
//
// # Wake Protocol
//
// The executor's waiter records a wake as a durable flag set strictly before
// signalling, never as a bare signal. A wake that arrives before the executor
// starts waiting is therefore observed as "already woken" rather than lost.
// This closes the race between a task deciding it is not ready and a
// background worker finishing before the executor parks.
//
// # Thread Safety
//
//   - [Waker.Wake] and [Waker.WakeByRef] are safe from any goroutine, any
//     number of times, including after the waiter has already proceeded.
//   - [Completion.Complete] is safe from any goroutine; the first call wins.
//   - A single [Executor] drives one task at a time; concurrent [BlockOn]
//     calls on the same instance fail with [ErrExecutorBusy]. Independent
//     executors share no state.
//
// # Advancing Past Completion
//
// Task kinds deliberately differ in their post-completion policy:
// [Completion] (and therefore [TimerTask]) is tolerant, returning the same
// ready outcome on every advance after the first; [CountdownTask] is strict,
// failing with [ErrAdvanceAfterCompletion]. Pick the task kind whose policy
// matches the caller's contract.
//
// # Usage
//
//	ex, err := pollexec.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	task, err := pollexec.StartTimer(100*time.Millisecond, "done")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v, err := pollexec.BlockOn(ex, task)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(v) // "done", after ~100ms
//
// # Error Types
//
//   - [ErrAdvanceAfterCompletion]: a strict task was advanced past its
//     terminal state.
//   - [ErrExecutorBusy]: the executor is already driving a task.
//   - [ErrWaiterClosed]: a closeable waiter was used after Close.
//   - [PanicError]: wraps a panic recovered while advancing a task.
//
// All error types work with [errors.Is] and, where they wrap a cause,
// [errors.Unwrap].
package pollexec
