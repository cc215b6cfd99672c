package pollexec

import "sync/atomic"

// ExecState represents the executor's position in its drive loop.
//
// State machine:
//
//	StateIdle → StatePolling        [BlockOn entry, via CAS]
//	StatePolling → StateWaiting     [task returned pending]
//	StateWaiting → StatePolling     [wake observed]
//	StatePolling → StateDone        [task returned ready]
//	StateDone → StateIdle           [BlockOn return]
//
// StateWaiting is the only suspend point. StateDone is transient: the
// executor returns to StateIdle as BlockOn returns, and is reusable.
//
// Transition rules: the Idle→Polling entry uses CAS (it is the concurrency
// guard behind [ErrExecutorBusy]); all other transitions are made by the
// single driving goroutine.
type ExecState uint64

const (
	// StateIdle indicates no task is being driven.
	StateIdle ExecState = iota
	// StatePolling indicates the executor is advancing the task.
	StatePolling
	// StateWaiting indicates the executor is parked on its waiter.
	StateWaiting
	// StateDone indicates the task just completed; transient.
	StateDone
)

// String returns a human-readable representation of the state.
func (s ExecState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePolling:
		return "Polling"
	case StateWaiting:
		return "Waiting"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// execState is a lock-free state holder. Pure atomic operations, no
// transition validation.
type execState struct {
	v atomic.Uint64
}

// Load returns the current state atomically.
func (s *execState) Load() ExecState {
	return ExecState(s.v.Load())
}

// Store atomically stores a new state.
func (s *execState) Store(state ExecState) {
	s.v.Store(uint64(state))
}

// TryTransition attempts to atomically transition from one state to another,
// reporting whether it did.
func (s *execState) TryTransition(from, to ExecState) bool {
	return s.v.CompareAndSwap(uint64(from), uint64(to))
}
