package pollexec

// Waker is a cloneable capability to notify one logical waiter that progress
// may now be possible.
//
// Wake and WakeByRef have identical observable effect; both are safe to call
// from any goroutine, any number of times, including after the waiter has
// already proceeded (at worst a later wait observes an extra pending wake,
// which the waiter resets). The distinction exists so task code can express
// "this handle is spent" versus "I will wake through this handle again", as
// the advance protocol does; implementations need not act on it.
//
// There is no explicit drop: handles are ordinary garbage-collected values,
// and releasing one never notifies.
type Waker interface {
	// Wake notifies the waiter. At-least-once delivery: a wake sent before
	// the waiter starts waiting must not be lost, which implementations
	// satisfy by recording a durable flag before signalling.
	Wake()
	// WakeByRef is Wake without consuming the handle.
	WakeByRef()
	// Clone returns an independent handle referring to the same waiter.
	// Cloning never duplicates the waiter itself.
	Clone() Waker
}

// WakerFunc adapts a function to the [Waker] interface. Clone returns the
// receiver, so all clones invoke the same function.
type WakerFunc func()

// Wake implements [Waker].
func (f WakerFunc) Wake() { f() }

// WakeByRef implements [Waker].
func (f WakerFunc) WakeByRef() { f() }

// Clone implements [Waker].
func (f WakerFunc) Clone() Waker { return f }

// NopWaker returns a Waker that does nothing. It is intended for tests and
// for advancing tasks manually, outside any executor.
func NopWaker() Waker { return nopWaker{} }

type nopWaker struct{}

func (nopWaker) Wake() {}

func (nopWaker) WakeByRef() {}

func (nopWaker) Clone() Waker { return nopWaker{} }

// NewWaiterWaker binds a Waker to w. Every clone refers to the same waiter;
// waking through any of them sets the waiter's durable flag.
//
// This is the handle [BlockOn] passes to tasks, exposed so alternative
// executors can reuse the built-in waiter implementations.
func NewWaiterWaker(w Waiter) Waker {
	return waiterWaker{w: w}
}

type waiterWaker struct {
	w Waiter
}

func (x waiterWaker) Wake() { x.w.Wake() }

func (x waiterWaker) WakeByRef() { x.w.Wake() }

func (x waiterWaker) Clone() Waker { return x }
