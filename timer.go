package pollexec

import "time"

// TimerTask completes with a fixed value after a delay elapsed on a
// background goroutine. The delay clock starts at construction, not at the
// first advance: [StartTimer] spawns the worker immediately.
//
// Post-completion policy: tolerant, inherited from [Completion].
type TimerTask[T any] struct {
	completion *Completion[T]
}

// timerOptions holds the injected capabilities for StartTimer.
type timerOptions struct {
	spawn func(func())
	sleep func(time.Duration)
}

// TimerOption configures a TimerTask.
type TimerOption interface {
	applyTimer(*timerOptions) error
}

// timerOptionImpl implements TimerOption.
type timerOptionImpl struct {
	applyTimerFunc func(*timerOptions) error
}

func (o *timerOptionImpl) applyTimer(opts *timerOptions) error {
	return o.applyTimerFunc(opts)
}

// WithSpawn sets the primitive used to start the background worker.
// Defaults to running the worker on a new goroutine. Supplying a spawn
// function that defers or serializes execution is the supported way to make
// the worker deterministic in tests.
func WithSpawn(spawn func(func())) TimerOption {
	return &timerOptionImpl{func(opts *timerOptions) error {
		opts.spawn = spawn
		return nil
	}}
}

// WithSleep sets the function the worker uses to wait out the delay.
// Defaults to [time.Sleep].
func WithSleep(sleep func(time.Duration)) TimerOption {
	return &timerOptionImpl{func(opts *timerOptions) error {
		opts.sleep = sleep
		return nil
	}}
}

// resolveTimerOptions applies TimerOption instances to timerOptions.
func resolveTimerOptions(opts []TimerOption) (*timerOptions, error) {
	cfg := &timerOptions{
		spawn: func(fn func()) { go fn() },
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyTimer(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// StartTimer constructs a timer task and starts its background worker
// immediately. The worker sleeps for delay, publishes value through the
// shared mailbox, and fires the most recently stored waker (outside the
// mailbox lock) at most once. If the task was never advanced before the
// worker finished, there is no waker to fire and none is needed: nothing is
// waiting, and the first advance observes the completed value directly.
func StartTimer[T any](delay time.Duration, value T, opts ...TimerOption) (*TimerTask[T], error) {
	cfg, err := resolveTimerOptions(opts)
	if err != nil {
		return nil, err
	}
	t := &TimerTask[T]{completion: NewCompletion[T]()}
	completion := t.completion
	cfg.spawn(func() {
		cfg.sleep(delay)
		completion.Complete(value)
	})
	return t, nil
}

// Advance implements [Task] by delegating to the shared mailbox.
func (t *TimerTask[T]) Advance(tc *TaskContext) (Outcome[T], error) {
	return t.completion.Advance(tc)
}

// Done reports whether the worker has published the value.
func (t *TimerTask[T]) Done() bool {
	return t.completion.Done()
}
