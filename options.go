// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package pollexec

import "github.com/joeycumines/logiface"

// executorOptions holds configuration options for Executor creation.
type executorOptions struct {
	waiter         Waiter
	logger         *logiface.Logger[logiface.Event]
	metricsEnabled bool
}

// --- Executor Options ---

// Option configures an Executor instance.
type Option interface {
	applyExecutor(*executorOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyExecutorFunc func(*executorOptions) error
}

func (o *optionImpl) applyExecutor(opts *executorOptions) error {
	return o.applyExecutorFunc(opts)
}

// WithWaiter sets the blocking primitive the executor parks on between
// advance attempts. Defaults to a fresh [CondWaiter]. The waiter must not be
// shared with another executor.
func WithWaiter(w Waiter) Option {
	return &optionImpl{func(opts *executorOptions) error {
		opts.waiter = w
		return nil
	}}
}

// WithLogger attaches a structured logger to the executor. A nil logger
// disables logging (the default). The executor logs park, resume, and
// completion events at debug level, and recovered task panics at error
// level.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *executorOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithMetrics enables runtime metrics collection on the Executor. When
// enabled, counters can be read via Executor.Metrics(). Disabled by default;
// when disabled the hot path takes no metrics overhead.
func WithMetrics(enabled bool) Option {
	return &optionImpl{func(opts *executorOptions) error {
		opts.metricsEnabled = enabled
		return nil
	}}
}

// resolveOptions applies Option instances to executorOptions.
func resolveOptions(opts []Option) (*executorOptions, error) {
	cfg := &executorOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyExecutor(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
