// Package retry provides bounded exponential backoff for remote calls.
//
// Only errors tagged transient are retried; everything else propagates on
// first occurrence. Tagging happens at the transport boundary so this package
// never inspects error text itself.
package retry

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// Config bounds a retried operation.
type Config struct {
	// MaxAttempts is the total number of invocations, including the first.
	MaxAttempts int
	// BaseDelay is the sleep before the second attempt; it doubles after
	// each subsequent failure. No jitter: a single sequential client has no
	// herd to spread out.
	BaseDelay time.Duration
}

// DefaultConfig mirrors the tool's defaults: four attempts, two second base.
func DefaultConfig() Config {
	return Config{MaxAttempts: 4, BaseDelay: 2 * time.Second}
}

type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient tags err as retryable contention. Returns nil for a nil err.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err carries the transient tag anywhere in its
// chain.
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// Do runs fn up to cfg.MaxAttempts times, sleeping between attempts with a
// doubling delay. Non-transient failures and the final transient failure
// propagate as-is.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := cfg.BaseDelay

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		last = fn()
		if last == nil {
			return nil
		}
		if !IsTransient(last) || attempt == attempts {
			return last
		}
		select {
		case <-ctx.Done():
			return pkgerrors.Wrap(ctx.Err(), "retry interrupted")
		case <-time.After(delay):
		}
		delay *= 2
	}
	return last
}
