package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Config{MaxAttempts: 4, BaseDelay: time.Millisecond}, func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesTransientUpToMaxAttempts(t *testing.T) {
	calls := 0
	last := errors.New("mailbox is INUSE")
	start := time.Now()
	err := Do(context.Background(), Config{MaxAttempts: 4, BaseDelay: time.Millisecond}, func() error {
		calls++
		return Transient(last)
	})
	elapsed := time.Since(start)

	assert.Equal(t, 4, calls, "operation must run exactly MaxAttempts times")
	assert.ErrorIs(t, err, last, "the final propagated error is the last one raised")
	// Backoff doubles from the base: 1ms + 2ms + 4ms = base * (2^(n-1) - 1).
	assert.GreaterOrEqual(t, elapsed, 7*time.Millisecond)
}

func TestDoFailsFastOnNonTransient(t *testing.T) {
	calls := 0
	fatal := errors.New("NO invalid credentials")
	err := Do(context.Background(), Config{MaxAttempts: 4, BaseDelay: time.Millisecond}, func() error {
		calls++
		return fatal
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, fatal, err)
}

func TestDoRecoversMidway(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Config{MaxAttempts: 4, BaseDelay: time.Millisecond}, func() error {
		calls++
		if calls < 3 {
			return Transient(errors.New("INDEXING in progress"))
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, Config{MaxAttempts: 4, BaseDelay: time.Hour}, func() error {
		calls++
		return Transient(errors.New("INUSE"))
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransientTag(t *testing.T) {
	assert.Nil(t, Transient(nil))

	inner := errors.New("boom")
	tagged := Transient(inner)
	assert.True(t, IsTransient(tagged))
	assert.ErrorIs(t, tagged, inner)
	assert.Equal(t, inner.Error(), tagged.Error())

	assert.False(t, IsTransient(inner))
	assert.False(t, IsTransient(nil))
}

func TestZeroMaxAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Config{}, func() error {
		calls++
		return Transient(errors.New("INUSE"))
	})

	assert.Equal(t, 1, calls)
	assert.Error(t, err)
}
