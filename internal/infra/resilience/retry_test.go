package resilience

import (
	"context"
	"testing"
	"time"

	"booknow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationError struct{ field string }

func (e *validationError) Error() string { return "invalid " + e.field }

func recordSleeps(sleeps *[]time.Duration) Sleeper {
	return func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)

		return nil
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, MaxDelay: 5 * time.Second, Exponential: true}

	assert.Equal(t, time.Second, p.Delay(0))
	assert.Equal(t, 2*time.Second, p.Delay(1))
	assert.Equal(t, 4*time.Second, p.Delay(2))
	assert.Equal(t, 5*time.Second, p.Delay(3))
	assert.Equal(t, 5*time.Second, p.Delay(60))

	p.Exponential = false
	assert.Equal(t, time.Second, p.Delay(4))
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	var sleeps []time.Duration
	r := NewRetrier(RetryPolicy{MaxRetries: 3, BaseDelay: 10 * time.Millisecond, MaxDelay: time.Second, Exponential: true},
		newDiscardLogger(), recordSleeps(&sleeps))

	calls := 0
	err := r.Do(context.Background(), "op", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("flaky")
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, sleeps)
}

func TestRetrier_ReturnsFinalErrorWithOriginalType(t *testing.T) {
	var sleeps []time.Duration
	r := NewRetrier(RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond}, newDiscardLogger(), recordSleeps(&sleeps))

	calls := 0
	err := r.Do(context.Background(), "op", func(context.Context) error {
		calls++

		return &validationError{field: "email"}
	})

	var verr *validationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.field)
	assert.Equal(t, 3, calls)
	assert.Len(t, sleeps, 2)
}

func TestRetrier_StopsOnNonRetryable(t *testing.T) {
	r := NewRetrier(RetryPolicy{MaxRetries: 5, BaseDelay: time.Millisecond, Retryable: NotCircuitOpen}, newDiscardLogger(), recordSleeps(new([]time.Duration)))

	calls := 0
	err := r.Do(context.Background(), "op", func(context.Context) error {
		calls++

		return errors.Wrap(ErrCircuitOpen, "breaker email")
	})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 1, calls)
}

func TestRetry_ReturnsValue(t *testing.T) {
	r := NewRetrier(RetryPolicy{MaxRetries: 1}, newDiscardLogger(), recordSleeps(new([]time.Duration)))

	v, err := Retry(context.Background(), r, "op", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, SleepContext(ctx, time.Hour))
}
