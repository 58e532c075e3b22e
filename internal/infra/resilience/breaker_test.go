package resilience

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booknow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errDownstream = errors.New("downstream failed")

func failing(calls *int) func(context.Context) error {
	return func(context.Context) error {
		*calls++

		return errDownstream
	}
}

func succeeding(calls *int) func(context.Context) error {
	return func(context.Context) error {
		*calls++

		return nil
	}
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	cb := NewCircuitBreaker("email", 3, time.Minute, newDiscardLogger(), WithClock(clock.Now))
	ctx := context.Background()

	calls := 0
	for i := 0; i < 3; i++ {
		err := cb.Execute(ctx, failing(&calls))
		assert.ErrorIs(t, err, errDownstream)
	}
	assert.Equal(t, StateOpen, cb.State())
	assert.Equal(t, 3, cb.Failures())

	err := cb.Execute(ctx, failing(&calls))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.NotErrorIs(t, err, errDownstream)
	assert.Equal(t, 3, calls, "open breaker must not invoke the operation")
}

func TestCircuitBreaker_HalfOpenSuccessCloses(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	cb := NewCircuitBreaker("email", 2, time.Minute, newDiscardLogger(), WithClock(clock.Now))
	ctx := context.Background()

	calls := 0
	_ = cb.Execute(ctx, failing(&calls))
	_ = cb.Execute(ctx, failing(&calls))
	require.Equal(t, StateOpen, cb.State())

	clock.Advance(59 * time.Second)
	assert.ErrorIs(t, cb.Execute(ctx, succeeding(&calls)), ErrCircuitOpen)
	assert.Equal(t, 2, calls)

	clock.Advance(time.Second)
	require.NoError(t, cb.Execute(ctx, succeeding(&calls)))
	assert.Equal(t, 3, calls)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 0, cb.Failures())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	cb := NewCircuitBreaker("email", 1, time.Minute, newDiscardLogger(), WithClock(clock.Now))
	ctx := context.Background()

	calls := 0
	_ = cb.Execute(ctx, failing(&calls))
	require.Equal(t, StateOpen, cb.State())

	clock.Advance(time.Minute)
	assert.ErrorIs(t, cb.Execute(ctx, failing(&calls)), errDownstream)
	assert.Equal(t, StateOpen, cb.State())

	assert.ErrorIs(t, cb.Execute(ctx, succeeding(&calls)), ErrCircuitOpen)
	assert.Equal(t, 2, calls)
}

func TestCircuitBreaker_PanicCountsAsFailure(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	cb := NewCircuitBreaker("email", 1, time.Minute, newDiscardLogger(), WithClock(clock.Now))
	ctx := context.Background()

	calls := 0
	require.ErrorIs(t, cb.Execute(ctx, failing(&calls)), errDownstream)
	clock.Advance(time.Minute)

	assert.PanicsWithValue(t, "nil map write", func() {
		_ = cb.Execute(ctx, func(context.Context) error { panic("nil map write") })
	})
	assert.Equal(t, StateOpen, cb.State())

	clock.Advance(time.Minute)
	require.NoError(t, cb.Execute(ctx, succeeding(&calls)))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 2, calls)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("email", 3, time.Minute, newDiscardLogger())
	ctx := context.Background()

	calls := 0
	_ = cb.Execute(ctx, failing(&calls))
	_ = cb.Execute(ctx, failing(&calls))
	require.NoError(t, cb.Execute(ctx, succeeding(&calls)))
	_ = cb.Execute(ctx, failing(&calls))

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.Failures())
}

func TestCall_ReturnsValue(t *testing.T) {
	cb := NewCircuitBreaker("db", 3, time.Minute, newDiscardLogger())

	v, err := Call(context.Background(), cb, func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestBreakerRegistry_ReusesBreakers(t *testing.T) {
	r := NewBreakerRegistry(2, time.Minute, newDiscardLogger())

	a := r.Get("notification")
	assert.Same(t, a, r.Get("notification"))
	assert.NotSame(t, a, r.Get("pubsub"))
	assert.Len(t, r.Snapshots(), 2)
}
