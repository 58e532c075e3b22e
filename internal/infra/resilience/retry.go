package resilience

import (
	"context"
	"log/slog"
	"time"

	"booknow/internal/errors"
)

// RetryPolicy configures Retry.
type RetryPolicy struct {
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Exponential bool

	// Retryable filters errors worth another attempt. Nil retries everything.
	Retryable func(error) bool
}

// Delay returns the wait before retry number attempt (0-based):
// min(BaseDelay*2^attempt, MaxDelay) when exponential, BaseDelay otherwise.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if !p.Exponential {
		return p.BaseDelay
	}

	return Backoff(p.BaseDelay, p.MaxDelay, attempt)
}

// Backoff returns min(base*2^attempt, maxDelay) without overflowing.
func Backoff(base, maxDelay time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	d := base
	for i := 0; i < attempt; i++ {
		if maxDelay > 0 && d >= maxDelay/2 {
			return maxDelay
		}
		d *= 2
	}

	if maxDelay > 0 && d > maxDelay {
		return maxDelay
	}

	return d
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-t.C:
		return nil
	}
}

// Retrier runs operations under a RetryPolicy.
type Retrier struct {
	policy RetryPolicy
	logger *slog.Logger
	sleep  Sleeper
}

// NewRetrier creates a Retrier. A nil sleeper uses SleepContext.
func NewRetrier(policy RetryPolicy, logger *slog.Logger, sleep Sleeper) *Retrier {
	if logger == nil {
		logger = slog.Default()
	}
	if sleep == nil {
		sleep = SleepContext
	}

	return &Retrier{policy: policy, logger: logger, sleep: sleep}
}

// Do invokes op up to MaxRetries+1 times. Intermediate failures are logged; the last
// failure is returned unchanged so callers can still match its type.
func (r *Retrier) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}

		if attempt >= r.policy.MaxRetries || (r.policy.Retryable != nil && !r.policy.Retryable(err)) {
			return err
		}

		delay := r.policy.Delay(attempt)
		r.logger.WarnContext(ctx, "Operation failed, retrying",
			slog.String("operation", name),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.Any("error", err),
			CategorizeError(err).Attr(),
		)

		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return err
		}
	}
}

// Retry is Retrier.Do for operations returning a value.
func Retry[T any](ctx context.Context, r *Retrier, name string, op func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := r.Do(ctx, name, func(ctx context.Context) error {
		var err error
		out, err = op(ctx)

		return err
	})

	return out, err
}

// NotCircuitOpen is a Retryable filter that gives up immediately on an open breaker.
func NotCircuitOpen(err error) bool {
	return !errors.Is(err, ErrCircuitOpen)
}
