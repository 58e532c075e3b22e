package resilience

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booknow/internal/errors"
)

// ErrCircuitOpen is returned without calling the operation while a breaker is open.
// It is distinct from any downstream failure.
var ErrCircuitOpen = errors.New("circuit breaker open: service unavailable")

// State of a circuit breaker.
type State string

const (
	StateClosed   State = "CLOSED"
	StateOpen     State = "OPEN"
	StateHalfOpen State = "HALF_OPEN"
)

// CircuitBreaker stops calling a failing dependency for a cooldown period.
// It opens after threshold failures, lets one probe through after timeout,
// and closes again on the first success.
type CircuitBreaker struct {
	name      string
	threshold int
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// BreakerOption customizes a CircuitBreaker.
type BreakerOption func(*CircuitBreaker)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) BreakerOption {
	return func(cb *CircuitBreaker) { cb.now = now }
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(name string, threshold int, timeout time.Duration, logger *slog.Logger, opts ...BreakerOption) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	cb := &CircuitBreaker{
		name:      name,
		threshold: threshold,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
		state:     StateClosed,
	}
	for _, opt := range opts {
		opt(cb)
	}

	return cb
}

// Execute runs fn unless the breaker is open. The error of fn is returned unchanged.
// A panic in fn counts as a failure and is re-raised.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err := cb.before(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			cb.after(ctx, errors.Errorf("panic: %v", r))
			panic(r)
		}
	}()

	err = fn(ctx)
	cb.after(ctx, err)

	return err
}

// Call is Execute for operations returning a value.
func Call[T any](ctx context.Context, cb *CircuitBreaker, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := cb.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)

		return err
	})

	return out, err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.timeout {
			return errors.Wrapf(ErrCircuitOpen, "breaker %s", cb.name)
		}
		cb.state = StateHalfOpen
		cb.probing = true

		return nil
	case StateHalfOpen:
		if cb.probing {
			return errors.Wrapf(ErrCircuitOpen, "breaker %s probing", cb.name)
		}
		cb.probing = true

		return nil
	default:
		return nil
	}
}

func (cb *CircuitBreaker) after(ctx context.Context, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false

	if err == nil {
		if cb.state != StateClosed {
			cb.logger.InfoContext(ctx, "Circuit breaker closed", slog.String("breaker", cb.name), CategoryExternalService.Attr())
		}
		cb.state = StateClosed
		cb.failures = 0

		return
	}

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.threshold {
		if cb.state != StateOpen {
			cb.logger.WarnContext(ctx, "Circuit breaker opened",
				slog.String("breaker", cb.name),
				slog.Int("failures", cb.failures),
				slog.Any("error", err),
				CategoryExternalService.Attr(),
			)
		}
		cb.state = StateOpen
		cb.openedAt = cb.now()
	}
}

// BreakerSnapshot is the observable state of a breaker.
type BreakerSnapshot struct {
	Name     string    `json:"name"`
	State    State     `json:"state"`
	Failures int       `json:"failures"`
	OpenedAt time.Time `json:"opened_at,omitzero"`
}

// Snapshot returns the current state. An open breaker past its timeout still reports OPEN
// until the next call moves it to HALF_OPEN.
func (cb *CircuitBreaker) Snapshot() BreakerSnapshot {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return BreakerSnapshot{
		Name:     cb.name,
		State:    cb.state,
		Failures: cb.failures,
		OpenedAt: cb.openedAt,
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	return cb.Snapshot().State
}

// Failures returns the current failure count.
func (cb *CircuitBreaker) Failures() int {
	return cb.Snapshot().Failures
}

// BreakerRegistry hands out one named breaker per dependency.
type BreakerRegistry struct {
	threshold int
	timeout   time.Duration
	logger    *slog.Logger
	opts      []BreakerOption

	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
}

// NewBreakerRegistry creates an empty registry; breakers share threshold and timeout.
func NewBreakerRegistry(threshold int, timeout time.Duration, logger *slog.Logger, opts ...BreakerOption) *BreakerRegistry {
	return &BreakerRegistry{
		threshold: threshold,
		timeout:   timeout,
		logger:    logger,
		opts:      opts,
		breakers:  make(map[string]*CircuitBreaker),
	}
}

// Get returns the breaker named name, creating it on first use.
func (r *BreakerRegistry) Get(name string) *CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	cb, ok := r.breakers[name]
	if !ok {
		cb = NewCircuitBreaker(name, r.threshold, r.timeout, r.logger, r.opts...)
		r.breakers[name] = cb
	}

	return cb
}

// Snapshots returns the state of every breaker created so far.
func (r *BreakerRegistry) Snapshots() []BreakerSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]BreakerSnapshot, 0, len(r.breakers))
	for _, cb := range r.breakers {
		out = append(out, cb.Snapshot())
	}

	return out
}
