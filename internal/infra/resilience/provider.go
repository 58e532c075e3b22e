package resilience

import (
	"log/slog"

	"booknow/config"

	"go.uber.org/fx"
)

// Params defines the dependencies of the resilience providers.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// ProvideErrorLog creates the process-wide log ring buffer.
func ProvideErrorLog(cfg *config.Config) *ErrorLog {
	return NewErrorLog(cfg.Resilience.MaxLogs)
}

// ProvideBreakerRegistry creates the breakers shared by outbound adapters.
func ProvideBreakerRegistry(params Params) *BreakerRegistry {
	b := params.Config.Resilience.Breaker

	return NewBreakerRegistry(b.Threshold, b.Timeout, params.Logger)
}

// ProvideRetrier creates the default retrier for outbound calls.
func ProvideRetrier(params Params) *Retrier {
	r := params.Config.Resilience.Retry

	return NewRetrier(RetryPolicy{
		MaxRetries:  r.MaxRetries,
		BaseDelay:   r.BaseDelay,
		MaxDelay:    r.MaxDelay,
		Exponential: r.Exponential,
		Retryable:   NotCircuitOpen,
	}, params.Logger, nil)
}
