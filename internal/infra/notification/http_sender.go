// Package notification delivers reward emails through the outbound HTTP email endpoint.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"booknow/config"
	"booknow/internal/domain/service"
	"booknow/internal/infra/resilience"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	breakerName    = "notification"
	maxErrorBody   = 512
	defaultTimeout = 5 * time.Second
)

type httpEmailSender struct {
	endpoint   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	logger     *slog.Logger
}

// SenderParams holds dependencies for the email sender, injected by Fx
type SenderParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Breakers *resilience.BreakerRegistry
}

// NewHTTPEmailSender creates the sender. Without an endpoint it reports Enabled() == false.
func NewHTTPEmailSender(params SenderParams) service.EmailSender {
	cfg := params.Config.Notification
	if cfg == nil {
		cfg = &config.NotificationConfig{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if cfg.Endpoint == "" {
		params.Logger.Info("Notification endpoint not configured, reward emails disabled")
	}

	return &httpEmailSender{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    params.Breakers.Get(breakerName),
		logger:     params.Logger,
	}
}

func (s *httpEmailSender) Enabled() bool {
	return s.endpoint != ""
}

// SendRewardEmail makes exactly one POST attempt bounded by the configured timeout.
func (s *httpEmailSender) SendRewardEmail(ctx context.Context, email *service.RewardEmail) error {
	if !s.Enabled() {
		return service.ErrEmailDisabled
	}

	body, err := json.Marshal(email)
	if err != nil {
		return errors.Wrap(err, "failed to marshal reward email")
	}

	return s.breaker.Execute(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		return s.post(ctx, body)
	})
}

func (s *httpEmailSender) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email endpoint request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("email endpoint returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	return nil
}
