package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"booknow/config"
	"booknow/internal/domain/service"
	"booknow/internal/infra/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(endpoint string, timeout time.Duration) service.EmailSender {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Notification: &config.NotificationConfig{
		Endpoint: endpoint,
		APIKey:   "secret",
		Timeout:  timeout,
	}}

	return NewHTTPEmailSender(SenderParams{
		Config:   cfg,
		Logger:   logger,
		Breakers: resilience.NewBreakerRegistry(3, time.Minute, logger),
	})
}

func TestHTTPEmailSender_Send(t *testing.T) {
	var got map[string]any
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	amount := 50
	sender := newTestSender(server.URL, time.Second)
	err := sender.SendRewardEmail(context.Background(), &service.RewardEmail{
		UserEmail:   "ana@example.com",
		UserName:    "Ana",
		RewardType:  "credits",
		Amount:      &amount,
		Description: "Milestone 1 reached",
		Source:      "referral_milestone",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "ana@example.com", got["userEmail"])
	assert.Equal(t, "credits", got["rewardType"])
	assert.InDelta(t, 50, got["amount"], 0)
	assert.NotContains(t, got, "expiryDate")
	assert.NotContains(t, got, "profileLink")
}

func TestHTTPEmailSender_Disabled(t *testing.T) {
	sender := newTestSender("", time.Second)

	assert.False(t, sender.Enabled())
	assert.ErrorIs(t, sender.SendRewardEmail(context.Background(), &service.RewardEmail{}), service.ErrEmailDisabled)
}

func TestHTTPEmailSender_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	sender := newTestSender(server.URL, 50*time.Millisecond)

	start := time.Now()
	err := sender.SendRewardEmail(context.Background(), &service.RewardEmail{UserEmail: "a@b.c"})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHTTPEmailSender_SingleAttemptOnFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "mailbox unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sender := newTestSender(server.URL, time.Second)

	err := sender.SendRewardEmail(context.Background(), &service.RewardEmail{UserEmail: "a@b.c"})
	assert.ErrorContains(t, err, "status 503")
	assert.Equal(t, int32(1), calls.Load())
}
