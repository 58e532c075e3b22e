package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"booknow/internal/domain/service"
	"booknow/internal/infra/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishTask(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.TaskEvent{RequestID: "req-1", TaskID: "task-1", TaskType: "recalculate_stats"}

	require.NoError(t, publisher.PublishTask(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "task-1", received.Message.MessageID)
	assert.Equal(t, "recalculate_stats", received.Message.Attributes["task_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.TaskEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishTask(context.Background(), &service.TaskEvent{TaskID: "task-1"})
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestBreakerPublisher_OpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := &breakerPublisher{
		next:    NewLocalHTTPPublisher(server.URL, discardLogger()),
		breaker: resilience.NewCircuitBreaker(breakerName, 2, time.Minute, discardLogger()),
	}
	event := &service.TaskEvent{TaskID: "task-1"}

	assert.Error(t, publisher.PublishTask(context.Background(), event))
	assert.Error(t, publisher.PublishTask(context.Background(), event))

	err := publisher.PublishTask(context.Background(), event)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())
}
