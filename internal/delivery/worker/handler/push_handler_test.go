package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	mockRepo "booknow/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type recordingExecutor struct {
	err  error
	runs []uuid.UUID
}

func (e *recordingExecutor) Execute(_ context.Context, task *entity.Task) error {
	e.runs = append(e.runs, task.ID)

	return e.err
}

func newPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockTaskRepository, *recordingExecutor) {
	tasks := mockRepo.NewMockTaskRepository(t)
	executor := &recordingExecutor{}

	return &PushHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tasks:    tasks,
		executor: executor,
	}, tasks, executor
}

func pushBody(t *testing.T, event *service.TaskEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-9"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	taskID := uuid.New()
	event := &service.TaskEvent{TaskID: taskID.String(), TaskType: string(entity.TaskRecalculateStats)}

	tests := []struct {
		name       string
		setup      func(tasks *mockRepo.MockTaskRepository, exec *recordingExecutor)
		wantStatus int
		wantRuns   int
	}{
		{
			name: "processing task runs",
			setup: func(tasks *mockRepo.MockTaskRepository, _ *recordingExecutor) {
				tasks.EXPECT().FindByID(mock.Anything, taskID).
					Return(&entity.Task{ID: taskID, Status: entity.TaskStatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantRuns:   1,
		},
		{
			name: "handler failure is acknowledged",
			setup: func(tasks *mockRepo.MockTaskRepository, exec *recordingExecutor) {
				exec.err = errors.New("deadlock detected")
				tasks.EXPECT().FindByID(mock.Anything, taskID).
					Return(&entity.Task{ID: taskID, Status: entity.TaskStatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantRuns:   1,
		},
		{
			name: "redelivered finished task is skipped",
			setup: func(tasks *mockRepo.MockTaskRepository, _ *recordingExecutor) {
				tasks.EXPECT().FindByID(mock.Anything, taskID).
					Return(&entity.Task{ID: taskID, Status: entity.TaskStatusDone}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing task is dropped",
			setup: func(tasks *mockRepo.MockTaskRepository, _ *recordingExecutor) {
				tasks.EXPECT().FindByID(mock.Anything, taskID).Return(nil, repository.ErrTaskNotFound).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "load failure asks for redelivery",
			setup: func(tasks *mockRepo.MockTaskRepository, _ *recordingExecutor) {
				tasks.EXPECT().FindByID(mock.Anything, taskID).Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, tasks, exec := newPushHandler(t)
			tt.setup(tasks, exec)

			rec := push(h, pushBody(t, event), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, exec.runs, tt.wantRuns)
		})
	}
}

func TestPushHandler_HandlePush_BadMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"***"}}`},
		{name: "bad task id", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"task_id":"x"}`)) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, exec := newPushHandler(t)

			rec := push(h, tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, exec.runs)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	h, _, exec := newPushHandler(t)
	h.verifyPushAuth = true
	h.audience = "https://worker.booknow.app/push"

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "google-signed" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := push(h, "{}", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = push(h, "{}", "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://worker.booknow.app/push", gotAudience)

	rec = push(h, "{}", "Bearer google-signed")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "issuer must be Google")

	assert.Empty(t, exec.runs)
}
