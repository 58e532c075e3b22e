package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"booknow/config"
	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/constants"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TaskExecutor runs one claimed outbox task and records its outcome.
type TaskExecutor interface {
	Execute(ctx context.Context, task *entity.Task) error
}

// TokenValidator validates Google-signed OIDC tokens.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs outbox tasks relayed through Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	tasks          repository.TaskRepository
	executor       TaskExecutor
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Tasks    repository.TaskRepository
	Executor TaskExecutor
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		tasks:          params.Tasks,
		executor:       params.Executor,
	}
}

// HandlePush answers 503 only when the task could not be loaded, so Pub/Sub redelivers.
// Task failures are acknowledged; the outbox owns their retries.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.TaskEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse task event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	taskID, err := uuid.Parse(event.TaskID)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Invalid task id", slog.String("task_id", event.TaskID))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("task_id", event.TaskID),
		slog.String("task_type", event.TaskType),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.runTask(ctx, reqLogger, taskID); err != nil {
		reqLogger.ErrorContext(ctx, "[Worker] Task not run",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) runTask(ctx context.Context, logger *slog.Logger, taskID uuid.UUID) error {
	task, err := h.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	// Redelivered messages find the task already finished or rescheduled.
	if task.Status != entity.TaskStatusProcessing {
		logger.InfoContext(ctx, "[Worker] Skipping task", slog.String("status", string(task.Status)))

		return nil
	}

	if err := h.executor.Execute(ctx, task); err != nil {
		logger.WarnContext(ctx, "[Worker] Task failed", slog.Any("error", err))

		return nil
	}

	logger.InfoContext(ctx, "[Worker] Task done")

	return nil
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.TaskEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
