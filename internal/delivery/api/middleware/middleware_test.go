package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/service"
	mockService "booknow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{entity.RoleBusiness},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(tokens)
			c, rec := newContext(tt.header)

			var seen uuid.UUID
			next := func(c echo.Context) error {
				seen, _ = deliverycontext.GetUserID(c)

				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, m.Authenticate(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
				assert.Equal(t, uuid.Nil, seen)

				return
			}
			assert.Equal(t, userID, seen)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c, rec := newContext("")
	deliverycontext.SetIdentity(c, uuid.New(), []string{entity.RoleCustomer})
	require.NoError(t, m.RequireRole(entity.RoleBusiness)(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newContext("")
	deliverycontext.SetIdentity(c, uuid.New(), []string{entity.RoleBusiness})
	require.NoError(t, m.RequireRole(entity.RoleBusiness)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "domain error",
			err:        errors.WithStack(domainerrors.ErrUserAlreadyExists),
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:       "domain error with details",
			err:        domainerrors.ErrValidationFailed.WithDetails("password too short"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
