package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"booknow/internal/delivery/api/response"
	"booknow/internal/infra/cache"
	"booknow/internal/infra/resilience"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultDiagnosticsLimit = 50

// DiagnosticsHandlerParams holds dependencies for DiagnosticsHandler, injected by Fx.
type DiagnosticsHandlerParams struct {
	fx.In

	ErrorLog *resilience.ErrorLog
	Breakers *resilience.BreakerRegistry
	Caches   *cache.Registry
}

// DiagnosticsHandler exposes the retained log, breaker states and cache counters.
type DiagnosticsHandler struct {
	errorLog *resilience.ErrorLog
	breakers *resilience.BreakerRegistry
	caches   *cache.Registry
}

func NewDiagnosticsHandler(params DiagnosticsHandlerParams) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		errorLog: params.ErrorLog,
		breakers: params.Breakers,
		caches:   params.Caches,
	}
}

// DiagnosticsResponse is a point-in-time view of the process health.
type DiagnosticsResponse struct {
	Logs             []resilience.Entry           `json:"logs"`
	CountsByCategory map[resilience.Category]int  `json:"counts_by_category"`
	Breakers         []resilience.BreakerSnapshot `json:"breakers"`
	Caches           []cache.Stats                `json:"caches"`
}

// GetDiagnostics accepts category, level and limit query parameters to filter the log.
func (h *DiagnosticsHandler) GetDiagnostics(c echo.Context) error {
	limit := defaultDiagnosticsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = n
	}

	minLevel := slog.LevelDebug
	if raw := c.QueryParam("level"); raw != "" {
		if err := minLevel.UnmarshalText([]byte(strings.ToUpper(raw))); err != nil {
			return response.BadRequest(c, "INVALID_LEVEL", "level must be one of debug, info, warn, error")
		}
	}

	logs := h.errorLog.Recent(limit, resilience.Category(c.QueryParam("category")), minLevel)
	if logs == nil {
		logs = []resilience.Entry{}
	}

	return response.Success(c, http.StatusOK, &DiagnosticsResponse{
		Logs:             logs,
		CountsByCategory: h.errorLog.CountByCategory(),
		Breakers:         h.breakers.Snapshots(),
		Caches:           h.caches.Stats(),
	})
}
