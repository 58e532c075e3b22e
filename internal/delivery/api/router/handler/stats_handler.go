package handler

import (
	"net/http"

	"booknow/internal/delivery/api/response"
	"booknow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC       usecase.StatsUsecase
	AchievementUC usecase.AchievementUsecase
}

// StatsHandler serves the caller's stats and unlocked achievements.
type StatsHandler struct {
	statsUC       usecase.StatsUsecase
	achievementUC usecase.AchievementUsecase
}

func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC:       params.StatsUC,
		achievementUC: params.AchievementUC,
	}
}

// GetStats returns the caller's stats projection.
func (h *StatsHandler) GetStats(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}

	stats, err := h.statsUC.GetUserStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListAchievements returns the caller's achievements.
func (h *StatsHandler) ListAchievements(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}

	achievements, err := h.achievementUC.ListAchievements(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, achievements, len(achievements), 0)
}
