package handler

import (
	"log/slog"
	"net/http"

	"booknow/internal/delivery/api/response"
	"booknow/internal/domain/entity"
	"booknow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// ReferralHandler serves the referrer dashboard, share QR and reward ledger.
type ReferralHandler struct {
	uc     usecase.ReferralUsecase
	logger *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{
		uc:     params.ReferralUC,
		logger: params.Logger,
	}
}

// DashboardResponse is the referrer's progress towards the next milestone.
type DashboardResponse struct {
	ReferralCode   string             `json:"referral_code"`
	ShareLink      string             `json:"share_link"`
	CompletedCount int                `json:"completed_count"`
	Progress       int                `json:"progress"`
	Target         int                `json:"target"`
	NextMilestone  int                `json:"next_milestone"`
	Referrals      []*entity.Referral `json:"referrals"`
}

// GetDashboard returns the caller's referral code and progress.
func (h *ReferralHandler) GetDashboard(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}

	dashboard, err := h.uc.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	referrals := dashboard.Referrals
	if referrals == nil {
		referrals = []*entity.Referral{}
	}

	return response.Success(c, http.StatusOK, &DashboardResponse{
		ReferralCode:   dashboard.ReferralCode,
		ShareLink:      dashboard.ShareLink,
		CompletedCount: dashboard.CompletedCount,
		Progress:       dashboard.Progress,
		Target:         dashboard.Target,
		NextMilestone:  dashboard.NextMilestone,
		Referrals:      referrals,
	})
}

// GetQRCode returns the share link as a PNG.
func (h *ReferralHandler) GetQRCode(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}

	png, err := h.uc.GetReferralQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// ListActivities returns the caller's reward ledger, newest first.
func (h *ReferralHandler) ListActivities(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}
	page, ok, err := pageFromQuery(c)
	if !ok {
		return err
	}

	activities, err := h.uc.ListActivities(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, activities, page.Limit, page.Offset)
}
