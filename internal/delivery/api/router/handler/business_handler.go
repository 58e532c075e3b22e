package handler

import (
	"net/http"

	"booknow/internal/delivery/api/response"
	"booknow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
}

// BusinessHandler serves the Pro subscription of business accounts.
type BusinessHandler struct {
	uc usecase.BusinessUsecase
}

func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{uc: params.BusinessUC}
}

// GetSubscription returns the caller's subscription with is_pro_active and days_remaining.
func (h *BusinessHandler) GetSubscription(c echo.Context) error {
	userID, ok, err := currentUser(c)
	if !ok {
		return err
	}

	view, err := h.uc.GetSubscription(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}
