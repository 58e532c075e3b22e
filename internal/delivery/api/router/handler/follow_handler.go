package handler

import (
	"net/http"

	"booknow/internal/delivery/api/response"
	"booknow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FollowHandlerParams holds dependencies for FollowHandler, injected by Fx.
type FollowHandlerParams struct {
	fx.In

	FollowUC usecase.FollowUsecase
}

// FollowHandler serves the follow graph and business search.
type FollowHandler struct {
	uc usecase.FollowUsecase
}

func NewFollowHandler(params FollowHandlerParams) *FollowHandler {
	return &FollowHandler{uc: params.FollowUC}
}

// FollowStatusResponse reports one edge of the follow graph.
type FollowStatusResponse struct {
	Following bool `json:"following"`
	// Changed is false when the request left the graph as it was.
	Changed bool `json:"changed"`
}

// Follow handles following the user in the :id path parameter.
func (h *FollowHandler) Follow(c echo.Context) error {
	followerID, ok, err := currentUser(c)
	if !ok {
		return err
	}
	targetID, ok, err := pathUserID(c, "id")
	if !ok {
		return err
	}

	created, err := h.uc.Follow(c.Request().Context(), followerID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, &FollowStatusResponse{Following: true, Changed: created})
}

// Unfollow handles removing the edge to :id.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	followerID, ok, err := currentUser(c)
	if !ok {
		return err
	}
	targetID, ok, err := pathUserID(c, "id")
	if !ok {
		return err
	}

	removed, err := h.uc.Unfollow(c.Request().Context(), followerID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &FollowStatusResponse{Following: false, Changed: removed})
}

// IsFollowing reports whether the caller follows :id.
func (h *FollowHandler) IsFollowing(c echo.Context) error {
	followerID, ok, err := currentUser(c)
	if !ok {
		return err
	}
	targetID, ok, err := pathUserID(c, "id")
	if !ok {
		return err
	}

	following, err := h.uc.IsFollowing(c.Request().Context(), followerID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &FollowStatusResponse{Following: following})
}

// ListFollowers returns the followers of :id.
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	userID, ok, err := pathUserID(c, "id")
	if !ok {
		return err
	}
	page, ok, err := pageFromQuery(c)
	if !ok {
		return err
	}

	profiles, err := h.uc.ListFollowers(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, profiles, page.Limit, page.Offset)
}

// ListFollowing returns who :id follows.
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	userID, ok, err := pathUserID(c, "id")
	if !ok {
		return err
	}
	page, ok, err := pageFromQuery(c)
	if !ok {
		return err
	}

	profiles, err := h.uc.ListFollowing(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, profiles, page.Limit, page.Offset)
}

// SearchBusinesses matches the q query parameter against business names.
func (h *FollowHandler) SearchBusinesses(c echo.Context) error {
	page, ok, err := pageFromQuery(c)
	if !ok {
		return err
	}

	listings, err := h.uc.SearchBusinesses(c.Request().Context(), c.QueryParam("q"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, listings, page.Limit, page.Offset)
}
