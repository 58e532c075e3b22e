// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"
	"strconv"

	"booknow/internal/delivery/api/response"
	"booknow/internal/delivery/api/validator"
	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck handles liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func validationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid request", verr.Fields)
	}

	return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
}

// currentUser returns the authenticated caller. ok is false when a response was already written.
func currentUser(c echo.Context) (userID uuid.UUID, ok bool, err error) {
	userID, ok = deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// pageFromQuery reads limit and offset. ok is false when a response was already written.
func pageFromQuery(c echo.Context) (page usecase.Page, ok bool, err error) {
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &page.Limit}, {"offset", &page.Offset}} {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			return page, false, response.BadRequest(c, "INVALID_PAGE", p.name+" must be a non-negative integer")
		}
		*p.dst = n
	}

	return page.Normalize(), true, nil
}

// pathUserID parses a UUID path parameter. ok is false when a response was already written.
func pathUserID(c echo.Context, name string) (id uuid.UUID, ok bool, err error) {
	id, parseErr := uuid.Parse(c.Param(name))
	if parseErr != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", name+" must be a UUID")
	}

	return id, true, nil
}
