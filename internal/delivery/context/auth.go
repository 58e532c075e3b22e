package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID holds the authenticated user's ID.
	KeyUserID ContextKey = "user_id"

	// KeyRoles holds the authenticated user's roles.
	KeyRoles ContextKey = "roles"
)

// SetIdentity stores the authenticated user on the echo.Context.
func SetIdentity(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user's ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}
