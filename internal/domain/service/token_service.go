package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token carries role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken returns a signed token and its expiry.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, time.Time, error)

	ValidateToken(tokenString string) (*Claims, error)
}
