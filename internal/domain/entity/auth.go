package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the email/password login method of a user.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time
}
