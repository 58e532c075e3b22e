// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrReferralCodeTaken is returned when a generated referral code collides with an existing one.
	ErrReferralCodeTaken = errors.New("referral code already taken")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. Email must already be normalized.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByReferralCode retrieves the owner of a normalized referral code.
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// LockByID retrieves a user and holds a row lock until the surrounding transaction ends.
	// Outside a transaction it behaves like FindByID.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
