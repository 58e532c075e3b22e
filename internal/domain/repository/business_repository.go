package repository

import (
	"context"
	"errors"
	"time"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDashboardNotFound is returned when a user has no business dashboard.
var ErrDashboardNotFound = errors.New("business dashboard not found")

// BusinessRepository manages business dashboards and their Pro subscription state.
type BusinessRepository interface {
	// CreateDashboard creates the free-plan dashboard of a new business user.
	CreateDashboard(ctx context.Context, userID uuid.UUID, now time.Time) error

	FindSubscription(ctx context.Context, userID uuid.UUID) (*entity.BusinessSubscription, error)

	// IsBusinessUser reports whether the user is a business account.
	IsBusinessUser(ctx context.Context, userID uuid.UUID) (bool, error)

	// GrantProSubscription extends Pro by months without ever moving the expiry backward.
	GrantProSubscription(ctx context.Context, userID uuid.UUID, months int, now time.Time) (*entity.BusinessSubscription, error)

	// GrantInitialBusinessBonus sets lifetime Pro once. It reports false when
	// initial_pro_months_given was already set and nothing changed.
	GrantInitialBusinessBonus(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error)

	// ProcessBusinessReferral grants the referrer one Pro month (counted in
	// referral_pro_months_earned) and the referred business lifetime Pro.
	ProcessBusinessReferral(ctx context.Context, referrerID, referredID uuid.UUID, now time.Time) error
}
