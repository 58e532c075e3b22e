package usecase

import (
	"context"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionView is the business subscription with derived fields.
type SubscriptionView struct {
	*entity.BusinessSubscription

	IsProActive bool `json:"is_pro_active"`

	// DaysRemaining is -1 for lifetime Pro.
	DaysRemaining int `json:"days_remaining"`
}

// BusinessUsecase manages business Pro subscriptions.
type BusinessUsecase interface {
	GetSubscription(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error)

	// GrantInitialBonus is safe to call repeatedly; it reports whether this call granted the bonus.
	GrantInitialBonus(ctx context.Context, userID uuid.UUID) (bool, error)

	GrantProSubscription(ctx context.Context, userID uuid.UUID, months int, source string) (*SubscriptionView, error)
	IsBusinessUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
