package repository

import (
	"context"
	"errors"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReferralNotFound is returned when no referral row matches.
	ErrReferralNotFound = errors.New("referral not found")

	// ErrDuplicateReferral is returned when the referred user already has a referral row.
	ErrDuplicateReferral = errors.New("user already referred")
)

// ReferralRepository manages referral edges.
type ReferralRepository interface {
	// Create inserts a referral. Returns ErrDuplicateReferral if the referred user was already referred.
	Create(ctx context.Context, referral *entity.Referral) error

	// FindByReferredUser returns the single referral of a referred user.
	FindByReferredUser(ctx context.Context, referredUserID uuid.UUID) (*entity.Referral, error)

	// CountCompletedByReferrer counts the referrer's completed referrals.
	CountCompletedByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error)

	// ListByReferrer returns every referral made by the referrer, oldest first.
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entity.Referral, error)

	// ListRecentCompletedByReferrer returns up to limit completed referrals, newest first.
	ListRecentCompletedByReferrer(ctx context.Context, referrerID uuid.UUID, limit int) ([]*entity.Referral, error)
}
