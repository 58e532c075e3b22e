package repository

import (
	"context"
	"errors"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateActivity is returned when a milestone activity with the same number already exists.
var ErrDuplicateActivity = errors.New("activity already recorded")

// ActivityRepository is the append-only ledger. There is no update or delete.
type ActivityRepository interface {
	// Create appends an activity. A second referral_milestone for the same user and
	// milestone number fails with ErrDuplicateActivity.
	Create(ctx context.Context, activity *entity.Activity) error

	// MilestoneExists reports whether the user already holds the given milestone.
	MilestoneExists(ctx context.Context, userID uuid.UUID, milestoneNumber int) (bool, error)

	// ListByUser returns every activity of the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// ListRecentByUser returns a page of activities, newest first.
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error)
}
