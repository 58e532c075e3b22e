package usecase

import (
	"context"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsUsecase maintains the per-user stats projection.
type StatsUsecase interface {
	// RecalculateUserStats recomputes stats from the ledgers. While another recompute
	// for the same user is running it returns the persisted stats instead.
	RecalculateUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)

	// RefreshUserStats recomputes stats after a ledger write. It returns ErrStatsBusy
	// whenever another recompute for the user is running, so the caller can retry.
	RefreshUserStats(ctx context.Context, userID uuid.UUID) error

	// GetUserStats reads the cache, then the persisted row, then recomputes.
	GetUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
}
