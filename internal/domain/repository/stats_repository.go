package repository

import (
	"context"
	"errors"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStatsNotFound is returned when no stats row exists yet.
var ErrStatsNotFound = errors.New("user stats not found")

// StatsRepository persists the derived stats projection.
type StatsRepository interface {
	// Upsert writes the single stats row of the user.
	Upsert(ctx context.Context, stats *entity.UserStats) error

	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)

	// CountWithMorePoints counts users whose persisted total_points exceed points.
	CountWithMorePoints(ctx context.Context, points int) (int, error)
}
