package repository

import (
	"context"
	"errors"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAchievementExists is returned when the user already earned the achievement type.
var ErrAchievementExists = errors.New("achievement already earned")

// AchievementRepository stores earned achievements.
type AchievementRepository interface {
	Create(ctx context.Context, achievement *entity.Achievement) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
