package usecase

import (
	"context"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// AchievementUsecase unlocks achievements from the user's referral history.
type AchievementUsecase interface {
	// EvaluateAchievements unlocks every achievement the user now qualifies for and returns the new ones.
	EvaluateAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)

	ListAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)
}
