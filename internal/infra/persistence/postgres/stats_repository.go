package postgres

import (
	"context"

	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats projection repository
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) Upsert(ctx context.Context, stats *entity.UserStats) error {
	m := &model.UserStatsModel{
		UserID:              stats.UserID,
		TotalReferrals:      stats.TotalReferrals,
		SuccessfulReferrals: stats.SuccessfulReferrals,
		TotalCreditsEarned:  stats.TotalCreditsEarned,
		TotalPoints:         stats.TotalPoints,
		AchievementsCount:   stats.AchievementsCount,
		PositionRank:        stats.PositionRank,
		LastCalculatedAt:    stats.LastCalculatedAt,
	}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user stats")
	}

	return nil
}

func (repo *statsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	var m model.UserStatsModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStatsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user stats")
	}

	return &entity.UserStats{
		UserID:              m.UserID,
		TotalReferrals:      m.TotalReferrals,
		SuccessfulReferrals: m.SuccessfulReferrals,
		TotalCreditsEarned:  m.TotalCreditsEarned,
		TotalPoints:         m.TotalPoints,
		AchievementsCount:   m.AchievementsCount,
		PositionRank:        m.PositionRank,
		LastCalculatedAt:    m.LastCalculatedAt,
	}, nil
}

func (repo *statsRepository) CountWithMorePoints(ctx context.Context, points int) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserStatsModel{}).
		Where("total_points > ?", points).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ranked users")
	}

	return int(count), nil
}
