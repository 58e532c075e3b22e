package postgres

import (
	"context"
	"log/slog"

	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity ledger repository
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	metadata, err := entity.MarshalActivityDetails(activity.Details)
	if err != nil {
		return err
	}

	m := &model.UserActivityModel{
		ID:              activity.ID,
		UserID:          activity.UserID,
		ActivityType:    string(activity.Type),
		Description:     activity.Description,
		RewardPoints:    activity.RewardPoints,
		RewardAmount:    activity.RewardAmount,
		MilestoneNumber: activity.MilestoneNumber,
		Metadata:        datatypes.JSON(metadata),
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActivity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record activity")
	}
	activity.CreatedAt = m.CreatedAt

	return nil
}

func (repo *activityRepository) MilestoneExists(ctx context.Context, userID uuid.UUID, milestoneNumber int) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserActivityModel{}).
		Where("user_id = ? AND activity_type = ? AND milestone_number = ?",
			userID, entity.ActivityReferralMilestone, milestoneNumber).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check milestone")
	}

	return count > 0, nil
}

func (repo *activityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var models []model.UserActivityModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return toActivityDomains(ctx, models), nil
}

func (repo *activityRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	var models []model.UserActivityModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	return toActivityDomains(ctx, models), nil
}

// toActivityDomains keeps rows whose metadata cannot be decoded; their amounts still count.
func toActivityDomains(ctx context.Context, models []model.UserActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, len(models))
	for i := range models {
		m := &models[i]
		details, err := entity.UnmarshalActivityDetails(m.Metadata)
		if err != nil {
			slog.WarnContext(ctx, "Undecodable activity metadata",
				slog.String("activityID", m.ID.String()),
				slog.Any("error", err))
		}

		activities[i] = &entity.Activity{
			ID:              m.ID,
			UserID:          m.UserID,
			Type:            entity.ActivityType(m.ActivityType),
			Description:     m.Description,
			RewardPoints:    m.RewardPoints,
			RewardAmount:    m.RewardAmount,
			MilestoneNumber: m.MilestoneNumber,
			Details:         details,
			CreatedAt:       m.CreatedAt,
		}
	}

	return activities
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *gorm.DB) repository.AchievementRepository {
	return &achievementRepository{db: db}
}

func (repo *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	m := &model.AchievementModel{
		ID:              achievement.ID,
		UserID:          achievement.UserID,
		AchievementType: string(achievement.AchievementType),
		Title:           achievement.Title,
		Description:     achievement.Description,
		PointsAwarded:   achievement.PointsAwarded,
		Progress:        achievement.Progress,
		Target:          achievement.Target,
		EarnedAt:        achievement.EarnedAt,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAchievementExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create achievement")
	}

	return nil
}

func (repo *achievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	var models []model.AchievementModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list achievements")
	}

	achievements := make([]*entity.Achievement, len(models))
	for i, m := range models {
		achievements[i] = &entity.Achievement{
			ID:              m.ID,
			UserID:          m.UserID,
			AchievementType: entity.AchievementType(m.AchievementType),
			Title:           m.Title,
			Description:     m.Description,
			PointsAwarded:   m.PointsAwarded,
			Progress:        m.Progress,
			Target:          m.Target,
			EarnedAt:        m.EarnedAt,
		}
	}

	return achievements, nil
}

func (repo *achievementRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AchievementModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count achievements")
	}

	return int(count), nil
}
