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
)

type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{db: db}
}

func (repo *referralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	m := &model.ReferralModel{
		ID:             referral.ID,
		ReferrerID:     referral.ReferrerID,
		ReferredUserID: referral.ReferredUserID,
		ReferralCode:   referral.ReferralCode,
		Status:         string(referral.Status),
		RewardAmount:   referral.RewardAmount,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReferral
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create referral")
	}
	referral.CreatedAt = m.CreatedAt

	return nil
}

func (repo *referralRepository) FindByReferredUser(ctx context.Context, referredUserID uuid.UUID) (*entity.Referral, error) {
	var m model.ReferralModel
	if err := repo.db.WithContext(ctx).Where("referred_user_id = ?", referredUserID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral")
	}

	return toReferralDomain(&m), nil
}

func (repo *referralRepository) CountCompletedByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ReferralModel{}).
		Where("referrer_id = ? AND status = ?", referrerID, entity.ReferralStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count referrals")
	}

	return int(count), nil
}

func (repo *referralRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entity.Referral, error) {
	var models []model.ReferralModel
	if err := repo.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	return toReferralDomains(models), nil
}

func (repo *referralRepository) ListRecentCompletedByReferrer(ctx context.Context, referrerID uuid.UUID, limit int) ([]*entity.Referral, error) {
	var models []model.ReferralModel
	if err := repo.db.WithContext(ctx).
		Where("referrer_id = ? AND status = ?", referrerID, entity.ReferralStatusCompleted).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent referrals")
	}

	return toReferralDomains(models), nil
}

func toReferralDomain(m *model.ReferralModel) *entity.Referral {
	return &entity.Referral{
		ID:             m.ID,
		ReferrerID:     m.ReferrerID,
		ReferredUserID: m.ReferredUserID,
		ReferralCode:   m.ReferralCode,
		Status:         entity.ReferralStatus(m.Status),
		RewardAmount:   m.RewardAmount,
		CreatedAt:      m.CreatedAt,
	}
}

func toReferralDomains(models []model.ReferralModel) []*entity.Referral {
	referrals := make([]*entity.Referral, len(models))
	for i := range models {
		referrals[i] = toReferralDomain(&models[i])
	}

	return referrals
}
