package postgres

import (
	"context"
	"time"

	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business dashboard repository
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) CreateDashboard(ctx context.Context, userID uuid.UUID, now time.Time) error {
	m := &model.BusinessDashboardModel{
		UserID:           userID,
		SubscriptionPlan: string(entity.PlanFree),
		PlanStatus:       string(entity.PlanStatusActive),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create business dashboard")
	}

	return nil
}

func (repo *businessRepository) FindSubscription(ctx context.Context, userID uuid.UUID) (*entity.BusinessSubscription, error) {
	m, err := findDashboard(repo.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	return toSubscriptionDomain(m), nil
}

func (repo *businessRepository) IsBusinessUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ? AND user_type = ?", userID, entity.UserTypeBusiness).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check business user")
	}

	return count > 0, nil
}

func (repo *businessRepository) GrantProSubscription(ctx context.Context, userID uuid.UUID, months int, now time.Time) (*entity.BusinessSubscription, error) {
	var granted *model.BusinessDashboardModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := extendPro(tx, userID, months, now, nil)
		granted = m

		return err
	})
	if err != nil {
		return nil, err
	}

	return toSubscriptionDomain(granted), nil
}

func (repo *businessRepository) GrantInitialBusinessBonus(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	var granted bool
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		granted, err = grantLifetime(tx, userID, now)

		return err
	})

	return granted, err
}

func (repo *businessRepository) ProcessBusinessReferral(ctx context.Context, referrerID, referredID uuid.UUID, now time.Time) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		extra := map[string]any{
			"referral_pro_months_earned": gorm.Expr("referral_pro_months_earned + ?", 1),
		}
		if _, err := extendPro(tx, referrerID, 1, now, extra); err != nil {
			return errors.WithMessage(err, "referrer")
		}

		if _, err := grantLifetime(tx, referredID, now); err != nil {
			return errors.WithMessage(err, "referred business")
		}

		return nil
	})
}

// extendPro adds months of Pro to a locked dashboard. A lifetime expiry stays lifetime.
func extendPro(tx *gorm.DB, userID uuid.UUID, months int, now time.Time, extra map[string]any) (*model.BusinessDashboardModel, error) {
	m, err := findDashboard(tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), userID)
	if err != nil {
		return nil, err
	}

	expiry := entity.ExtendProExpiry(m.ProExpiresAt, months, now)
	updates := map[string]any{
		"subscription_plan":       string(entity.PlanPro),
		"plan_status":             string(entity.PlanStatusActive),
		"pro_features_enabled":    true,
		"pro_expires_at":          expiry,
		"pro_subscription_months": gorm.Expr("pro_subscription_months + ?", months),
		"updated_at":              now,
	}
	for k, v := range extra {
		updates[k] = v
	}

	if err := tx.Model(&model.BusinessDashboardModel{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to extend pro subscription")
	}

	return findDashboard(tx, userID)
}

// grantLifetime flips initial_pro_months_given exactly once and reports whether this call did it.
func grantLifetime(tx *gorm.DB, userID uuid.UUID, now time.Time) (bool, error) {
	result := tx.Model(&model.BusinessDashboardModel{}).
		Where("user_id = ? AND initial_pro_months_given = ?", userID, false).
		Updates(map[string]any{
			"subscription_plan":        string(entity.PlanPro),
			"plan_status":              string(entity.PlanStatusActive),
			"pro_features_enabled":     true,
			"pro_expires_at":           entity.LifetimeProExpiry,
			"initial_pro_months_given": true,
			"updated_at":               now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to grant lifetime pro")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// Nothing changed: either the guard was already set or there is no dashboard.
	if _, err := findDashboard(tx, userID); err != nil {
		return false, err
	}

	return false, nil
}

func findDashboard(query *gorm.DB, userID uuid.UUID) (*model.BusinessDashboardModel, error) {
	var m model.BusinessDashboardModel
	if err := query.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDashboardNotFound
		}

		return nil, errors.Wrap(err, "failed to find business dashboard")
	}

	return &m, nil
}

func toSubscriptionDomain(m *model.BusinessDashboardModel) *entity.BusinessSubscription {
	return &entity.BusinessSubscription{
		UserID:                  m.UserID,
		SubscriptionPlan:        entity.SubscriptionPlan(m.SubscriptionPlan),
		PlanStatus:              entity.PlanStatus(m.PlanStatus),
		ProSubscriptionMonths:   m.ProSubscriptionMonths,
		ProExpiresAt:            m.ProExpiresAt,
		ProFeaturesEnabled:      m.ProFeaturesEnabled,
		ReferralProMonthsEarned: m.ReferralProMonthsEarned,
		InitialProMonthsGiven:   m.InitialProMonthsGiven,
		UpdatedAt:               m.UpdatedAt,
	}
}
