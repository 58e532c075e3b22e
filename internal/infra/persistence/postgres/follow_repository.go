package postgres

import (
	"context"
	"strings"
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

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow graph repository
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

func (repo *followRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.FollowModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrUserNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to follow user")
	}

	return result.RowsAffected > 0, nil
}

func (repo *followRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to unfollow user")
	}

	return result.RowsAffected > 0, nil
}

func (repo *followRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return count > 0, nil
}

type followProfileRow struct {
	UserID       uuid.UUID
	FullName     string
	UserType     string
	BusinessName string
	FollowedAt   time.Time
}

func (repo *followRepository) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error) {
	return repo.listProfiles(ctx, "f.follower_id", "f.following_id", userID, limit, offset)
}

func (repo *followRepository) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error) {
	return repo.listProfiles(ctx, "f.following_id", "f.follower_id", userID, limit, offset)
}

// listProfiles joins the edge's other end (joinColumn) to users for the given user (matchColumn).
func (repo *followRepository) listProfiles(ctx context.Context, joinColumn, matchColumn string, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error) {
	var rows []followProfileRow
	err := repo.db.WithContext(ctx).
		Table("user_follows AS f").
		Select("u.id AS user_id, u.full_name, u.user_type, u.business_name, f.created_at AS followed_at").
		Joins("JOIN users AS u ON u.id = "+joinColumn).
		Where(matchColumn+" = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list follow profiles")
	}

	profiles := make([]*entity.FollowProfile, len(rows))
	for i, r := range rows {
		profiles[i] = &entity.FollowProfile{
			UserID:       r.UserID,
			FullName:     r.FullName,
			UserType:     entity.UserType(r.UserType),
			BusinessName: r.BusinessName,
			FollowedAt:   r.FollowedAt,
		}
	}

	return profiles, nil
}

type businessListingRow struct {
	UserID           uuid.UUID
	BusinessName     string
	BusinessCategory string
	City             string
	FollowersCount   int
	IsPro            bool
}

func (repo *followRepository) SearchBusinesses(ctx context.Context, query string, limit, offset int) ([]*entity.BusinessListing, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	var rows []businessListingRow
	err := repo.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id AS user_id, u.business_name, u.business_category, u.city,
			(SELECT COUNT(*) FROM user_follows f WHERE f.following_id = u.id) AS followers_count,
			COALESCE(d.pro_features_enabled AND d.pro_expires_at > NOW(), FALSE) AS is_pro`).
		Joins("LEFT JOIN business_dashboards AS d ON d.user_id = u.id").
		Where("u.user_type = ?", entity.UserTypeBusiness).
		Where("u.business_name ILIKE ? OR u.business_category ILIKE ? OR u.city ILIKE ?", pattern, pattern, pattern).
		Order("followers_count DESC, u.business_name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	listings := make([]*entity.BusinessListing, len(rows))
	for i, r := range rows {
		listings[i] = &entity.BusinessListing{
			UserID:         r.UserID,
			BusinessName:   r.BusinessName,
			Category:       r.BusinessCategory,
			City:           r.City,
			FollowersCount: r.FollowersCount,
			IsPro:          r.IsPro,
		}
	}

	return listings, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
