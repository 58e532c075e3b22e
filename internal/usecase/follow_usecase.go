package usecase

import (
	"context"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowUsecase manages the follow graph and business discovery.
type FollowUsecase interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.FollowProfile, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.FollowProfile, error)
	SearchBusinesses(ctx context.Context, query string, page Page) ([]*entity.BusinessListing, error)
}
