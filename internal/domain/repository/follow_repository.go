package repository

import (
	"context"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowRepository manages follow edges and business discovery.
type FollowRepository interface {
	// Follow creates the edge. It reports false when the edge already existed.
	Follow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)

	// Unfollow removes the edge. It reports false when there was no edge.
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)

	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error)

	// SearchBusinesses matches business name, category or city case-insensitively.
	SearchBusinesses(ctx context.Context, query string, limit, offset int) ([]*entity.BusinessListing, error)
}
