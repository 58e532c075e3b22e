package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type followService struct {
	userRepo    repository.UserRepository
	followRepo  repository.FollowRepository
	searchCache service.Cache
	logger      *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	FollowRepo  repository.FollowRepository
	SearchCache service.Cache `name:"searchCache"`
	Logger      *slog.Logger
}

// NewFollowService creates the follow graph service.
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		userRepo:    params.UserRepo,
		followRepo:  params.FollowRepo,
		searchCache: params.SearchCache,
		logger:      params.Logger,
	}
}

func (srv *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Follow is idempotent and reports whether a new edge was created.
func (srv *followService) Follow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	if followerID == followingID {
		return false, domainerrors.ErrSelfFollow
	}
	if _, err := srv.userRepo.FindByID(ctx, followingID); err != nil {
		return false, mapUserError(err)
	}

	created, err := srv.followRepo.Follow(ctx, followerID, followingID)
	if err != nil {
		return false, errors.Wrap(err, "failed to follow user")
	}
	if created {
		srv.invalidateSearch(ctx)
	}

	return created, nil
}

func (srv *followService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	removed, err := srv.followRepo.Unfollow(ctx, followerID, followingID)
	if err != nil {
		return false, errors.Wrap(err, "failed to unfollow user")
	}
	if removed {
		srv.invalidateSearch(ctx)
	}

	return removed, nil
}

// invalidateSearch drops every cached search page, since follower counts are part of each row.
func (srv *followService) invalidateSearch(ctx context.Context) {
	srv.searchCache.Clear()
	srv.log(ctx).Debug("Search cache cleared after follow change")
}

func (srv *followService) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	ok, err := srv.followRepo.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return ok, nil
}

func (srv *followService) ListFollowers(ctx context.Context, userID uuid.UUID, page usecase.Page) ([]*entity.FollowProfile, error) {
	page = page.Normalize()

	profiles, err := srv.followRepo.ListFollowers(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return profiles, nil
}

func (srv *followService) ListFollowing(ctx context.Context, userID uuid.UUID, page usecase.Page) ([]*entity.FollowProfile, error) {
	page = page.Normalize()

	profiles, err := srv.followRepo.ListFollowing(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return profiles, nil
}

// SearchBusinesses reads through the search cache. Queries are matched case-insensitively.
func (srv *followService) SearchBusinesses(ctx context.Context, query string, page usecase.Page) ([]*entity.BusinessListing, error) {
	page = page.Normalize()
	query = strings.TrimSpace(query)
	key := fmt.Sprintf("search:%s:%d:%d", strings.ToLower(query), page.Limit, page.Offset)

	if listings, ok := service.CacheLoad(ctx, srv.searchCache, key, 0, func(ctx context.Context) ([]*entity.BusinessListing, error) {
		return srv.followRepo.SearchBusinesses(ctx, query, page.Limit, page.Offset)
	}); ok {
		return listings, nil
	}

	listings, err := srv.followRepo.SearchBusinesses(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return listings, nil
}
