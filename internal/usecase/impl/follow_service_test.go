package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_Follow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	fan := h.addUser(entity.UserTypeCustomer)
	salon := h.addUser(entity.UserTypeBusiness)

	h.searchCache.Set("search::20:0", []*entity.BusinessListing{}, 0, "")

	created, err := h.follow.Follow(ctx, fan.ID, salon.ID)
	require.NoError(t, err)
	assert.True(t, created)

	_, cached := h.searchCache.Get("search::20:0")
	assert.False(t, cached, "a new edge clears cached search pages")

	created, err = h.follow.Follow(ctx, fan.ID, salon.ID)
	require.NoError(t, err)
	assert.False(t, created)

	following, err := h.follow.IsFollowing(ctx, fan.ID, salon.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followers, err := h.follow.ListFollowers(ctx, salon.ID, usecase.Page{})
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, fan.ID, followers[0].UserID)

	list, err := h.follow.ListFollowing(ctx, fan.ID, usecase.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, salon.ID, list[0].UserID)
}

func TestFollowService_Follow_Rejected(t *testing.T) {
	h := newHarness(t)
	user := h.addUser(entity.UserTypeCustomer)

	_, err := h.follow.Follow(context.Background(), user.ID, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfFollow)

	_, err = h.follow.Follow(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFollowService_Unfollow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	fan := h.addUser(entity.UserTypeCustomer)
	salon := h.addUser(entity.UserTypeBusiness)

	_, err := h.follow.Follow(ctx, fan.ID, salon.ID)
	require.NoError(t, err)

	removed, err := h.follow.Unfollow(ctx, fan.ID, salon.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = h.follow.Unfollow(ctx, fan.ID, salon.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	following, err := h.follow.IsFollowing(ctx, fan.ID, salon.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowService_SearchBusinesses(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	fan := h.addUser(entity.UserTypeCustomer)
	popular := h.addUser(entity.UserTypeBusiness)
	quiet := h.addUser(entity.UserTypeBusiness)
	h.addUser(entity.UserTypeCustomer)

	_, err := h.follow.Follow(ctx, fan.ID, popular.ID)
	require.NoError(t, err)

	listings, err := h.follow.SearchBusinesses(ctx, "SALON", usecase.Page{})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, popular.ID, listings[0].UserID)
	assert.Equal(t, 1, listings[0].FollowersCount)
	assert.Equal(t, quiet.ID, listings[1].UserID)

	_, cached := h.searchCache.Get("search:salon:20:0")
	assert.True(t, cached)
}
