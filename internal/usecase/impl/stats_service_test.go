package impl

import (
	"context"
	"testing"
	"time"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/repository"
	mockRepo "booknow/internal/mocks/repository"
	mockSvc "booknow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_RecalculateUserStats(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeCustomer)
	other := h.addUser(entity.UserTypeCustomer)

	for range 3 {
		_, err := h.referral.ProcessReferral(ctx, referrer.ID, h.addUser(entity.UserTypeCustomer).ID, "")
		require.NoError(t, err)
	}
	require.NoError(t, h.store.NewStatsRepository().Upsert(ctx, &entity.UserStats{UserID: other.ID, TotalPoints: 500}))

	h.statsCache.Set(statsCacheKey(referrer.ID), &entity.UserStats{UserID: referrer.ID}, 0, "")

	stats, err := h.stats.RecalculateUserStats(ctx, referrer.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalReferrals)
	assert.Equal(t, 3, stats.SuccessfulReferrals)
	assert.Equal(t, 50, stats.TotalCreditsEarned)
	assert.Zero(t, stats.TotalPoints)
	assert.Equal(t, 2, stats.PositionRank)
	assert.Equal(t, testNow, stats.LastCalculatedAt)

	persisted, err := h.store.NewStatsRepository().FindByUserID(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, stats, persisted)

	_, cached := h.statsCache.Get(statsCacheKey(referrer.ID))
	assert.False(t, cached)
}

func TestStatsService_RecalculateUserStats_IsPure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	_, err := h.achievement.EvaluateAchievements(ctx, user.ID)
	require.NoError(t, err)

	first, err := h.stats.RecalculateUserStats(ctx, user.ID)
	require.NoError(t, err)
	second, err := h.stats.RecalculateUserStats(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 10, second.TotalPoints)
	assert.Equal(t, 1, second.AchievementsCount)
}

func TestStatsService_RecalculateUserStats_Busy(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	release, ok := h.locks.TryAcquire(statsCacheKey(user.ID))
	require.True(t, ok)
	defer release()

	_, err := h.stats.RecalculateUserStats(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStatsBusy)

	persisted := &entity.UserStats{UserID: user.ID, TotalPoints: 42}
	require.NoError(t, h.store.NewStatsRepository().Upsert(ctx, persisted))

	stats, err := h.stats.RecalculateUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalPoints)
}

func TestStatsService_RefreshUserStats_BusyIsRetried(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)
	statsRepo := h.store.NewStatsRepository()
	tasks := h.store.NewTaskRepository()

	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserStats{UserID: user.ID}))

	release, ok := h.locks.TryAcquire(statsCacheKey(user.ID))
	require.True(t, ok)

	reward := entity.NewActivity(user.ID, entity.ActivityReferralReward, "Referral reward", nil)
	reward.RewardPoints = 25
	require.NoError(t, h.store.NewActivityRepository().Create(ctx, reward))
	require.NoError(t, enqueueAll(ctx, tasks, testNow, statsTask(user.ID)))

	claimed, err := tasks.ClaimDue(ctx, testNow, 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	err = h.executor.Execute(ctx, claimed[0])
	require.ErrorIs(t, err, domainerrors.ErrStatsBusy)

	task, err := tasks.FindByID(ctx, claimed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, task.Status)

	release()

	retried, err := tasks.ClaimDue(ctx, time.Now().Add(time.Hour), 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, retried, 1)
	require.NoError(t, h.executor.Execute(ctx, retried[0]))

	persisted, err := statsRepo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, persisted.TotalPoints)
}

func TestStatsService_RefreshUserStats(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	_, err := h.achievement.EvaluateAchievements(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, h.stats.RefreshUserStats(ctx, user.ID))

	persisted, err := h.store.NewStatsRepository().FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, persisted.TotalPoints)
	assert.False(t, h.locks.Held(statsCacheKey(user.ID)))
}

func TestStatsService_RecalculateUserStats_UnknownUser(t *testing.T) {
	h := newHarness(t)

	_, err := h.stats.RecalculateUserStats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestStatsService_RecalculateUserStats_LoadFailureDoesNotPersist(t *testing.T) {
	userID := uuid.New()

	userRepo := mockRepo.NewMockUserRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	achievementRepo := mockRepo.NewMockAchievementRepository(t)
	statsRepo := mockRepo.NewMockStatsRepository(t)
	locks := mockSvc.NewMockLockRegistry(t)

	released := false
	locks.EXPECT().TryAcquire(statsCacheKey(userID)).Return(func() { released = true }, true).Once()
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil).Once()
	referralRepo.EXPECT().ListByReferrer(mock.Anything, userID).Return(nil, nil).Maybe()
	activityRepo.EXPECT().ListByUser(mock.Anything, userID).Return(nil, errors.New("read timeout")).Once()
	achievementRepo.EXPECT().CountByUser(mock.Anything, userID).Return(0, nil).Maybe()

	srv := newStatsService(StatsServiceParams{
		UserRepo:        userRepo,
		ReferralRepo:    referralRepo,
		ActivityRepo:    activityRepo,
		AchievementRepo: achievementRepo,
		StatsRepo:       statsRepo,
		StatsCache:      mockSvc.NewMockCache(t),
		Locks:           locks,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	}, func() time.Time { return testNow })

	_, err := srv.RecalculateUserStats(context.Background(), userID)
	assert.ErrorContains(t, err, "read timeout")
	assert.True(t, released)
	statsRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestStatsService_GetUserStats_ReadPath(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)
	statsRepo := h.store.NewStatsRepository()

	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserStats{UserID: user.ID, TotalPoints: 7}))

	stats, err := h.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalPoints)

	// served from cache until invalidated
	require.NoError(t, statsRepo.Upsert(ctx, &entity.UserStats{UserID: user.ID, TotalPoints: 9}))
	stats, err = h.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalPoints)

	h.statsCache.Delete(statsCacheKey(user.ID))
	stats, err = h.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stats.TotalPoints)
}

func TestStatsService_GetUserStats_RecomputesMissingRow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	_, err := h.store.NewStatsRepository().FindByUserID(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrStatsNotFound)

	stats, err := h.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stats.UserID)

	_, err = h.store.NewStatsRepository().FindByUserID(ctx, user.ID)
	require.NoError(t, err)

	_, cached := h.statsCache.Get(statsCacheKey(user.ID))
	assert.True(t, cached)
}
