package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementTypes(achievements []*entity.Achievement) []entity.AchievementType {
	out := make([]entity.AchievementType, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, a.AchievementType)
	}

	return out
}

func TestAchievementService_EvaluateAchievements_EarlyAdopterOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	unlocked, err := h.achievement.EvaluateAchievements(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, entity.AchievementEarlyAdopter, unlocked[0].AchievementType)
	assert.Equal(t, 10, unlocked[0].PointsAwarded)
	assert.Equal(t, testNow, unlocked[0].EarnedAt)

	unlocked, err = h.achievement.EvaluateAchievements(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, unlocked)

	entries := h.activities(user.ID, entity.ActivityAchievement)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].RewardPoints)
	assert.Len(t, h.store.TasksOfType(entity.TaskSendNotification), 1)
	assert.Len(t, h.store.TasksOfType(entity.TaskRecalculateStats), 1)
	assert.Equal(t, 1, h.waker.count())
}

func TestAchievementService_EvaluateAchievements_SuperReferrer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeCustomer)

	for range 10 {
		_, err := h.referral.ProcessReferral(ctx, referrer.ID, h.addUser(entity.UserTypeCustomer).ID, "")
		require.NoError(t, err)
	}

	unlocked, err := h.achievement.EvaluateAchievements(ctx, referrer.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.AchievementType{
		entity.AchievementEarlyAdopter,
		entity.AchievementFirstReferral,
		entity.AchievementFirstMilestone,
		entity.AchievementSuperReferrer,
	}, achievementTypes(unlocked))

	total := 0
	for _, a := range h.activities(referrer.ID, entity.ActivityAchievement) {
		total += a.RewardPoints
	}
	assert.Equal(t, 145, total)
}

func TestAchievementService_EvaluateAchievements_UnknownUser(t *testing.T) {
	h := newHarness(t)

	_, err := h.achievement.EvaluateAchievements(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAchievementService_ListAchievements(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	achievements, err := h.achievement.ListAchievements(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, achievements)

	_, err = h.achievement.EvaluateAchievements(ctx, user.ID)
	require.NoError(t, err)

	achievements, err = h.achievement.ListAchievements(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.AchievementType{entity.AchievementEarlyAdopter}, achievementTypes(achievements))
}
