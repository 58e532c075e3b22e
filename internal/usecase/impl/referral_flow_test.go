package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReferralFlow_RegistrationToRewards runs registrations through the outbox until every
// reward, achievement, notification and stats task has been applied.
func TestReferralFlow_RegistrationToRewards(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	referrer, err := h.registration.Register(ctx, customerInput("host@example.com", ""))
	require.NoError(t, err)
	first, err := h.registration.Register(ctx, customerInput("first@example.com", referrer.User.ReferralCode))
	require.NoError(t, err)
	second, err := h.registration.Register(ctx, customerInput("second@example.com", referrer.User.ReferralCode))
	require.NoError(t, err)

	h.drain()

	for _, task := range h.store.Tasks() {
		assert.Equal(t, entity.TaskStatusDone, task.Status, "task %s", task.Type)
	}

	require.Len(t, h.store.Referrals(), 2)
	assert.Len(t, h.activities(referrer.User.ID, entity.ActivityReferralMilestone), 1)

	achievements, err := h.achievement.ListAchievements(ctx, referrer.User.ID)
	require.NoError(t, err)
	var types []entity.AchievementType
	for _, a := range achievements {
		types = append(types, a.AchievementType)
	}
	assert.ElementsMatch(t, []entity.AchievementType{
		entity.AchievementEarlyAdopter,
		entity.AchievementFirstReferral,
		entity.AchievementFirstMilestone,
	}, types)

	stats, err := h.stats.GetUserStats(ctx, referrer.User.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalReferrals)
	assert.Equal(t, 2, stats.SuccessfulReferrals)
	assert.Equal(t, 50, stats.TotalCreditsEarned)
	assert.Equal(t, 45, stats.TotalPoints)
	assert.Equal(t, 3, stats.AchievementsCount)
	assert.Equal(t, 1, stats.PositionRank)

	for _, u := range []*entity.User{first.User, second.User} {
		st, err := h.stats.GetUserStats(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 35, st.TotalPoints, "early adopter plus the milestone reward")
		assert.Zero(t, st.TotalCreditsEarned)
	}

	// every delivered email is on the ledger of its recipient
	emails := h.sender.emails()
	assert.NotEmpty(t, emails)
	delivered := 0
	for _, u := range []*entity.User{referrer.User, first.User, second.User} {
		for _, a := range h.activities(u.ID, entity.ActivityNotification) {
			if d, ok := a.Details.(entity.NotificationDetails); ok && d.Delivered {
				delivered++
			}
		}
	}
	assert.Equal(t, len(emails), delivered)
}

func TestReferralFlow_ReplayedTaskDoesNotDoubleReward(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	referrer, err := h.registration.Register(ctx, customerInput("host@example.com", ""))
	require.NoError(t, err)
	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := h.registration.Register(ctx, customerInput(email, referrer.User.ReferralCode))
		require.NoError(t, err)
	}
	h.drain()

	// a relayed duplicate of an already applied referral task
	for _, task := range h.store.TasksOfType(entity.TaskProcessReferral) {
		require.NoError(t, h.executor.Execute(ctx, task))
	}
	h.drain()

	assert.Len(t, h.store.Referrals(), 2)
	assert.Len(t, h.activities(referrer.User.ID, entity.ActivityReferralMilestone), 1)

	stats, err := h.stats.RecalculateUserStats(ctx, referrer.User.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.TotalCreditsEarned)
}
