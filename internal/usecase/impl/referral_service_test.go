package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralService_ProcessReferral_FirstReferralRecordsProgress(t *testing.T) {
	h := newHarness(t)
	referrer := h.addUser(entity.UserTypeCustomer)
	referred := h.addUser(entity.UserTypeCustomer)

	outcome, err := h.referral.ProcessReferral(context.Background(), referrer.ID, referred.ID, "")
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.ReferralCount)
	assert.False(t, outcome.MilestoneAwarded)
	assert.Equal(t, referrer.ReferralCode, outcome.Referral.ReferralCode)
	assert.Equal(t, entity.ReferralStatusCompleted, outcome.Referral.Status)

	progress := h.activities(referrer.ID, entity.ActivityReferralProgress)
	require.Len(t, progress, 1)
	details, ok := progress[0].Details.(entity.ReferralProgressDetails)
	require.True(t, ok)
	assert.Equal(t, 1, details.Progress)
	assert.Equal(t, 2, details.Target)

	assert.Len(t, h.activities(referred.ID, entity.ActivityReferralPending), 1)
	assert.Empty(t, h.activities(referrer.ID, entity.ActivityReferralMilestone))
	assert.Equal(t, 1, h.waker.count())
}

func TestReferralService_ProcessReferral_MilestoneEveryTwoReferrals(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeCustomer)

	var referred []*entity.User
	var outcomes []*usecase.ReferralOutcome
	for range 4 {
		u := h.addUser(entity.UserTypeCustomer)
		referred = append(referred, u)

		outcome, err := h.referral.ProcessReferral(ctx, referrer.ID, u.ID, referrer.ReferralCode)
		require.NoError(t, err)
		outcomes = append(outcomes, outcome)
	}

	assert.False(t, outcomes[0].MilestoneAwarded)
	assert.True(t, outcomes[1].MilestoneAwarded)
	assert.Equal(t, 1, outcomes[1].MilestoneNumber)
	assert.ElementsMatch(t, []uuid.UUID{referred[0].ID, referred[1].ID}, outcomes[1].RewardedUserIDs)
	assert.False(t, outcomes[2].MilestoneAwarded)
	assert.True(t, outcomes[3].MilestoneAwarded)
	assert.Equal(t, 2, outcomes[3].MilestoneNumber)
	assert.ElementsMatch(t, []uuid.UUID{referred[2].ID, referred[3].ID}, outcomes[3].RewardedUserIDs)

	milestones := h.activities(referrer.ID, entity.ActivityReferralMilestone)
	require.Len(t, milestones, 2)
	for i, m := range milestones {
		assert.Equal(t, 50, m.RewardAmount)
		assert.Zero(t, m.RewardPoints)
		require.NotNil(t, m.MilestoneNumber)
		assert.Equal(t, i+1, *m.MilestoneNumber)
	}

	for _, u := range referred {
		rewards := h.activities(u.ID, entity.ActivityReferralReward)
		require.Len(t, rewards, 1, "each referred user is rewarded exactly once")
		assert.Equal(t, 25, rewards[0].RewardPoints)
		assert.Nil(t, rewards[0].MilestoneNumber)
	}

	// milestone notifications: one credits email for the referrer and one points email per rewarded user
	notifications := h.store.TasksOfType(entity.TaskSendNotification)
	assert.Len(t, notifications, 6)
}

func TestReferralService_ProcessReferral_ReplayIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeCustomer)
	first := h.addUser(entity.UserTypeCustomer)
	second := h.addUser(entity.UserTypeCustomer)

	_, err := h.referral.ProcessReferral(ctx, referrer.ID, first.ID, "")
	require.NoError(t, err)
	_, err = h.referral.ProcessReferral(ctx, referrer.ID, second.ID, "")
	require.NoError(t, err)

	tasksBefore := len(h.store.Tasks())
	wakesBefore := h.waker.count()

	outcome, err := h.referral.ProcessReferral(ctx, referrer.ID, second.ID, "")
	require.NoError(t, err)

	assert.True(t, outcome.Replayed)
	assert.Equal(t, 2, outcome.ReferralCount)
	assert.Len(t, h.store.Referrals(), 2)
	assert.Len(t, h.activities(referrer.ID, entity.ActivityReferralMilestone), 1)
	assert.Len(t, h.store.Tasks(), tasksBefore)
	assert.Equal(t, wakesBefore, h.waker.count())
}

func TestReferralService_ProcessReferral_SelfReferral(t *testing.T) {
	h := newHarness(t)
	user := h.addUser(entity.UserTypeCustomer)

	_, err := h.referral.ProcessReferral(context.Background(), user.ID, user.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrSelfReferral)
	assert.Empty(t, h.store.Referrals())
}

func TestReferralService_ProcessReferral_UnknownUser(t *testing.T) {
	h := newHarness(t)
	referrer := h.addUser(entity.UserTypeCustomer)

	_, err := h.referral.ProcessReferral(context.Background(), referrer.ID, uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Empty(t, h.store.Referrals())
}

func TestReferralService_ProcessReferral_WriteFailureRollsBack(t *testing.T) {
	h := newHarness(t)
	referrer := h.addUser(entity.UserTypeCustomer)
	referred := h.addUser(entity.UserTypeCustomer)

	h.store.FailNextWrite(errors.New("connection reset"))

	_, err := h.referral.ProcessReferral(context.Background(), referrer.ID, referred.ID, "")
	require.Error(t, err)
	assert.Empty(t, h.store.Referrals())
	assert.Empty(t, h.activities(referrer.ID, entity.ActivityReferralProgress))
	assert.Zero(t, h.waker.count())
}

func TestReferralService_ProcessReferral_BusinessToBusiness(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeBusiness)
	referred := h.addUser(entity.UserTypeBusiness)

	h.businessCache.Set(subscriptionCacheKey(referrer.ID), &entity.BusinessSubscription{UserID: referrer.ID}, 0, "")

	outcome, err := h.referral.ProcessReferral(ctx, referrer.ID, referred.ID, "")
	require.NoError(t, err)
	assert.True(t, outcome.BusinessReferral)
	assert.False(t, outcome.MilestoneAwarded)

	_, cached := h.businessCache.Get(subscriptionCacheKey(referrer.ID))
	assert.False(t, cached)

	referrerSub, err := h.business.GetSubscription(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, referrerSub.ProSubscriptionMonths)
	assert.Equal(t, 1, referrerSub.ReferralProMonthsEarned)
	assert.True(t, referrerSub.IsProActive)

	referredSub, err := h.business.GetSubscription(ctx, referred.ID)
	require.NoError(t, err)
	assert.True(t, referredSub.IsLifetime())
	assert.True(t, referredSub.InitialProMonthsGiven)
	assert.Equal(t, -1, referredSub.DaysRemaining)

	earned := h.activities(referrer.ID, entity.ActivityBusinessReferral)
	require.Len(t, earned, 1)
	assert.Equal(t, 1, earned[0].Details.(entity.BusinessReferralDetails).MonthsGranted)

	joined := h.activities(referred.ID, entity.ActivityBusinessReferral)
	require.Len(t, joined, 1)
	assert.True(t, joined[0].Details.(entity.BusinessReferralDetails).Lifetime)
}

func TestReferralService_ProcessReferral_BusinessReferringCustomerUsesMilestones(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeBusiness)

	for range 2 {
		_, err := h.referral.ProcessReferral(ctx, referrer.ID, h.addUser(entity.UserTypeCustomer).ID, "")
		require.NoError(t, err)
	}

	assert.Len(t, h.activities(referrer.ID, entity.ActivityReferralMilestone), 1)
	assert.Empty(t, h.activities(referrer.ID, entity.ActivityBusinessReferral))
}

func TestReferralService_GetDashboard(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeCustomer)

	for range 3 {
		_, err := h.referral.ProcessReferral(ctx, referrer.ID, h.addUser(entity.UserTypeCustomer).ID, "")
		require.NoError(t, err)
	}

	dashboard, err := h.referral.GetDashboard(ctx, referrer.ID)
	require.NoError(t, err)

	assert.Equal(t, referrer.ReferralCode, dashboard.ReferralCode)
	assert.Equal(t, "https://booknow.app/join?ref="+referrer.ReferralCode, dashboard.ShareLink)
	assert.Len(t, dashboard.Referrals, 3)
	assert.Equal(t, 3, dashboard.CompletedCount)
	assert.Equal(t, 1, dashboard.Progress)
	assert.Equal(t, 2, dashboard.Target)
	assert.Equal(t, 2, dashboard.NextMilestone)
}

func TestReferralService_GetDashboard_UnknownUser(t *testing.T) {
	h := newHarness(t)

	_, err := h.referral.GetDashboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestReferralService_GetReferralQR(t *testing.T) {
	h := newHarness(t)
	user := h.addUser(entity.UserTypeCustomer)

	h.qr.EXPECT().GenerateReferralQR("https://booknow.app/join?ref="+user.ReferralCode).Return([]byte("png"), nil).Once()

	png, err := h.referral.GetReferralQR(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestReferralService_ListActivities_NewestFirst(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	referrer := h.addUser(entity.UserTypeCustomer)

	for range 2 {
		_, err := h.referral.ProcessReferral(ctx, referrer.ID, h.addUser(entity.UserTypeCustomer).ID, "")
		require.NoError(t, err)
	}

	activities, err := h.referral.ListActivities(ctx, referrer.ID, usecase.Page{})
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, entity.ActivityReferralMilestone, activities[0].Type)
	assert.Equal(t, entity.ActivityReferralProgress, activities[1].Type)

	activities, err = h.referral.ListActivities(ctx, referrer.ID, usecase.Page{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityReferralProgress, activities[0].Type)
}

func TestShareLink(t *testing.T) {
	assert.Equal(t, "https://booknow.app/join?ref=BNABC123", shareLink("https://booknow.app/join", "BNABC123"))
	assert.Equal(t, "https://booknow.app/join?ref=BNABC123&src=qr", shareLink("https://booknow.app/join?src=qr", "BNABC123"))
}
