package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessService_GrantInitialBonus_OnlyOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.addUser(entity.UserTypeBusiness)

	granted, err := h.business.GrantInitialBonus(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = h.business.GrantInitialBonus(ctx, owner.ID)
	require.NoError(t, err)
	assert.False(t, granted)

	assert.Len(t, h.activities(owner.ID, entity.ActivityProSubscription), 1)
	assert.Len(t, h.store.TasksOfType(entity.TaskSendNotification), 1)
	assert.Equal(t, 1, h.waker.count())

	sub, err := h.business.GetSubscription(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, sub.InitialProMonthsGiven)
	assert.True(t, sub.IsLifetime())
	assert.Equal(t, entity.PlanPro, sub.SubscriptionPlan)
}

func TestBusinessService_GrantInitialBonus_Customer(t *testing.T) {
	h := newHarness(t)
	user := h.addUser(entity.UserTypeCustomer)

	_, err := h.business.GrantInitialBonus(context.Background(), user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotBusinessUser)
}

func TestBusinessService_GrantProSubscription_ExtendsFromLaterExpiry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.addUser(entity.UserTypeBusiness)

	view, err := h.business.GrantProSubscription(ctx, owner.ID, 2, "promotion")
	require.NoError(t, err)
	require.NotNil(t, view.ProExpiresAt)
	assert.Equal(t, testNow.AddDate(0, 2, 0), *view.ProExpiresAt)
	assert.True(t, view.IsProActive)
	assert.Equal(t, 2, view.ProSubscriptionMonths)

	view, err = h.business.GrantProSubscription(ctx, owner.ID, 1, "promotion")
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 3, 0), *view.ProExpiresAt)
	assert.Equal(t, 3, view.ProSubscriptionMonths)

	entries := h.activities(owner.ID, entity.ActivityProSubscription)
	require.Len(t, entries, 2)
	assert.Equal(t, "promotion", entries[0].Details.(entity.ProGrantDetails).Source)
}

func TestBusinessService_GrantProSubscription_RejectsNonPositiveMonths(t *testing.T) {
	h := newHarness(t)
	owner := h.addUser(entity.UserTypeBusiness)

	_, err := h.business.GrantProSubscription(context.Background(), owner.ID, 0, "promotion")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, h.store.Tasks())
}

func TestBusinessService_GetSubscription(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.addUser(entity.UserTypeBusiness)
	customer := h.addUser(entity.UserTypeCustomer)

	view, err := h.business.GetSubscription(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanFree, view.SubscriptionPlan)
	assert.False(t, view.IsProActive)
	assert.Zero(t, view.DaysRemaining)

	_, cached := h.businessCache.Get(subscriptionCacheKey(owner.ID))
	assert.True(t, cached)

	_, err = h.business.GetSubscription(ctx, customer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotBusinessUser)

	ok, err := h.business.IsBusinessUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
