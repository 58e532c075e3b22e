package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_SendRewardNotification(t *testing.T) {
	expiry := entity.LifetimeProExpiry

	tests := []struct {
		name       string
		setup      func(s *fakeSender)
		rewardType entity.RewardType
		want       bool
		reason     string
	}{
		{
			name:       "delivered",
			rewardType: entity.RewardTypeCredits,
			want:       true,
		},
		{
			name:       "sender disabled",
			setup:      func(s *fakeSender) { s.disabled = true },
			rewardType: entity.RewardTypeCredits,
			reason:     reasonDisabled,
		},
		{
			name:       "endpoint failure",
			setup:      func(s *fakeSender) { s.err = errors.New("status 503") },
			rewardType: entity.RewardTypePoints,
			reason:     "status 503",
		},
		{
			name:       "unknown reward type",
			rewardType: entity.RewardType("voucher"),
			reason:     reasonInvalidRewardType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.setup != nil {
				tt.setup(h.sender)
			}
			user := h.addUser(entity.UserTypeCustomer)

			got := h.notification.SendRewardNotification(context.Background(), &usecase.RewardNotification{
				UserID:      user.ID,
				RewardType:  tt.rewardType,
				Amount:      intPtr(50),
				Description: "Referral milestone 1 reached",
				ExpiryDate:  &expiry,
				Source:      string(entity.ActivityReferralMilestone),
			})
			assert.Equal(t, tt.want, got)

			entries := h.activities(user.ID, entity.ActivityNotification)
			require.Len(t, entries, 1)
			details, ok := entries[0].Details.(entity.NotificationDetails)
			require.True(t, ok)
			assert.Equal(t, tt.want, details.Delivered)
			assert.Equal(t, tt.reason, details.Reason)
			assert.Zero(t, entries[0].RewardPoints)

			if tt.want {
				emails := h.sender.emails()
				require.Len(t, emails, 1)
				assert.Equal(t, user.Email, emails[0].UserEmail)
				assert.Equal(t, "credits", emails[0].RewardType)
				assert.Equal(t, 50, *emails[0].Amount)
				assert.Equal(t, "9999-12-31T23:59:59Z", emails[0].ExpiryDate)
				assert.Equal(t, "https://booknow.app/join?ref="+user.ReferralCode, emails[0].ProfileLink)
			}
		})
	}
}

func TestNotificationService_SendRewardNotification_UnknownUser(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()

	got := h.notification.SendRewardNotification(context.Background(), &usecase.RewardNotification{
		UserID:     userID,
		RewardType: entity.RewardTypePoints,
	})

	assert.False(t, got)
	assert.Empty(t, h.sender.emails())
	assert.Empty(t, h.activities(userID, entity.ActivityNotification))
}

func TestNotificationService_SendRewardNotification_LedgerFailureIsSwallowed(t *testing.T) {
	h := newHarness(t)
	user := h.addUser(entity.UserTypeCustomer)

	h.store.FailNextWrite(errors.New("connection reset"))

	got := h.notification.SendRewardNotification(context.Background(), &usecase.RewardNotification{
		UserID:     user.ID,
		RewardType: entity.RewardTypePoints,
	})

	assert.True(t, got)
	assert.Len(t, h.sender.emails(), 1)
	assert.Empty(t, h.activities(user.ID, entity.ActivityNotification))
}
