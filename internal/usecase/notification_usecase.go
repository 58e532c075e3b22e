package usecase

import (
	"context"
	"time"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// RewardNotification is one reward email to dispatch.
type RewardNotification struct {
	UserID      uuid.UUID
	RewardType  entity.RewardType
	Amount      *int
	Description string
	ExpiryDate  *time.Time
	Source      string
}

// NotificationUsecase dispatches reward emails.
type NotificationUsecase interface {
	// SendRewardNotification makes one delivery attempt and records the outcome in the
	// ledger. It never fails; it reports whether the email was delivered.
	SendRewardNotification(ctx context.Context, notification *RewardNotification) bool
}
