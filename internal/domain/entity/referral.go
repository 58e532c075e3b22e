package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralStatus is the confirmation state of a referral edge.
type ReferralStatus string

const (
	// ReferralStatusPending is reserved for staged confirmation. Nothing writes it today.
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusCompleted ReferralStatus = "completed"
)

// Referral is the edge between a referrer and the user who redeemed their code.
// A user is referred at most once.
type Referral struct {
	ID             uuid.UUID      `json:"id"`
	ReferrerID     uuid.UUID      `json:"referrer_id"`
	ReferredUserID uuid.UUID      `json:"referred_user_id"`
	ReferralCode   string         `json:"referral_code"`
	Status         ReferralStatus `json:"status"`
	RewardAmount   int            `json:"reward_amount"`
	CreatedAt      time.Time      `json:"created_at"`
}

// IsCompleted reports whether the referral counts toward milestones.
func (r *Referral) IsCompleted() bool {
	return r.Status == ReferralStatusCompleted
}
