package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStats is a derived projection over a user's referrals, activities and achievements.
// It is never the authority; ComputeUserStats rebuilds it from the ledger.
type UserStats struct {
	UserID              uuid.UUID `json:"user_id"`
	TotalReferrals      int       `json:"total_referrals"`
	SuccessfulReferrals int       `json:"successful_referrals"`
	TotalCreditsEarned  int       `json:"total_credits_earned"`
	TotalPoints         int       `json:"total_points"`
	AchievementsCount   int       `json:"achievements_count"`
	PositionRank        int       `json:"position_rank"`
	LastCalculatedAt    time.Time `json:"last_calculated_at"`
}

// NewEmptyUserStats returns the all-zero stats row written at registration.
func NewEmptyUserStats(userID uuid.UUID, now time.Time) *UserStats {
	return &UserStats{UserID: userID, LastCalculatedAt: now}
}

// ComputeUserStats projects the ledger rows of one user into stats.
// referrals must be the rows where the user is the referrer. PositionRank is left for the caller.
func ComputeUserStats(userID uuid.UUID, referrals []*Referral, activities []*Activity, achievementsCount int, now time.Time) *UserStats {
	stats := &UserStats{
		UserID:            userID,
		TotalReferrals:    len(referrals),
		AchievementsCount: achievementsCount,
		LastCalculatedAt:  now,
	}

	for _, r := range referrals {
		if r.IsCompleted() {
			stats.SuccessfulReferrals++
		}
	}

	for _, a := range activities {
		stats.TotalPoints += a.RewardPoints
		stats.TotalCreditsEarned += a.RewardAmount
	}

	return stats
}
