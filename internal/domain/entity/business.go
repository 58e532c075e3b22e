package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan of a business dashboard.
type SubscriptionPlan string

const (
	PlanFree SubscriptionPlan = "free"
	PlanPro  SubscriptionPlan = "pro"
)

// PlanStatus of a business dashboard.
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

// LifetimeProExpiry is the sentinel expiry of a lifetime Pro subscription.
var LifetimeProExpiry = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// BusinessSubscription is the subscription view over a business dashboard.
type BusinessSubscription struct {
	UserID                  uuid.UUID        `json:"user_id"`
	SubscriptionPlan        SubscriptionPlan `json:"subscription_plan"`
	PlanStatus              PlanStatus       `json:"plan_status"`
	ProSubscriptionMonths   int              `json:"pro_subscription_months"`
	ProExpiresAt            *time.Time       `json:"pro_expires_at,omitempty"`
	ProFeaturesEnabled      bool             `json:"pro_features_enabled"`
	ReferralProMonthsEarned int              `json:"referral_pro_months_earned"`
	InitialProMonthsGiven   bool             `json:"initial_pro_months_given"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// IsLifetime reports whether the subscription never expires.
func (s *BusinessSubscription) IsLifetime() bool {
	return s.ProExpiresAt != nil && !s.ProExpiresAt.Before(LifetimeProExpiry)
}

// IsProActive reports whether Pro features apply at now.
func (s *BusinessSubscription) IsProActive(now time.Time) bool {
	if !s.ProFeaturesEnabled || s.ProExpiresAt == nil {
		return false
	}

	return s.ProExpiresAt.After(now)
}

// DaysRemaining returns whole days of Pro left, rounded up. Lifetime returns -1.
func (s *BusinessSubscription) DaysRemaining(now time.Time) int {
	if s.IsLifetime() {
		return -1
	}
	if !s.IsProActive(now) {
		return 0
	}

	return int(math.Ceil(s.ProExpiresAt.Sub(now).Hours() / 24))
}

// ExtendProExpiry adds months to the later of now and the current expiry.
// The result is never earlier than current and lifetime stays lifetime.
func ExtendProExpiry(current *time.Time, months int, now time.Time) time.Time {
	if current != nil && !current.Before(LifetimeProExpiry) {
		return LifetimeProExpiry
	}

	base := now
	if current != nil && current.After(now) {
		base = *current
	}

	return base.AddDate(0, months, 0)
}
