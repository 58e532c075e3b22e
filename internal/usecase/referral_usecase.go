package usecase

import (
	"context"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferralOutcome reports what a single referral event changed.
type ReferralOutcome struct {
	Referral *entity.Referral

	// Replayed is true when the referred user already had a referral; nothing was written.
	Replayed bool

	ReferralCount int

	// MilestoneNumber is set when the referral count reached a milestone.
	MilestoneNumber int

	// MilestoneAwarded is false when the milestone had already been credited.
	MilestoneAwarded bool
	RewardedUserIDs  []uuid.UUID

	BusinessReferral bool
}

// ReferralDashboard is the referrer's view of their code and progress.
type ReferralDashboard struct {
	ReferralCode   string
	ShareLink      string
	Referrals      []*entity.Referral
	CompletedCount int
	Progress       int
	Target         int
	NextMilestone  int
}

// ReferralUsecase is the referral and reward engine.
type ReferralUsecase interface {
	// ProcessReferral records the referral and applies milestone or business rewards exactly once.
	ProcessReferral(ctx context.Context, referrerID, referredUserID uuid.UUID, code string) (*ReferralOutcome, error)

	GetDashboard(ctx context.Context, userID uuid.UUID) (*ReferralDashboard, error)
	GetReferralQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
	ListActivities(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.Activity, error)
}

// Page is an offset page request.
type Page struct {
	Limit  int
	Offset int
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	p.Limit = min(p.Limit, maxPageLimit)
	p.Offset = max(p.Offset, 0)

	return p
}
