package entity

import (
	"time"

	"github.com/google/uuid"
)

// AchievementType identifies an unlockable achievement. One per user per type.
type AchievementType string

const (
	AchievementEarlyAdopter   AchievementType = "early_adopter"
	AchievementFirstReferral  AchievementType = "first_referral"
	AchievementFirstMilestone AchievementType = "first_milestone"
	AchievementSuperReferrer  AchievementType = "super_referrer"
)

// Achievement is immutable once earned.
type Achievement struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	AchievementType AchievementType `json:"achievement_type"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PointsAwarded   int             `json:"points_awarded"`
	Progress        int             `json:"progress"`
	Target          int             `json:"target"`
	EarnedAt        time.Time       `json:"earned_at"`
}
