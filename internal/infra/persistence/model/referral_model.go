package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReferralModel mirrors the 'referrals' table. A user can be referred only once.
type ReferralModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReferrerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_referrals_pair;index:idx_referrals_referrer_created,priority:1"`
	ReferredUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;uniqueIndex:idx_referrals_pair"`
	ReferralCode   string    `gorm:"type:char(8);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:completed"`
	RewardAmount   int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"index:idx_referrals_referrer_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (ReferralModel) TableName() string {
	return "referrals"
}

// UserActivityModel mirrors the append-only 'user_activities' table.
// milestone_number is promoted out of metadata so the partial unique index can guard milestone rewards.
type UserActivityModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_activities_user_created,priority:1;uniqueIndex:idx_activities_milestone,where:milestone_number IS NOT NULL"`
	ActivityType    string         `gorm:"type:varchar(40);not null;uniqueIndex:idx_activities_milestone,where:milestone_number IS NOT NULL"`
	Description     string         `gorm:"type:text"`
	RewardPoints    int            `gorm:"not null;default:0"`
	RewardAmount    int            `gorm:"not null;default:0"`
	MilestoneNumber *int           `gorm:"uniqueIndex:idx_activities_milestone,where:milestone_number IS NOT NULL"`
	Metadata        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"index:idx_activities_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (UserActivityModel) TableName() string {
	return "user_activities"
}

// AchievementModel mirrors the 'achievements' table. One row per user and type.
type AchievementModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_achievements_user_type"`
	AchievementType string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_achievements_user_type"`
	Title           string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	PointsAwarded   int       `gorm:"not null;default:0"`
	Progress        int       `gorm:"not null;default:0"`
	Target          int       `gorm:"not null;default:0"`
	EarnedAt        time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AchievementModel) TableName() string {
	return "achievements"
}

// UserStatsModel mirrors the 'user_stats' projection table.
type UserStatsModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalReferrals      int       `gorm:"not null;default:0"`
	SuccessfulReferrals int       `gorm:"not null;default:0"`
	TotalCreditsEarned  int       `gorm:"not null;default:0"`
	TotalPoints         int       `gorm:"not null;default:0;index"`
	AchievementsCount   int       `gorm:"not null;default:0"`
	PositionRank        int       `gorm:"not null;default:0"`
	LastCalculatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserStatsModel) TableName() string {
	return "user_stats"
}
