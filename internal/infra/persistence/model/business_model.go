package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessDashboardModel mirrors the 'business_dashboards' table.
// initial_pro_months_given only ever moves from false to true.
type BusinessDashboardModel struct {
	UserID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubscriptionPlan        string     `gorm:"type:varchar(20);not null;default:free"`
	PlanStatus              string     `gorm:"type:varchar(20);not null;default:active"`
	ProSubscriptionMonths   int        `gorm:"not null;default:0"`
	ProExpiresAt            *time.Time `gorm:"index"`
	ProFeaturesEnabled      bool       `gorm:"not null;default:false"`
	ReferralProMonthsEarned int        `gorm:"not null;default:0"`
	InitialProMonthsGiven   bool       `gorm:"not null;default:false"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessDashboardModel) TableName() string {
	return "business_dashboards"
}

// FollowModel mirrors the 'user_follows' edge table.
type FollowModel struct {
	FollowerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowingID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "user_follows"
}
