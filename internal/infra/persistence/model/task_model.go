package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BackgroundTaskModel mirrors the 'background_tasks' outbox table.
type BackgroundTaskModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TaskType    string         `gorm:"type:varchar(50);not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	Status      string         `gorm:"type:varchar(20);not null;default:pending;index:idx_tasks_due,priority:1"`
	Attempts    int            `gorm:"not null;default:0"`
	RunAt       time.Time      `gorm:"not null;index:idx_tasks_due,priority:2"`
	LockedUntil *time.Time
	LastError   string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BackgroundTaskModel) TableName() string {
	return "background_tasks"
}

// All returns every model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&ReferralModel{},
		&UserActivityModel{},
		&AchievementModel{},
		&UserStatsModel{},
		&BusinessDashboardModel{},
		&FollowModel{},
		&BackgroundTaskModel{},
	}
}
