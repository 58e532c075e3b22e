package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email is stored lowercased, so the unique index is case-insensitive in effect.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName         string     `gorm:"type:varchar(100)"`
	UserType         string     `gorm:"type:varchar(20);not null;default:customer;index"`
	ReferralCode     string     `gorm:"type:char(8);uniqueIndex;not null"`
	ReferredBy       *uuid.UUID `gorm:"type:uuid;index"`
	BusinessName     string     `gorm:"type:varchar(150)"`
	BusinessCategory string     `gorm:"type:varchar(100)"`
	City             string     `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CredentialModel mirrors the 'user_credentials' table.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "user_credentials"
}
