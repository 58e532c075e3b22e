// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes consumer accounts from business accounts.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeBusiness UserType = "business"
)

// IsValid reports whether the user type is one of the known types.
func (t UserType) IsValid() bool {
	return t == UserTypeCustomer || t == UserTypeBusiness
}

// User is the identity record of a waitlist member.
type User struct {
	ID              uuid.UUID        `json:"id"`                         // The Global Unique Identifier (GUID) for the user.
	Email           string           `json:"email"`                      // Stored lowercased; unique case-insensitively.
	FullName        string           `json:"full_name"`                  // The user's display name.
	UserType        UserType         `json:"user_type"`                  // customer or business.
	ReferralCode    string           `json:"referral_code"`              // The user's own share code, assigned once at creation.
	ReferredBy      *uuid.UUID       `json:"referred_by,omitempty"`      // The referrer, set only when a valid code was redeemed.
	BusinessProfile *BusinessProfile `json:"business_profile,omitempty"` // Nil for customers.
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// BusinessProfile holds the optional business-specific fields of a user.
type BusinessProfile struct {
	BusinessName string `json:"business_name"`
	Category     string `json:"category,omitempty"`
	City         string `json:"city,omitempty"`
}

// IsBusiness reports whether the user registered as a business account.
func (u *User) IsBusiness() bool {
	return u != nil && u.UserType == UserTypeBusiness
}

// DisplayName returns the name used in notifications.
func (u *User) DisplayName() string {
	if u.BusinessProfile != nil && u.BusinessProfile.BusinessName != "" {
		return u.BusinessProfile.BusinessName
	}
	if u.FullName != "" {
		return u.FullName
	}

	return u.Email
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
