// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a customer or business account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	UserType entity.UserType

	// ReferralCode is optional. An unknown code never fails registration.
	ReferralCode string

	// Business is required when UserType is business.
	Business *entity.BusinessProfile
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account and its access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time

	// ReferralApplied reports whether the redeemed code resolved to a referrer.
	ReferralApplied bool
}

// ReferralCodeInfo describes a referral code before it is redeemed.
type ReferralCodeInfo struct {
	Code         string
	Valid        bool
	ReferrerName string
	ReferrerType entity.UserType
}

// RegistrationUsecase covers account creation, login and referral code lookup.
type RegistrationUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	ValidateReferralCode(ctx context.Context, code string) (*ReferralCodeInfo, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
