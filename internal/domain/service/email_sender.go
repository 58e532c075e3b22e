package service

import (
	"context"
	"errors"
)

// ErrEmailDisabled is returned by senders when no endpoint is configured.
var ErrEmailDisabled = errors.New("email dispatch disabled")

// RewardEmail is the body accepted by the notification endpoint.
type RewardEmail struct {
	UserEmail   string `json:"userEmail"`
	UserName    string `json:"userName"`
	RewardType  string `json:"rewardType"`
	Amount      *int   `json:"amount,omitempty"`
	Description string `json:"description"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
	Source      string `json:"source,omitempty"`
	ProfileLink string `json:"profileLink,omitempty"`
}

// EmailSender delivers reward emails. It makes a single attempt per call.
type EmailSender interface {
	SendRewardEmail(ctx context.Context, email *RewardEmail) error

	// Enabled reports whether dispatch is configured at all.
	Enabled() bool
}
